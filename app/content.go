package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aikya-dev/aikya/internal/guard"
)

func init() { //nolint: gochecknoinits
	contentCmd.PersistentFlags().StringVar(&serverURL, "server", "", "API base URL (or set AIKYA_SERVER)")
	contentCmd.PersistentFlags().BoolVar(&useKeyring, "keyring", false, "Read the session from the OS keyring instead of the session file")

	contentCmd.AddCommand(contentGetCmd)
	contentCmd.AddCommand(contentSetCmd)
	rootCmd.AddCommand(contentCmd)
}

var (
	contentCmd = &cobra.Command{
		Use:   "content",
		Short: "Read and update content sections",
	}

	contentGetCmd = &cobra.Command{
		Use:   "get <section>",
		Short: "Print the JSON document of a content section",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := newAuthContext()
			apiClient := newAPIClient(ctx)

			data, err := apiClient.GetSection(args[0])
			if err != nil {
				return err
			}

			var pretty json.RawMessage = data

			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				// fall back to the raw document
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(string(out))

			return nil
		},
	}

	contentSetCmd = &cobra.Command{
		Use:   "set <section> [file]",
		Short: "Replace the JSON document of a content section from a file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := newAuthContext()

			// updates are admin-only, fail before the network round trip
			decision := guard.New("login", "home").Check(ctx, guard.CapabilityAdmin)
			if !decision.Allowed {
				if !ctx.IsAuthenticated() {
					return fmt.Errorf("not signed in (run 'aikya login')")
				}

				return fmt.Errorf("admin access required")
			}

			value, err := readDocument(args)
			if err != nil {
				return err
			}

			if !json.Valid(value) {
				return fmt.Errorf("document must be valid JSON")
			}

			apiClient := newAPIClient(ctx)

			if _, err := apiClient.UpdateSection(args[0], value); err != nil {
				return err
			}

			fmt.Printf("Section %q updated.\n", args[0])

			return nil
		},
	}
)

// readDocument loads the new section value from the file argument, or from
// stdin when no file is given.
func readDocument(args []string) ([]byte, error) {
	if len(args) == 2 && args[1] != "-" {
		value, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[1], err)
		}

		return value, nil
	}

	value, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return value, nil
}
