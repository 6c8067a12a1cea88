package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aikya-dev/aikya/internal/guard"
)

func init() { //nolint: gochecknoinits
	whoamiCmd.Flags().BoolVar(&useKeyring, "keyring", false, "Read the session from the OS keyring instead of the session file")

	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := newAuthContext()

		decision := guard.New("login", "home").Check(ctx, guard.CapabilityAuthenticated)
		if !decision.Allowed {
			return fmt.Errorf("not signed in (run 'aikya login')")
		}

		user := ctx.User()

		fmt.Printf("User:  %s\n", user.FullName)
		fmt.Printf("Email: %s\n", user.Email)

		if user.IsAdmin {
			fmt.Println("Role:  Admin")
		} else {
			fmt.Println("Role:  Member")
		}

		return nil
	},
}
