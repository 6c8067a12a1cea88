package app

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() { //nolint: gochecknoinits
	loginCmd.Flags().StringVar(&serverURL, "server", "", "API base URL (or set AIKYA_SERVER)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address (or set AIKYA_EMAIL)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (or set AIKYA_PASSWORD, will prompt if not provided)")
	loginCmd.Flags().BoolVar(&useKeyring, "keyring", false, "Store the session in the OS keyring instead of the session file")

	rootCmd.AddCommand(loginCmd)
}

var (
	loginEmail    string
	loginPassword string

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in to an Aikya server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runLogin(loginEmail, loginPassword)
		},
	}
)

func runLogin(email, password string) error {
	if email == "" {
		email = os.Getenv(emailEnvVar)
	}

	if password == "" {
		password = os.Getenv(passwordEnvVar)
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or %s env var)", emailEnvVar)
	}

	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or %s env var)", passwordEnvVar)
		}

		fmt.Print("Password: ")

		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		password = string(bytePassword)

		fmt.Println()
	}

	ctx := newAuthContext()
	apiClient := newAPIClient(ctx)

	result, err := apiClient.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// replaces any previously stored session
	ctx.Login(result.Profile, result.Token)

	fmt.Println("Signed in.")
	fmt.Printf("  User: %s (%s)\n", result.Profile.FullName, result.Profile.Email)

	if result.Profile.IsAdmin {
		fmt.Println("  Role: Admin")
	}

	return nil
}
