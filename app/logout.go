package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() { //nolint: gochecknoinits
	logoutCmd.Flags().BoolVar(&useKeyring, "keyring", false, "Clear the session from the OS keyring instead of the session file")

	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := newAuthContext()

		if !ctx.IsAuthenticated() {
			fmt.Println("Not signed in.")
			return nil
		}

		ctx.Logout()
		fmt.Println("Signed out.")

		return nil
	},
}
