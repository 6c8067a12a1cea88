// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aikya",
	Short: "Aikya is the marketing site and content service of the Aikya group",
	Long: `Aikya serves the public marketing pages and the content management
API of the Aikya group, and doubles as the command line client used by
editors to sign in and update content sections.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
