package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the jobctl version",
	// No client needed, skip the persistent setup.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("jobctl " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
