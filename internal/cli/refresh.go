package cli

import (
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:     "refresh",
	Short:   "Exchange the stored token for a fresh one",
	PreRunE: requireSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Session.Refresh(cmd.Context()); err != nil {
			return err
		}
		printer.Success("Session refreshed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
