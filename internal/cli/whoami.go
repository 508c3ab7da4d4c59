package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the current session",
	PreRunE: requireSession,
	RunE:    runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sess)
	}

	printer.Print("%s %s", printer.Bold(sess.DisplayName), printer.Dim("<"+sess.Email+">"))
	printer.Print("Role: %s", sess.Role)
	printer.Print("User ID: %s", sess.UserID)
	return nil
}
