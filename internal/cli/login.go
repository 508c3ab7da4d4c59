package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the session",
	Long: `Authenticate against the server and persist the session locally.

The password is prompted for unless --password is given. Pass --no-save to
keep the session in memory for this invocation only.

Examples:
  jobctl login alice@example.com
  jobctl login bob@corp.example --no-save`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("password", "p", "", "password (prompted when omitted)")
	loginCmd.Flags().Bool("no-save", false, "do not persist the session to disk")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := args[0]
	password, _ := cmd.Flags().GetString("password")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	role, err := api.Session.Login(cmd.Context(), email, password, !noSave)
	if err != nil {
		return err
	}

	printer.Success("Logged in as %s (%s)", email, role)
	if noSave {
		printer.Info("Session not saved; it ends with this invocation")
	}
	return nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(data), nil
}
