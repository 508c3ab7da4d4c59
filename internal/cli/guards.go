package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/internal/cli/output"
	"github.com/jobhunter/platform/pkg/client"
)

// requireSession gates a command on a restored session. It only inspects
// local state; an expired token still fails later at the server with 401.
func requireSession(cmd *cobra.Command, args []string) error {
	if !sess.IsAuthenticated {
		return &output.CLIError{
			Summary:    "not logged in",
			Suggestion: "Run 'jobctl login <email>' first",
			ExitCode:   output.ExitAuth,
		}
	}
	return nil
}

// requireRole gates a command on the session's role. Admin passes every gate.
func requireRole(roles ...string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := requireSession(cmd, args); err != nil {
			return err
		}
		if sess.Role == client.RoleAdmin {
			return nil
		}
		for _, role := range roles {
			if sess.Role == role {
				return nil
			}
		}
		return &output.CLIError{
			Summary:    fmt.Sprintf("this command requires the %s role", strings.Join(roles, " or ")),
			Detail:     fmt.Sprintf("you are signed in as %s (%s)", sess.Email, sess.Role),
			Suggestion: "Log in with an account that has the right role",
			ExitCode:   output.ExitAuth,
		}
	}
}
