package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/internal/cli/output"
	"github.com/jobhunter/platform/pkg/client"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Track and manage applications",
}

var applicationsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List your applications",
	PreRunE: requireRole(client.RoleJobSeeker),
	RunE:    runApplicationsList,
}

var applicationsStatusCmd = &cobra.Command{
	Use:   "status <application-id> <status>",
	Short: "Move an application to a new status",
	Long: `Move an application through its lifecycle. Employers advance
applications they received; seekers can withdraw their own.

Valid statuses: pending, reviewing, shortlisted, interviewing, offered,
accepted, rejected, withdrawn.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: requireSession,
	RunE:    runApplicationsStatus,
}

var applicationsWithdrawCmd = &cobra.Command{
	Use:     "withdraw <application-id>",
	Short:   "Withdraw one of your applications",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(client.RoleJobSeeker),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := api.Applications.Withdraw(cmd.Context(), args[0]); err != nil {
			return err
		}
		printer.Success("Application %s withdrawn", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applicationsCmd)
	applicationsCmd.AddCommand(applicationsListCmd, applicationsStatusCmd, applicationsWithdrawCmd)

	applicationsListCmd.Flags().Bool("json", false, "output as JSON")
	applicationsStatusCmd.Flags().String("notes", "", "note recorded with the transition")
}

func runApplicationsList(cmd *cobra.Command, args []string) error {
	apps, err := api.Applications.Mine(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(apps)
	}

	if len(apps) == 0 {
		printer.Info("No applications yet")
		return nil
	}

	table := output.NewTable([]string{"ID", "JOB", "STATUS", "APPLIED", "UPDATED"})
	for _, app := range apps {
		table.AddRow([]string{
			app.ID,
			app.JobID,
			printer.StatusBadge(app.Status) + " " + app.Status,
			app.CreatedAt.Format("2006-01-02"),
			app.UpdatedAt.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func runApplicationsStatus(cmd *cobra.Command, args []string) error {
	notes, _ := cmd.Flags().GetString("notes")

	app, err := api.Applications.UpdateStatus(cmd.Context(), args[0], args[1], notes)
	if err != nil {
		return err
	}

	printer.Success("Application %s is now %s", app.ID, app.Status)
	return nil
}
