package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/pkg/client"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a listing",
	Long: `Submit an application to a listing.

Examples:
  jobctl apply 6f1c2a
  jobctl apply 6f1c2a --resume https://example.com/cv.pdf --salary 95000`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(client.RoleJobSeeker),
	RunE:    runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("cover-letter", "", "cover letter text")
	applyCmd.Flags().String("resume", "", "resume URL")
	applyCmd.Flags().Float64("salary", 0, "expected salary")
}

func runApply(cmd *cobra.Command, args []string) error {
	coverLetter, _ := cmd.Flags().GetString("cover-letter")
	resume, _ := cmd.Flags().GetString("resume")
	salary, _ := cmd.Flags().GetFloat64("salary")

	app, err := api.Applications.Apply(cmd.Context(), client.ApplyInput{
		JobID:          args[0],
		CoverLetter:    coverLetter,
		ResumeURL:      resume,
		ExpectedSalary: salary,
	})
	if err != nil {
		return err
	}

	printer.Success("Application submitted (%s)", app.ID)
	return nil
}
