package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/internal/cli/output"
	"github.com/jobhunter/platform/pkg/client"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse, search and manage job listings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open listings",
	RunE:  runJobsList,
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search listings by keyword and filters",
	Long: `Search listings. All filters are optional and combine.

Examples:
  jobctl jobs search --query "backend go"
  jobctl jobs search --location Berlin --remote
  jobctl jobs search --type full-time --level senior --salary-min 90000`,
	RunE: runJobsSearch,
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Show one listing in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

var jobsFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "List featured listings",
	RunE:  runJobsFeatured,
}

var jobsPostCmd = &cobra.Command{
	Use:     "post",
	Short:   "Post a new listing",
	PreRunE: requireRole(client.RoleEmployer),
	RunE:    runJobsPost,
}

var jobsCloseCmd = &cobra.Command{
	Use:     "close <job-id>",
	Short:   "Take a listing down",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(client.RoleEmployer),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Jobs.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		printer.Success("Listing %s closed", args[0])
		return nil
	},
}

var jobsApplicationsCmd = &cobra.Command{
	Use:     "applications <job-id>",
	Short:   "List applications received for a listing",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireRole(client.RoleEmployer),
	RunE:    runJobsApplications,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsSearchCmd, jobsGetCmd, jobsFeaturedCmd, jobsPostCmd, jobsCloseCmd, jobsApplicationsCmd)

	jobsListCmd.Flags().Int("page", 1, "page number")
	jobsListCmd.Flags().Int("size", 20, "page size")
	jobsListCmd.Flags().Bool("json", false, "output as JSON")

	jobsSearchCmd.Flags().String("query", "", "keyword query")
	jobsSearchCmd.Flags().String("location", "", "location filter")
	jobsSearchCmd.Flags().String("type", "", "job type (full-time, part-time, contract, internship, temporary)")
	jobsSearchCmd.Flags().String("level", "", "experience level")
	jobsSearchCmd.Flags().Float64("salary-min", 0, "minimum salary")
	jobsSearchCmd.Flags().Float64("salary-max", 0, "maximum salary")
	jobsSearchCmd.Flags().Bool("remote", false, "remote positions only")
	jobsSearchCmd.Flags().Bool("visa", false, "visa sponsorship only")
	jobsSearchCmd.Flags().Int("page", 1, "page number")
	jobsSearchCmd.Flags().Int("size", 20, "page size")
	jobsSearchCmd.Flags().Bool("json", false, "output as JSON")

	jobsFeaturedCmd.Flags().Int("limit", 6, "number of listings")

	jobsPostCmd.Flags().String("title", "", "listing title")
	jobsPostCmd.Flags().String("description", "", "full description")
	jobsPostCmd.Flags().String("location", "", "location")
	jobsPostCmd.Flags().String("company", "", "company name")
	jobsPostCmd.Flags().String("type", "full-time", "job type")
	jobsPostCmd.Flags().String("level", "", "experience level")
	jobsPostCmd.Flags().Float64("salary-min", 0, "minimum salary")
	jobsPostCmd.Flags().Float64("salary-max", 0, "maximum salary")
	jobsPostCmd.Flags().StringSlice("skill", nil, "required skill (repeatable)")
	jobsPostCmd.Flags().StringSlice("benefit", nil, "benefit (repeatable)")
	jobsPostCmd.Flags().Bool("remote", false, "remote position")
	jobsPostCmd.Flags().Bool("visa", false, "visa sponsorship offered")

	_ = jobsPostCmd.MarkFlagRequired("title")
	_ = jobsPostCmd.MarkFlagRequired("description")
	_ = jobsPostCmd.MarkFlagRequired("location")
}

func runJobsList(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")

	list, err := api.Jobs.List(cmd.Context(), page, size)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(list)
	}
	renderJobList(list)
	return nil
}

func runJobsSearch(cmd *cobra.Command, args []string) error {
	filter := client.SearchFilter{}
	filter.Query, _ = cmd.Flags().GetString("query")
	filter.Location, _ = cmd.Flags().GetString("location")
	filter.JobType, _ = cmd.Flags().GetString("type")
	filter.ExperienceLevel, _ = cmd.Flags().GetString("level")
	filter.SalaryMin, _ = cmd.Flags().GetFloat64("salary-min")
	filter.SalaryMax, _ = cmd.Flags().GetFloat64("salary-max")
	filter.Page, _ = cmd.Flags().GetInt("page")
	filter.Size, _ = cmd.Flags().GetInt("size")

	// Tri-state: only send the filter when the flag was given.
	if cmd.Flags().Changed("remote") {
		v, _ := cmd.Flags().GetBool("remote")
		filter.RemoteWork = &v
	}
	if cmd.Flags().Changed("visa") {
		v, _ := cmd.Flags().GetBool("visa")
		filter.VisaSponsorship = &v
	}

	list, err := api.Jobs.Search(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(list)
	}
	renderJobList(list)
	return nil
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	job, err := api.Jobs.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printer.Header(job.Title)
	if job.CompanyName != "" {
		printer.Print("%s · %s", job.CompanyName, job.Location)
	} else {
		printer.Print("%s", job.Location)
	}
	printer.Print("Type: %s  Level: %s", job.JobType, orDash(job.ExperienceLevel))
	if job.SalaryMin > 0 || job.SalaryMax > 0 {
		printer.Print("Salary: %s", salaryRange(job.SalaryMin, job.SalaryMax))
	}
	printer.Print("Remote: %t  Visa sponsorship: %t", job.RemoteWork, job.VisaSponsorship)
	if len(job.RequiredSkills) > 0 {
		printer.Print("Skills: %v", job.RequiredSkills)
	}
	printer.Print("")
	printer.Print("%s", job.Description)
	printer.Print("")
	printer.Print("%s", printer.Dim(fmt.Sprintf("%d applications · %d views · posted %s",
		job.ApplicationCount, job.ViewCount, job.CreatedAt.Format("2006-01-02"))))
	return nil
}

func runJobsFeatured(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jobs, err := api.Jobs.Featured(cmd.Context(), limit)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "TITLE", "COMPANY", "LOCATION", "TYPE"})
	for _, job := range jobs {
		table.AddRow([]string{job.ID, job.Title, orDash(job.CompanyName), job.Location, job.JobType})
	}
	table.Render()
	return nil
}

func runJobsPost(cmd *cobra.Command, args []string) error {
	input := client.CreateJobInput{}
	input.Title, _ = cmd.Flags().GetString("title")
	input.Description, _ = cmd.Flags().GetString("description")
	input.Location, _ = cmd.Flags().GetString("location")
	input.CompanyName, _ = cmd.Flags().GetString("company")
	input.JobType, _ = cmd.Flags().GetString("type")
	input.ExperienceLevel, _ = cmd.Flags().GetString("level")
	input.SalaryMin, _ = cmd.Flags().GetFloat64("salary-min")
	input.SalaryMax, _ = cmd.Flags().GetFloat64("salary-max")
	input.RequiredSkills, _ = cmd.Flags().GetStringSlice("skill")
	input.Benefits, _ = cmd.Flags().GetStringSlice("benefit")
	input.RemoteWork, _ = cmd.Flags().GetBool("remote")
	input.VisaSponsorship, _ = cmd.Flags().GetBool("visa")

	job, err := api.Jobs.Create(cmd.Context(), input)
	if err != nil {
		return err
	}

	printer.Success("Listing posted: %s (%s)", job.Title, job.ID)
	return nil
}

func runJobsApplications(cmd *cobra.Command, args []string) error {
	apps, err := api.Applications.ForJob(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		printer.Info("No applications yet")
		return nil
	}

	table := output.NewTable([]string{"ID", "APPLICANT", "STATUS", "APPLIED"})
	for _, app := range apps {
		table.AddRow([]string{
			app.ID,
			app.ApplicantID,
			printer.StatusBadge(app.Status) + " " + app.Status,
			app.CreatedAt.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func renderJobList(list *client.JobList) {
	if len(list.Items) == 0 {
		printer.Info("No listings found")
		return
	}

	table := output.NewTable([]string{"ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "SALARY"})
	for _, job := range list.Items {
		table.AddRow([]string{
			job.ID,
			job.Title,
			orDash(job.CompanyName),
			job.Location,
			job.JobType,
			salaryRange(job.SalaryMin, job.SalaryMax),
		})
	}
	table.Render()
	printer.Print("")
	printer.Info("Page %d of %d (%d listings)", list.Page.Page, list.Pages, list.Total)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func salaryRange(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return strconv.FormatFloat(min, 'f', 0, 64) + "-" + strconv.FormatFloat(max, 'f', 0, 64)
	case min > 0:
		return "from " + strconv.FormatFloat(min, 'f', 0, 64)
	case max > 0:
		return "up to " + strconv.FormatFloat(max, 'f', 0, 64)
	default:
		return "-"
	}
}
