package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/internal/cli/output"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Browse and extend the skill vocabulary",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known skills",
	RunE:  runSkillsList,
}

var skillsAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Add a skill, reusing an existing entry when the name matches",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE:    runSkillsAdd,
}

func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.AddCommand(skillsListCmd, skillsAddCmd)

	skillsListCmd.Flags().String("category", "", "filter by category")
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	skills, err := api.Skills.List(cmd.Context(), category)
	if err != nil {
		return err
	}

	if len(skills) == 0 {
		printer.Info("No skills found")
		return nil
	}

	table := output.NewTable([]string{"ID", "NAME", "CATEGORY"})
	for _, skill := range skills {
		table.AddRow([]string{skill.ID, skill.Name, orDash(skill.Category)})
	}
	table.Render()
	return nil
}

func runSkillsAdd(cmd *cobra.Command, args []string) error {
	skill, err := api.Skills.GetOrCreate(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printer.Success("Skill %s (%s)", skill.Name, skill.ID)
	return nil
}
