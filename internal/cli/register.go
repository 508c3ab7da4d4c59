package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobhunter/platform/pkg/client"
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create an account and sign in",
	Long: `Create a new account on the server and store the resulting session.

Examples:
  jobctl register alice@example.com --first-name Alice --last-name Doe
  jobctl register hr@corp.example --role employer --first-name Bob --last-name Lee`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringP("password", "p", "", "password (prompted when omitted)")
	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	registerCmd.Flags().String("display-name", "", "public display name")
	registerCmd.Flags().String("role", client.RoleJobSeeker, "account role: job_seeker or employer")
	registerCmd.Flags().Bool("no-save", false, "do not persist the session to disk")

	_ = registerCmd.MarkFlagRequired("first-name")
	_ = registerCmd.MarkFlagRequired("last-name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	if role != client.RoleJobSeeker && role != client.RoleEmployer {
		return fmt.Errorf("invalid role %q: must be job_seeker or employer", role)
	}

	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}

	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")
	displayName, _ := cmd.Flags().GetString("display-name")
	noSave, _ := cmd.Flags().GetBool("no-save")

	got, err := api.Session.Register(cmd.Context(), client.RegisterInput{
		Email:       args[0],
		Password:    password,
		FirstName:   firstName,
		LastName:    lastName,
		DisplayName: displayName,
		Role:        role,
	}, !noSave)
	if err != nil {
		return err
	}

	printer.Success("Account created, logged in as %s (%s)", args[0], got)
	return nil
}
