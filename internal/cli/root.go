// Package cli contains all commands for the jobctl CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jobhunter/platform/internal/cli/output"
	"github.com/jobhunter/platform/pkg/client"
)

var (
	cfgFile   string
	serverURL string
	noColor   bool
	quiet     bool
	version   = "dev"

	api     *client.Client
	sess    client.Session
	printer *output.Printer
)

// rootCmd is the base command when jobctl is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "jobctl",
	Short: "JobHunter platform CLI",
	Long: `jobctl talks to a JobHunter server: browse and post listings, apply to
jobs, and track applications from the terminal.

The session survives between runs; log in once and subsequent commands
reuse the stored token.

Example usage:
  jobctl login alice@example.com   # Sign in and store the session
  jobctl jobs list                 # Browse open listings
  jobctl jobs search --query go    # Full-text search
  jobctl apply <job-id>            # Apply to a listing
  jobctl applications list         # Track your applications`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initClient()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string shown by jobctl version.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jobctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default http://localhost:8080)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
}

// initClient loads config, restores the persisted session and builds the API
// client every command hangs off.
func initClient() error {
	viper.SetEnvPrefix("JOBCTL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".jobctl")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	printer = output.NewPrinter(output.PrinterOptions{NoColor: noColor, Quiet: quiet})

	base := viper.GetString("server")
	if base == "" {
		base = "http://localhost:8080"
	}

	storage, err := client.NewFileStorage(viper.GetString("session_dir"))
	if err != nil {
		return fmt.Errorf("resolving session path: %w", err)
	}

	api, err = client.New(client.Config{BaseURL: base, Storage: storage})
	if err != nil {
		return err
	}
	sess = api.Session.Restore()
	return nil
}
