// Package main is the entry point for the jobctl CLI.
package main

import (
	"errors"
	"os"

	"github.com/jobhunter/platform/internal/cli"
	"github.com/jobhunter/platform/internal/cli/output"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		var cliErr *output.CLIError
		if errors.As(err, &cliErr) {
			output.NewPrinter(output.PrinterOptions{}).FormatError(cliErr)
			os.Exit(cliErr.ExitCode)
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(output.ExitGeneral)
	}
}
