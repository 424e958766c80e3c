// Package cli provides the Cobra command structure for checkfiles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/checkfiles/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root checkfiles command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debugLog bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "checkfiles",
		Short: "Checks text files for tabs and trailing whitespace",
		Long: `checkfiles detects embedded tab characters and trailing whitespace in
text files, reports them at a configurable verbosity, and can rewrite
the files in place: tabs are expanded to the next tab stop and trailing
whitespace is stripped.

Binary files are skipped. If problems or errors are found the command
exits with status 1, otherwise 0 - fixing files does not clear the
failure status for the run.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debugLog {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debugLog, "log-debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
