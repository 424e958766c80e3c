// Package main is the entry point for the checkfiles CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/checkfiles/internal/cli"
	"github.com/yaklabco/checkfiles/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrProblemsFound is just a signal for the exit code.
		if errors.Is(err, cli.ErrProblemsFound) {
			return cli.ExitProblemsFound
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)

		if errors.Is(err, cli.ErrInvalidUsage) {
			return cli.ExitInvalidUsage
		}
		if errors.Is(err, cli.ErrConfig) {
			return cli.ExitConfigError
		}
		return cli.ExitProblemsFound
	}

	return cli.ExitSuccess
}
