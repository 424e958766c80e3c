package cli

import "github.com/yaklabco/checkfiles/pkg/runner"

// Exit codes for checkfiles.
const (
	// ExitSuccess indicates no violations and no errors.
	ExitSuccess = 0

	// ExitProblemsFound indicates violations were detected or per-file
	// errors were recorded. Fixing violations does not restore a clean
	// exit for that run.
	ExitProblemsFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.Failed() {
		return ExitProblemsFound
	}
	return ExitSuccess
}
