package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/checkfiles/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 problem(s) found in 2 file(s), 1 fixed (12 files checked)".
func (s *Styles) FormatSummaryOneLine(summary runner.Summary) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d files checked)", summary.FilesChecked))

	if summary.TotalViolations == 0 && len(summary.Errors) == 0 {
		return s.Success.Render("No problems found") + checked + "\n"
	}

	var parts []string

	if summary.TotalViolations > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf(
			"%d problem(s) found in %d file(s)",
			summary.TotalViolations, summary.FilesWithViolations,
		)))
	}

	if summary.FilesFixed > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d file(s) fixed", summary.FilesFixed)))
	}

	if n := len(summary.Errors); n > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d error(s)", n)))
	}

	return strings.Join(parts, ", ") + checked + "\n"
}
