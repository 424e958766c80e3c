package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/checkfiles/pkg/check"
)

// KindLabel returns the human-readable name of a violation kind.
func KindLabel(kind check.Kind) string {
	switch kind {
	case check.KindTab:
		return "tab character"
	case check.KindTrailingWhitespace:
		return "trailing whitespace"
	default:
		return string(kind)
	}
}

// FormatFileHeader formats the per-file header line for violating files.
// Example: "src/main.c (3 problems)".
func (s *Styles) FormatFileHeader(path string, count int) string {
	word := "problems"
	if count == 1 {
		word = "problem"
	}
	return s.FilePath.Render(path) + s.Dim.Render(fmt.Sprintf(" (%d %s)", count, word))
}

// FormatViolation formats one violation. Column offsets are shown only
// when showColumn is set (debug mode).
func (s *Styles) FormatViolation(v check.Violation, showColumn bool) string {
	location := fmt.Sprintf("line %d", v.Line)
	if showColumn {
		location = fmt.Sprintf("line %d, col %d", v.Line, v.Column)
	}
	return fmt.Sprintf("  %s: %s\n",
		s.Location.Render(location),
		s.Kind.Render(KindLabel(v.Kind)),
	)
}

// FormatLineIndicator renders a violating line with tabs expanded,
// followed by a marker line that carets every offending character: each
// tab's full expansion and the whole trailing whitespace run.
func (s *Styles) FormatLineIndicator(line []byte, tabSize int) string {
	runStart := len(line)
	for runStart > 0 && (line[runStart-1] == ' ' || line[runStart-1] == '\t') {
		runStart--
	}

	var expanded, marker strings.Builder
	col := 0
	for i, b := range line {
		if b == '\t' {
			n := tabSize - col%tabSize
			expanded.WriteString(strings.Repeat(" ", n))
			marker.WriteString(strings.Repeat("^", n))
			col += n
			continue
		}
		expanded.WriteByte(b)
		if i >= runStart {
			marker.WriteByte('^')
		} else {
			marker.WriteByte(' ')
		}
		col++
	}

	const indent = "      "
	return indent + s.SourceLine.Render(expanded.String()) + "\n" +
		indent + s.Caret.Render(marker.String()) + "\n"
}
