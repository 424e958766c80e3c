package check

// isLineWhitespace reports whether b is horizontal whitespace.
func isLineWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// trailingRunStart returns the 0-based index of the first character of the
// maximal trailing space/tab run, or len(line) if the line has none.
func trailingRunStart(line []byte) int {
	start := len(line)
	for start > 0 && isLineWhitespace(line[start-1]) {
		start--
	}
	return start
}

// ClassifyLine returns the violations on a single line in column order.
// The line must exclude its terminator. Every tab outside the trailing
// whitespace run yields a tab violation at its raw 1-based column; a
// non-empty trailing run yields exactly one trailing-whitespace violation
// at the column where the run starts. A tab inside the trailing run is
// covered by the run and never reported twice. A fully blank line is a
// single trailing-whitespace violation at column 1.
//
// Tab size plays no role in classification; it only affects the fixup
// transform.
func ClassifyLine(line []byte, lineNum int) []Violation {
	runStart := trailingRunStart(line)

	var violations []Violation

	for i := 0; i < runStart; i++ {
		if line[i] == '\t' {
			violations = append(violations, Violation{
				Line:   lineNum,
				Column: i + 1,
				Kind:   KindTab,
				Raw:    '\t',
			})
		}
	}

	if runStart < len(line) {
		violations = append(violations, Violation{
			Line:   lineNum,
			Column: runStart + 1,
			Kind:   KindTrailingWhitespace,
			Raw:    line[runStart],
		})
	}

	return violations
}
