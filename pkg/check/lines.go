package check

// SplitLines returns the line contents of content without terminators,
// including a final line that lacks one. Used by the debug renderer to
// recover the raw text of violating lines.
func SplitLines(content []byte) [][]byte {
	lines := splitLines(content)
	out := make([][]byte, len(lines))
	for i, line := range lines {
		out[i] = line.text
	}
	return out
}

// sourceLine is one line of content together with the terminator it was
// read with, so a rewrite can preserve the terminator style exactly.
type sourceLine struct {
	// text is the line content excluding the terminator.
	text []byte

	// term is "\n", "\r\n", or empty for a final unterminated line.
	term []byte
}

// splitLines splits content into lines, keeping each line's terminator.
// A final line without a terminator is included with an empty term.
func splitLines(content []byte) []sourceLine {
	var lines []sourceLine
	start := 0

	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		if end > start && content[end-1] == '\r' {
			end--
		}
		lines = append(lines, sourceLine{
			text: content[start:end],
			term: content[end : i+1],
		})
		start = i + 1
	}

	if start < len(content) {
		lines = append(lines, sourceLine{text: content[start:]})
	}

	return lines
}
