package check

import (
	"bytes"
	"context"

	"github.com/yaklabco/checkfiles/pkg/fsutil"
)

// ExpandTabs replaces each tab in line with enough spaces to reach the
// next column that is a multiple of tabSize. Columns are counted against
// the expanded output, so earlier tabs shift the stops of later ones.
// The line must exclude its terminator.
func ExpandTabs(line []byte, tabSize int) []byte {
	if tabSize <= 0 {
		panic("check: tab size must be positive")
	}
	if !bytes.ContainsRune(line, '\t') {
		return line
	}

	var buf bytes.Buffer
	buf.Grow(len(line) + tabSize)

	col := 0
	for _, b := range line {
		if b == '\t' {
			n := tabSize - col%tabSize
			for range n {
				buf.WriteByte(' ')
			}
			col += n
			continue
		}
		buf.WriteByte(b)
		col++
	}

	return buf.Bytes()
}

// fixLine expands tabs and strips the trailing whitespace run.
func fixLine(line []byte, tabSize int) []byte {
	return bytes.TrimRight(ExpandTabs(line, tabSize), " \t")
}

// FixContent returns content with every violation resolved: tabs expanded
// to the next tab stop and trailing whitespace stripped. Line terminators
// are preserved byte-for-byte, including a missing final newline. The
// transform is idempotent, and violation-free content round-trips
// unchanged.
func FixContent(content []byte, tabSize int) []byte {
	lines := splitLines(content)

	var buf bytes.Buffer
	buf.Grow(len(content))

	for _, line := range lines {
		buf.Write(fixLine(line.text, tabSize))
		buf.Write(line.term)
	}

	return buf.Bytes()
}

// Fix rewrites path so it no longer contains the violations recorded in
// result. The content is re-read so the transform runs against the
// current bytes on disk; external modification between scan and fix is
// not detected (best-effort, last-write-wins). The write is atomic: on
// any failure the original file is untouched and WriteErr is set.
//
// Calling Fix on a binary or unreadable result is a programming error.
func Fix(ctx context.Context, path string, result *FileCheckResult, tabSize int) FixOutcome {
	if result == nil || !result.Readable || result.Binary {
		panic("check: Fix requires a readable, non-binary scan result")
	}

	outcome := FixOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.WriteErr = err
		return outcome
	}

	fixed := FixContent(content, tabSize)
	if !bytes.Equal(fixed, content) {
		if err := fsutil.WriteAtomic(ctx, path, fixed, info.Mode); err != nil {
			outcome.WriteErr = err
			return outcome
		}
	}

	outcome.ViolationsFixed = len(result.Violations)
	return outcome
}
