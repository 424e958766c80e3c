package check

import (
	"bytes"
	"context"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/checkfiles/pkg/fsutil"
)

// binarySampleSize is the leading sample inspected by the secondary
// binary heuristic when no NUL byte is present.
const binarySampleSize = 8192

// IsBinary reports whether content should be exempt from scanning.
// A NUL byte anywhere classifies the content as binary; otherwise a
// leading sample is judged by go-enry's text/binary heuristic.
func IsBinary(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return true
	}
	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}
	return enry.IsBinary(sample)
}

// Scan reads and classifies a single file.
//
// Ordinary content issues never surface as errors: binary files return a
// result with Binary set and no violations. Only open/read failures
// return an error, alongside a result with Readable set to false, so the
// caller can record the failure and continue with the next file.
func Scan(ctx context.Context, path string) (*FileCheckResult, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return &FileCheckResult{Path: path}, err
	}
	return ScanContent(path, content), nil
}

// ScanContent classifies in-memory content without file I/O.
func ScanContent(path string, content []byte) *FileCheckResult {
	result := &FileCheckResult{Path: path, Readable: true}

	if IsBinary(content) {
		result.Binary = true
		return result
	}

	lines := splitLines(content)
	result.LineCount = len(lines)

	for i, line := range lines {
		result.Violations = append(result.Violations, ClassifyLine(line.text, i+1)...)
	}

	return result
}
