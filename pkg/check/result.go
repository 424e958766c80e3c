// Package check implements the whitespace-hygiene engine: per-line
// classification of tab and trailing-whitespace violations, file scanning
// with binary detection, and the tab-expansion fixup transform.
package check

// Kind identifies the class of a whitespace violation.
type Kind string

const (
	// KindTab is an embedded horizontal-tab character.
	KindTab Kind = "tab"

	// KindTrailingWhitespace is a run of spaces or tabs at end of line.
	KindTrailingWhitespace Kind = "trailing-whitespace"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Violation is one disallowed whitespace pattern at a specific position.
// Line and Column are 1-based; Column counts raw characters, not expanded
// width. Violations are immutable once produced.
type Violation struct {
	// Line is the 1-based line number.
	Line int

	// Column is the 1-based column of the offending character
	// (for a trailing run, the first character of the run).
	Column int

	// Kind is the violation class.
	Kind Kind

	// Raw is the offending byte.
	Raw byte
}

// FileCheckResult is the outcome of scanning a single file.
// It is owned by the scan that produced it and consumed read-only.
type FileCheckResult struct {
	// Path is the file path that was scanned.
	Path string

	// Binary is true if the content was judged not to be plain text.
	// Binary files carry no violations.
	Binary bool

	// Readable is false if the file could not be opened or read.
	Readable bool

	// Violations is ordered by (line, column) ascending; no two
	// violations share a position.
	Violations []Violation

	// LineCount is the number of lines seen, counting a final line
	// without a terminator.
	LineCount int
}

// HasViolations reports whether any violations were found.
func (r *FileCheckResult) HasViolations() bool {
	return len(r.Violations) > 0
}

// Fixable reports whether the fixer may run on this result.
func (r *FileCheckResult) Fixable() bool {
	return r.Readable && !r.Binary && len(r.Violations) > 0
}

// FixOutcome is the result of rewriting a single file.
type FixOutcome struct {
	// Path is the file that was rewritten.
	Path string

	// ViolationsFixed is the number of violations resolved by the
	// rewrite. Equals the violation count of the input result.
	ViolationsFixed int

	// WriteErr is set if the corrected content could not be persisted.
	// The original file is left untouched in that case.
	WriteErr error
}
