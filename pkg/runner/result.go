package runner

import "github.com/yaklabco/checkfiles/pkg/check"

// FileOutcome is the terminal state of one candidate file.
type FileOutcome struct {
	// Path is the candidate path as enumerated.
	Path string

	// Result is the scan result. Present even when Err is set, with
	// Readable false.
	Result *check.FileCheckResult

	// Fix is the fixup outcome, nil unless fixup ran on this file.
	Fix *check.FixOutcome

	// Err is set if the file could not be read.
	Err error
}

// FileError records a per-file failure for the run summary.
type FileError struct {
	Path string
	Err  error
}

// Summary is the run-level accumulator. It is created at run start and
// mutated only through accumulate, the single serialization point.
type Summary struct {
	// FilesChecked is the number of files scanned as text.
	FilesChecked int

	// FilesWithViolations is the number of files with at least one
	// violation.
	FilesWithViolations int

	// TotalViolations counts violations before any fixing.
	TotalViolations int

	// FilesFixed is the number of files rewritten by fixup.
	FilesFixed int

	// FilesSkippedBinary is the number of candidates skipped as binary.
	FilesSkippedBinary int

	// Errors holds per-file read and write failures in completion order.
	Errors []FileError
}

// Result is the overall run result.
type Result struct {
	// Files contains the outcome for each candidate, in enumeration
	// order.
	Files []FileOutcome

	// Summary contains the aggregate statistics for the run.
	Summary Summary

	// TabSize is the tab width the run used, echoed for debug output.
	TabSize int
}

// Failed reports whether the run must exit nonzero: violations were
// detected (fixed or not) or any per-file error was recorded. Fixing
// never clears the failure status.
func (r *Result) Failed() bool {
	if r == nil {
		return false
	}
	return r.Summary.TotalViolations > 0 || len(r.Summary.Errors) > 0
}

// accumulate folds one file outcome into the summary.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	s := &r.Summary

	if outcome.Err != nil {
		s.Errors = append(s.Errors, FileError{Path: outcome.Path, Err: outcome.Err})
		return
	}

	if outcome.Result == nil {
		return
	}

	if outcome.Result.Binary {
		s.FilesSkippedBinary++
		return
	}

	s.FilesChecked++

	if n := len(outcome.Result.Violations); n > 0 {
		s.FilesWithViolations++
		s.TotalViolations += n
	}

	if outcome.Fix == nil {
		return
	}
	if outcome.Fix.WriteErr != nil {
		s.Errors = append(s.Errors, FileError{Path: outcome.Path, Err: outcome.Fix.WriteErr})
		return
	}
	s.FilesFixed++
}
