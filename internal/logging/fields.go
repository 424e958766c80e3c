package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldReason     = "reason"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldTabSize    = "tab_size"
	FieldExtensions = "checked_exts"
	FieldIgnored    = "ignored_files"
	FieldFix        = "fix"
	FieldChanged    = "changed"
	FieldJobs       = "jobs"
	FieldMode       = "mode"

	// Statistics fields.
	FieldFilesChecked    = "files_checked"
	FieldFilesWithIssues = "files_with_violations"
	FieldViolationsTotal = "violations_total"
	FieldFilesFixed      = "files_fixed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
