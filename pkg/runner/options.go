// Package runner orchestrates scanning, optional fixup, and summary
// aggregation across a candidate file list.
package runner

import "github.com/yaklabco/checkfiles/pkg/config"

// Options controls a single check run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// check. If empty, defaults to the current working directory.
	Paths []string

	// Enumerated marks Paths as produced by an enumerator (such as
	// --changed) rather than typed by the user, so the extension
	// allow-list applies to file paths too.
	Enumerated bool

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions is the allow-list of file extensions (lowercase, with
	// leading dot). Defaults to config.DefaultExtensions().
	Extensions []string

	// IgnoreFiles are paths relative to WorkingDir that are never
	// checked.
	IgnoreFiles []string

	// TabSize is the tab width for fixup. Must be positive.
	TabSize int

	// Fix rewrites violating files in place.
	Fix bool

	// Jobs is the number of concurrent workers. Values below 2 run
	// the file list sequentially in enumeration order.
	Jobs int
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
