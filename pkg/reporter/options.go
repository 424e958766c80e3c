package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for the output writer (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Mode is the output verbosity.
	Mode Mode

	// Color controls colorized output: "auto", "always", "never".
	Color string

	// WorkingDir is the directory to make paths relative to. If empty,
	// paths are printed as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Mode:   ModeNormal,
		Color:  "auto",
	}
}
