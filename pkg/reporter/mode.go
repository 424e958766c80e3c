// Package reporter renders check results at one of three verbosity
// levels and prints the run summary.
package reporter

import "fmt"

// Mode is the output verbosity. It is a closed enumeration so the
// quiet/debug mutual exclusivity is enforced structurally rather than by
// combining boolean flags.
type Mode string

const (
	// ModeQuiet suppresses per-file output; only the summary is shown.
	ModeQuiet Mode = "quiet"

	// ModeNormal prints each violating file's path followed by one line
	// per violation (line number and kind).
	ModeNormal Mode = "normal"

	// ModeDebug prints every file considered, with column offsets and
	// caret indicators under the offending lines.
	ModeDebug Mode = "debug"
)

// ParseMode parses a mode string, returning an error for unknown modes.
func ParseMode(modeStr string) (Mode, error) {
	switch modeStr {
	case "normal", "":
		return ModeNormal, nil
	case "quiet":
		return ModeQuiet, nil
	case "debug":
		return ModeDebug, nil
	default:
		return "", fmt.Errorf("unknown output mode %q; valid modes: quiet, normal, debug", modeStr)
	}
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid returns true if the mode is a known valid mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeQuiet, ModeNormal, ModeDebug:
		return true
	default:
		return false
	}
}
