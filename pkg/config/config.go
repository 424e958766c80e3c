// Package config defines core configuration types for checkfiles.
// These are pure data structures; discovery, merging, and validation
// live in internal/configloader.
package config

// DefaultTabSize is the tab width used when no configuration sets one.
const DefaultTabSize = 8

// Config is the root configuration structure for checkfiles.
type Config struct {
	// TabSize is the tab width used by the fixup transform. Detection
	// is independent of it. Must be positive.
	TabSize int `yaml:"tab_size"`

	// Extensions is the allow-list of file extensions considered for
	// checking (lowercase, with leading dot).
	Extensions []string `yaml:"checked_exts"`

	// IgnoreFiles lists paths (relative to the working directory) that
	// are never checked, regardless of extension.
	IgnoreFiles []string `yaml:"ignored_files"`

	// CLI-level options (not persisted to config files).

	// Fix rewrites violating files in place.
	Fix bool `yaml:"-"`

	// Changed restricts candidates to files modified in the enclosing
	// git working tree.
	Changed bool `yaml:"-"`

	// Jobs is the number of parallel scan workers. 0 means sequential.
	Jobs int `yaml:"-"`
}

// DefaultExtensions returns the default extension allow-list.
func DefaultExtensions() []string {
	return []string{
		".c", ".h", ".cpp", ".xml", ".cs", ".html", ".js", ".css",
		".txt", ".py", ".nsi", ".java", ".aspx", ".asp", ".bat",
		".cmd", ".glsl", ".go", ".md",
	}
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		TabSize:    DefaultTabSize,
		Extensions: DefaultExtensions(),
	}
}
