// Package configloader resolves the checkfiles configuration from config
// files, environment variables, and CLI flags.
package configloader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/checkfiles/pkg/config"
)

// configFileNames are the project config file names searched for, in
// order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".checkfiles.yml",
	".checkfiles.yaml",
}

// vcsRootMarkers are directories that stop the upward config search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project
	// config. Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. Environment variables (CHECKFILES_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.checkfiles.yml upward search)
//  4. Defaults
//
// CLI flags are applied by the caller on top of the returned config.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.NewConfig()}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	configPath := opts.ExplicitPath
	if configPath == "" {
		configPath = findProjectConfig(workDir)
	}

	if configPath != "" {
		if err := loadFile(configPath, result.Config); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, configPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := Validate(result.Config); err != nil {
		return nil, err
	}

	return result, nil
}

// findProjectConfig searches upward from workDir for a project config
// file, stopping at a VCS root or the filesystem root.
func findProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		atRoot := false
		for _, marker := range vcsRootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				atRoot = true
				break
			}
		}

		parent := filepath.Dir(dir)
		if atRoot || parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFile merges a YAML config file into cfg.
func loadFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}
