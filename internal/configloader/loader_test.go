package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/checkfiles/internal/configloader"
	"github.com/yaklabco/checkfiles/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTabSize, result.Config.TabSize)
	assert.Equal(t, config.DefaultExtensions(), result.Config.Extensions)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ".checkfiles.yml",
		"tab_size: 4\nchecked_exts: [\".c\", \".h\"]\nignored_files: [\"gen/out.c\"]\n")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Config.TabSize)
	assert.Equal(t, []string{".c", ".h"}, result.Config.Extensions)
	assert.Equal(t, []string{"gen/out.c"}, result.Config.IgnoreFiles)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, ".checkfiles.yml", "tab_size: 2\n")

	nested := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Config.TabSize)
}

func TestLoad_SearchStopsAtVCSRoot(t *testing.T) {
	outer := t.TempDir()
	writeConfig(t, outer, ".checkfiles.yml", "tab_size: 2\n")

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: repo,
		IgnoreEnv:  true,
	})
	require.NoError(t, err)

	// The config above the repo root must not leak in.
	assert.Equal(t, config.DefaultTabSize, result.Config.TabSize)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ExplicitPathSkipsDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".checkfiles.yml", "tab_size: 2\n")
	explicit := writeConfig(t, dir, "custom.yml", "tab_size: 3\n")

	result, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: explicit,
		IgnoreEnv:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Config.TabSize)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".checkfiles.yml", "tab_size: [not a number\n")

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".checkfiles.yml", "tab_size: 4\n")

	t.Setenv("CHECKFILES_TAB_SIZE", "2")
	t.Setenv("CHECKFILES_CHECKED_EXTS", ".c .py")
	t.Setenv("CHECKFILES_IGNORED_FILES", "a.c b/c.py")

	result, err := configloader.Load(configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Config.TabSize)
	assert.Equal(t, []string{".c", ".py"}, result.Config.Extensions)
	assert.Equal(t, []string{"a.c", "b/c.py"}, result.Config.IgnoreFiles)
}

func TestLoad_InvalidEnvTabSize(t *testing.T) {
	t.Setenv("CHECKFILES_TAB_SIZE", "eight")

	_, err := configloader.Load(configloader.LoadOptions{WorkingDir: t.TempDir()})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "defaults are valid",
			cfg:     config.NewConfig(),
			wantErr: false,
		},
		{
			name:    "zero tab size",
			cfg:     &config.Config{TabSize: 0},
			wantErr: true,
		},
		{
			name:    "negative tab size",
			cfg:     &config.Config{TabSize: -4},
			wantErr: true,
		},
		{
			name:    "extension without dot",
			cfg:     &config.Config{TabSize: 8, Extensions: []string{"go"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := configloader.Validate(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
