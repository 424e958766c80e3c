package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/checkfiles/pkg/runner"
)

// writeFiles creates the given relative paths under dir with dummy content.
func writeFiles(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("content\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// relPaths converts absolute discovered paths back to slash-separated
// paths relative to dir for comparison.
func relPaths(t *testing.T, dir string, files []string) []string {
	t.Helper()
	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_WalksDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"main.go",
		"docs/readme.md",
		"image.png",
		"sub/inner.py",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		TabSize:    8,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	want := map[string]bool{
		"main.go":        true,
		"docs/readme.md": true,
		"sub/inner.py":   true,
	}
	if len(got) != len(want) {
		t.Fatalf("discovered %v, want %d files", got, len(want))
	}
	for _, f := range got {
		if !want[f] {
			t.Errorf("unexpected candidate %q", f)
		}
	}
}

func TestDiscover_SkipsHiddenEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir,
		"visible.go",
		".hidden.go",
		".git/config.go",
		"src/.secret.py",
	)

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	if len(got) != 1 || got[0] != "visible.go" {
		t.Errorf("discovered %v, want only visible.go", got)
	}
}

func TestDiscover_ExplicitFileSkipsExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.go", "b.weird")

	// A directory walk filters on the allow-list.
	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Extensions: []string{".go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	got := relPaths(t, dir, files)
	if len(got) != 1 || got[0] != "a.go" {
		t.Errorf("walk discovered %v, want only a.go", got)
	}

	// Naming the file directly overrides the allow-list.
	files, err = runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"a.go", "b.weird"},
		Extensions: []string{".go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	got = relPaths(t, dir, files)
	if len(got) != 2 || got[0] != "a.go" || got[1] != "b.weird" {
		t.Errorf("discovered %v, want both explicit files", got)
	}
}

func TestDiscover_EnumeratedPathsKeepExtensionFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.go", "b.lock")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"a.go", "b.lock"},
		Enumerated: true,
		Extensions: []string{".go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	if len(got) != 1 || got[0] != "a.go" {
		t.Errorf("discovered %v, want the non-listed extension filtered", got)
	}
}

func TestDiscover_ExplicitFileStillIgnorable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "gen/out.cfg")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:  dir,
		Paths:       []string{"gen/out.cfg"},
		IgnoreFiles: []string{"gen/out.cfg"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 0 {
		t.Errorf("discovered %v, want the ignored file dropped", relPaths(t, dir, files))
	}
}

func TestDiscover_MissingExplicitPathKept(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{"gone.go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	if len(got) != 1 || got[0] != "gone.go" {
		t.Errorf("discovered %v, want the missing path kept as candidate", got)
	}
}

func TestDiscover_DeduplicatesOverlappingPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "pkg/a.go")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: dir,
		Paths:      []string{".", "pkg", "pkg/a.go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Errorf("discovered %v, want exactly one candidate", relPaths(t, dir, files))
	}
}

func TestDiscover_IgnoreList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "keep.go", "vendor/skip.go")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:  dir,
		IgnoreFiles: []string{"vendor/skip.go"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	got := relPaths(t, dir, files)
	if len(got) != 1 || got[0] != "keep.go" {
		t.Errorf("discovered %v, want only keep.go", got)
	}
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "a.go")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
	if err == nil {
		t.Error("Discover() expected cancellation error")
	}
}
