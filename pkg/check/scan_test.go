package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{
			name:    "plain text",
			content: []byte("hello world\n"),
			want:    false,
		},
		{
			name:    "empty content",
			content: nil,
			want:    false,
		},
		{
			name:    "nul byte anywhere",
			content: []byte("hello\x00world"),
			want:    true,
		},
		{
			name:    "utf8 text",
			content: []byte("héllo wörld\n"),
			want:    false,
		},
		{
			name:    "png magic bytes",
			content: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsBinary(tt.content))
		})
	}
}

func TestScanContent(t *testing.T) {
	t.Parallel()

	t.Run("clean content has no violations", func(t *testing.T) {
		t.Parallel()

		result := ScanContent("clean.txt", []byte("one\ntwo\n"))

		assert.True(t, result.Readable)
		assert.False(t, result.Binary)
		assert.Empty(t, result.Violations)
		assert.Equal(t, 2, result.LineCount)
		assert.False(t, result.HasViolations())
		assert.False(t, result.Fixable())
	})

	t.Run("violations carry line numbers", func(t *testing.T) {
		t.Parallel()

		result := ScanContent("dirty.txt", []byte("ok\nbad\t\nalso bad  \n"))

		require.Len(t, result.Violations, 2)
		assert.Equal(t, 2, result.Violations[0].Line)
		assert.Equal(t, KindTrailingWhitespace, result.Violations[0].Kind)
		assert.Equal(t, 3, result.Violations[1].Line)
		assert.True(t, result.Fixable())
	})

	t.Run("binary content skipped without violations", func(t *testing.T) {
		t.Parallel()

		result := ScanContent("blob", []byte("text\x00with\tnul  \n"))

		assert.True(t, result.Binary)
		assert.True(t, result.Readable)
		assert.Empty(t, result.Violations)
		assert.False(t, result.Fixable())
	})

	t.Run("final line without newline counted", func(t *testing.T) {
		t.Parallel()

		result := ScanContent("x", []byte("one\ntwo"))
		assert.Equal(t, 2, result.LineCount)
	})
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("reads file from disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("a\tb\n"), 0644))

		result, err := Scan(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, path, result.Path)
		assert.True(t, result.Readable)
		require.Len(t, result.Violations, 1)
		assert.Equal(t, KindTab, result.Violations[0].Kind)
	})

	t.Run("missing file returns error and unreadable result", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")

		result, err := Scan(context.Background(), path)

		assert.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, path, result.Path)
		assert.False(t, result.Readable)
		assert.False(t, result.Fixable())
	})

	t.Run("cancelled context aborts read", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Scan(ctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
