// Package vcs enumerates candidate files from the enclosing git working
// tree, so a run can be restricted to just the files a commit would
// touch.
package vcs

import (
	"fmt"
	"path/filepath"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// ChangedFiles returns the absolute paths of tracked files that are
// modified or added (staged or not) in the git working tree enclosing
// dir. Deleted and untracked files are excluded. The list is sorted and
// deduplicated; paths may still vanish before they are scanned, which
// the runner tolerates.
func ChangedFiles(dir string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository from %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("get worktree status: %w", err)
	}

	root := wt.Filesystem.Root()

	var files []string
	for path, st := range status {
		if !isChanged(st) {
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(path)))
	}

	sort.Strings(files)
	return files, nil
}

// isChanged reports whether a status entry is a tracked modification or
// addition.
func isChanged(st *git.FileStatus) bool {
	if st == nil {
		return false
	}
	if st.Staging == git.Deleted || st.Worktree == git.Deleted {
		return false
	}
	for _, code := range []git.StatusCode{st.Staging, st.Worktree} {
		switch code {
		case git.Modified, git.Added, git.Renamed, git.Copied:
			return true
		}
	}
	return false
}
