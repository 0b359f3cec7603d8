// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scanner enumerates the files of a target repository, read-only.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Scanner provides access to a repository's file tree. Paths are
// slash-separated and relative to the repository root.
type Scanner struct {
	repoRoot string

	mu    sync.Mutex
	cache []string
}

// New creates a Scanner for the given repository root.
func New(repoRoot string) *Scanner {
	return &Scanner{repoRoot: repoRoot}
}

// Root returns the repository root the scanner was created with.
func (s *Scanner) Root() string { return s.repoRoot }

// Files returns all repository files, caching the result for the instance
// lifetime. For git work trees it asks git, which respects .gitignore;
// otherwise it falls back to walking the tree with the default excludes.
func (s *Scanner) Files(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	var files []string
	var err error
	if s.isGitWorkTree() {
		files = s.gitFiles(ctx)
	}
	if files == nil {
		// Not a git repo, or git itself is unavailable.
		files, err = s.walkFiles()
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	s.cache = files
	return s.cache, nil
}

// FilesFiltered returns files matching the filter options.
func (s *Scanner) FilesFiltered(ctx context.Context, opts FilterOptions) ([]string, error) {
	all, err := s.Files(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFiles(all, opts), nil
}

// Count returns the number of enumerated files. Backs the runner's
// large-repository guard.
func (s *Scanner) Count(ctx context.Context) (int, error) {
	all, err := s.Files(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *Scanner) isGitWorkTree() bool {
	info, err := os.Stat(filepath.Join(s.repoRoot, ".git"))
	// .git is a directory in a normal clone and a file in a worktree.
	return err == nil && (info.IsDir() || info.Mode().IsRegular())
}

// gitFiles lists tracked files via git ls-files -z. Returns nil on
// failure so the caller can fall back to walking.
func (s *Scanner) gitFiles(ctx context.Context) []string {
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = s.repoRoot
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	if len(out) == 0 {
		return []string{}
	}
	trimmed := strings.TrimSuffix(string(out), "\x00")
	return strings.Split(trimmed, "\x00")
}

func (s *Scanner) walkFiles() ([]string, error) {
	excludes := DefaultExcludeDirs()
	files := []string{}
	root := os.DirFS(s.repoRoot)
	err := fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable subtree degrades to "not enumerated"; checks
			// still classify their own read failures per attribute.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path == "." {
				return nil
			}
			for _, ex := range excludes {
				if d.Name() == ex {
					return fs.SkipDir
				}
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
