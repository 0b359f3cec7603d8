// SPDX-License-Identifier: AGPL-3.0-or-later

package scanner

import (
	"sort"
	"strings"
)

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "vendor" excludes "vendor/foo" and
	// "pkg/vendor/bar", but not "vendor_stuff/foo".
	ExcludeDirs []string

	// IncludeExtensions is a list of extensions to include (e.g. ".py").
	// If empty, all extensions are included.
	IncludeExtensions []string
}

// DefaultExcludeDirs returns directory names that are assessment noise:
// dependency trees, build output, caches.
func DefaultExcludeDirs() []string {
	return []string{
		".git",
		"node_modules",
		"vendor",
		"dist",
		"build",
		"out",
		"target",
		"__pycache__",
		".venv",
		"venv",
		".idea",
		".tox",
	}
}

// FilterFiles applies the filter options to a list of file paths.
// It returns a new sorted slice.
func FilterFiles(paths []string, opts FilterOptions) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if shouldExclude(path, opts.ExcludeDirs) {
			continue
		}
		if !shouldIncludeExtension(path, opts.IncludeExtensions) {
			continue
		}
		filtered = append(filtered, path)
	}

	sort.Strings(filtered)
	return filtered
}

func shouldExclude(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	parts := strings.Split(path, "/")
	for _, part := range parts {
		for _, exclude := range excludes {
			if part == exclude {
				return true
			}
		}
	}
	return false
}

func shouldIncludeExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
