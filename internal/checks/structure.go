// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"strings"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
	"github.com/bartekus/agentready/internal/scanner"
)

// Directory name synonyms. Each synonym is probed and reported
// independently; the check passes if any matches.
var (
	sourceDirNames = []string{"src", "lib", "app", "internal", "pkg"}
	testDirNames   = []string{"tests", "test", "spec"}
	docsDirNames   = []string{"docs", "doc"}
)

// StandardLayout checks that the repository follows a recognizable
// source/tests layout so an agent can navigate it.
type StandardLayout struct{}

func (StandardLayout) Definition() attr.Definition {
	return attr.Definition{
		ID:          "structure:standard-layout",
		Category:    attr.CategoryStructure,
		Weight:      10,
		Description: "Source and test directories follow a standard layout",
	}
}

func (c StandardLayout) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	srcMatched, err := probeDirs(deps.RepoRoot, sourceDirNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	testMatched, err := probeDirs(deps.RepoRoot, testDirNames...)
	if err != nil {
		return attr.Errored(id, err)
	}

	hasSource := len(srcMatched) > 0
	if !hasSource {
		// A flat root package (Go single-package repos, simple Python
		// tools) still counts as a navigable source layout.
		rootFiles, err := deps.Scanner.FilesFiltered(ctx, scanner.FilterOptions{
			IncludeExtensions: []string{".go", ".py", ".js", ".ts", ".rs", ".rb", ".java"},
		})
		if err != nil {
			return attr.Errored(id, err)
		}
		for _, f := range rootFiles {
			if !strings.Contains(f, "/") {
				hasSource = true
				srcMatched = []string{"(root package)"}
				break
			}
		}
	}

	evidence := "source: " + evidenceList(srcMatched, sourceDirNames) +
		"; tests: " + evidenceList(testMatched, testDirNames)

	if hasSource && len(testMatched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}

// DocsDir checks for a documentation directory.
type DocsDir struct{}

func (DocsDir) Definition() attr.Definition {
	return attr.Definition{
		ID:          "structure:docs-dir",
		Category:    attr.CategoryDocumentation,
		Weight:      4,
		Description: "Dedicated documentation directory exists",
	}
}

func (c DocsDir) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	matched, err := probeDirs(deps.RepoRoot, docsDirNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, docsDirNames)
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}
