// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

// TestsPresent checks that the repository contains test files anywhere in
// the tree, across the common naming conventions.
type TestsPresent struct{}

func (TestsPresent) Definition() attr.Definition {
	return attr.Definition{
		ID:          "testing:tests-present",
		Category:    attr.CategoryTesting,
		Weight:      10,
		Description: "Automated test files exist",
	}
}

func (c TestsPresent) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	files, err := deps.Scanner.Files(ctx)
	if err != nil {
		return attr.Errored(id, err)
	}

	count := 0
	sample := ""
	for _, f := range files {
		if isTestFile(f) {
			count++
			if sample == "" {
				sample = f
			}
		}
	}
	if count > 0 {
		return attr.Pass(id, fmt.Sprintf("%d test files (e.g. %s)", count, sample))
	}
	return attr.Fail(id, "no test files found under any common naming convention")
}

func isTestFile(p string) bool {
	base := path.Base(p)
	switch {
	case strings.HasSuffix(base, "_test.go"),
		strings.HasSuffix(base, "_test.py"),
		strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py"),
		strings.HasSuffix(base, ".test.js"),
		strings.HasSuffix(base, ".test.ts"),
		strings.HasSuffix(base, ".test.tsx"),
		strings.HasSuffix(base, ".spec.js"),
		strings.HasSuffix(base, ".spec.ts"),
		strings.HasSuffix(base, "_spec.rb"),
		strings.HasSuffix(base, "Test.java"):
		return true
	}
	return false
}

// ciConfigNames are probed as files; workflow directories are handled
// separately because any yaml inside them counts.
var ciConfigNames = []string{".gitlab-ci.yml", ".circleci/config.yml", "azure-pipelines.yml", "Jenkinsfile"}

// CIConfig checks for continuous integration configuration.
type CIConfig struct{}

func (CIConfig) Definition() attr.Definition {
	return attr.Definition{
		ID:          "testing:ci",
		Category:    attr.CategoryTesting,
		Weight:      6,
		Description: "Continuous integration configuration present",
	}
}

func (c CIConfig) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	files, err := deps.Scanner.Files(ctx)
	if err != nil {
		return attr.Errored(id, err)
	}
	for _, f := range files {
		if strings.HasPrefix(f, ".github/workflows/") &&
			(strings.HasSuffix(f, ".yml") || strings.HasSuffix(f, ".yaml")) {
			return attr.Pass(id, "GitHub Actions workflow: "+f)
		}
	}

	matched, err := probeFiles(deps.RepoRoot, ciConfigNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, append([]string{".github/workflows/*"}, ciConfigNames...))
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}
