// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"encoding/json"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

var (
	automationNames = []string{"Makefile", "makefile", "Justfile", "justfile", "Taskfile.yml", "pyproject.toml"}
	lockfileNames   = []string{
		"go.sum",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		"poetry.lock",
		"uv.lock",
		"Cargo.lock",
		"Gemfile.lock",
	}
)

// BuildAutomation checks for build/setup automation: a Makefile or an
// equivalent task runner file, or npm scripts.
type BuildAutomation struct{}

func (BuildAutomation) Definition() attr.Definition {
	return attr.Definition{
		ID:          "build:automation",
		Category:    attr.CategoryBuild,
		Weight:      5,
		Description: "Build or setup automation present (Makefile, task runner, npm scripts)",
	}
}

func (c BuildAutomation) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	matched, err := probeFiles(deps.RepoRoot, automationNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	if len(matched) > 0 {
		return attr.Pass(id, evidenceList(matched, automationNames))
	}

	// package.json only counts when it actually defines scripts.
	data, ok, err := readFile(deps.RepoRoot, "package.json")
	if err != nil {
		return attr.Errored(id, err)
	}
	if ok {
		var pkg struct {
			Scripts map[string]string `json:"scripts"`
		}
		if json.Unmarshal(data, &pkg) == nil && len(pkg.Scripts) > 0 {
			return attr.Pass(id, "package.json defines npm scripts")
		}
	}

	return attr.Fail(id, evidenceList(nil, automationNames))
}

// Lockfile checks that dependencies are pinned by a lockfile.
type Lockfile struct{}

func (Lockfile) Definition() attr.Definition {
	return attr.Definition{
		ID:          "build:lockfile",
		Category:    attr.CategoryBuild,
		Weight:      4,
		Description: "Dependency lockfile present",
	}
}

func (c Lockfile) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	matched, err := probeFiles(deps.RepoRoot, lockfileNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, lockfileNames)
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}
