// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"strings"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

var lintConfigNames = []string{
	".golangci.yml",
	".golangci.yaml",
	"ruff.toml",
	".ruff.toml",
	".flake8",
	".eslintrc",
	".eslintrc.js",
	".eslintrc.json",
	".eslintrc.yml",
	"eslint.config.js",
	"eslint.config.mjs",
	"biome.json",
	".rubocop.yml",
}

// LintConfig checks for linter configuration, either as a dedicated
// config file or as a [tool.ruff] section in pyproject.toml.
type LintConfig struct{}

func (LintConfig) Definition() attr.Definition {
	return attr.Definition{
		ID:          "quality:lint-config",
		Category:    attr.CategoryQuality,
		Weight:      4,
		Description: "Linter configuration present",
	}
}

func (c LintConfig) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	matched, err := probeFiles(deps.RepoRoot, lintConfigNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	if len(matched) > 0 {
		return attr.Pass(id, evidenceList(matched, lintConfigNames))
	}

	data, ok, err := readFile(deps.RepoRoot, "pyproject.toml")
	if err != nil {
		return attr.Errored(id, err)
	}
	if ok {
		content := string(data)
		for _, section := range []string{"[tool.ruff", "[tool.flake8", "[tool.pylint", "[tool.mypy"} {
			if strings.Contains(content, section) {
				return attr.Pass(id, "pyproject.toml declares "+section+"] configuration")
			}
		}
	}

	return attr.Fail(id, evidenceList(nil, lintConfigNames))
}
