// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"path"
	"strings"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

// IgnoredSecrets checks that env files are git-ignored and that none are
// committed to the tree.
type IgnoredSecrets struct{}

func (IgnoredSecrets) Definition() attr.Definition {
	return attr.Definition{
		ID:          "security:ignored-secrets",
		Category:    attr.CategorySecurity,
		Weight:      6,
		Description: ".gitignore covers env files and none are committed",
	}
}

func (c IgnoredSecrets) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	files, err := deps.Scanner.Files(ctx)
	if err != nil {
		return attr.Errored(id, err)
	}
	for _, f := range files {
		base := path.Base(f)
		if base == ".env" || strings.HasPrefix(base, ".env.") && base != ".env.example" && base != ".env.sample" {
			return attr.Fail(id, "env file committed to the tree: "+f)
		}
	}

	data, ok, err := readFile(deps.RepoRoot, ".gitignore")
	if err != nil {
		return attr.Errored(id, err)
	}
	if !ok {
		return attr.Fail(id, "no .gitignore at repository root")
	}

	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == ".env" || entry == ".env*" || entry == "*.env" || entry == ".env.*" {
			return attr.Pass(id, ".gitignore covers env files ("+entry+"); none committed")
		}
	}
	return attr.Fail(id, ".gitignore present but does not cover .env files")
}
