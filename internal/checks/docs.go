// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"regexp"
	"strings"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
)

var (
	readmeNames  = []string{"README.md", "README.rst", "README.txt", "README"}
	agentNames   = []string{"AGENTS.md", "CLAUDE.md", ".cursorrules"}
	licenseNames = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"}
)

// Readme checks for a top-level README under any of its accepted names.
type Readme struct{}

func (Readme) Definition() attr.Definition {
	return attr.Definition{
		ID:          "docs:readme",
		Category:    attr.CategoryDocumentation,
		Weight:      8,
		Description: "Repository has a top-level README",
	}
}

func (c Readme) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	matched, err := probeFiles(deps.RepoRoot, readmeNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, readmeNames)
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}

// AgentInstructions checks for agent-facing instruction files.
type AgentInstructions struct{}

func (AgentInstructions) Definition() attr.Definition {
	return attr.Definition{
		ID:          "docs:agent-instructions",
		Category:    attr.CategoryDocumentation,
		Weight:      8,
		Description: "Agent instruction file (AGENTS.md or equivalent) present",
	}
}

func (c AgentInstructions) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	matched, err := probeFiles(deps.RepoRoot, agentNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, agentNames)
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}

// License checks for a license file.
type License struct{}

func (License) Definition() attr.Definition {
	return attr.Definition{
		ID:          "docs:license",
		Category:    attr.CategoryDocumentation,
		Weight:      3,
		Description: "License file present",
	}
}

func (c License) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID
	matched, err := probeFiles(deps.RepoRoot, licenseNames...)
	if err != nil {
		return attr.Errored(id, err)
	}
	evidence := evidenceList(matched, licenseNames)
	if len(matched) > 0 {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}

// setupCommandRe matches common one-command setup invocations inside
// fenced blocks or prose: "make setup", "npm install", "uv sync"...
var setupCommandRe = regexp.MustCompile(`(?mi)^\s*(?:\$ )?((?:make|just|task|npm|yarn|pnpm|pip|pipx|poetry|uv|cargo|go|bundle)\s+(?:install|setup|sync|bootstrap|mod download|deps))\b`)

var setupKeywords = []string{"install", "setup", "quick start", "getting started", "installation"}

// SetupCommand checks that the README documents a single setup command in
// its leading sections. Detection is textual and therefore approximate;
// the evidence states the heuristic basis rather than asserting certainty.
type SetupCommand struct{}

func (SetupCommand) Definition() attr.Definition {
	return attr.Definition{
		ID:          "docs:setup-command",
		Category:    attr.CategoryBuild,
		Weight:      3,
		Description: "README documents a one-command setup",
	}
}

func (c SetupCommand) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	var content []byte
	var readme string
	for _, name := range readmeNames {
		data, ok, err := readFile(deps.RepoRoot, name)
		if err != nil {
			return attr.Errored(id, err)
		}
		if ok {
			content, readme = data, name
			break
		}
	}
	if readme == "" {
		return attr.Skip(id, "no README to assess setup documentation against")
	}

	// Only the leading sections count: setup buried at the bottom of a
	// long README is not "prominent".
	sections := strings.SplitN(string(content), "\n## ", 5)
	if len(sections) > 4 {
		sections = sections[:4]
	}
	leading := strings.Join(sections, "\n## ")

	if m := setupCommandRe.FindStringSubmatch(leading); m != nil {
		return attr.Pass(id, "heuristic text match in "+readme+": found setup command `"+strings.TrimSpace(m[1])+"` in leading sections")
	}

	lower := strings.ToLower(leading)
	for _, kw := range setupKeywords {
		if strings.Contains(lower, kw) {
			return attr.Fail(id, "heuristic text match in "+readme+": found setup prose ("+kw+") but no single setup command")
		}
	}
	return attr.Fail(id, "heuristic text match in "+readme+": no setup command or setup section in leading sections")
}
