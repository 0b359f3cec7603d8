package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/agentready/internal/attr"
)

func TestReadme(t *testing.T) {
	for _, name := range []string{"README.md", "README.rst", "README"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, name, "# project")
			res := (Readme{}).Run(context.Background(), newDeps(t, dir))
			assert.Equal(t, attr.StatusPass, res.Status)
			assert.Contains(t, res.Evidence, name)
		})
	}

	t.Run("absent", func(t *testing.T) {
		dir := t.TempDir()
		res := (Readme{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})
}

func TestAgentInstructions(t *testing.T) {
	t.Run("AGENTS.md", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "AGENTS.md", "build with make")
		res := (AgentInstructions{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
	})
	t.Run("CLAUDE.md synonym", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "CLAUDE.md", "build with make")
		res := (AgentInstructions{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
		assert.Contains(t, res.Evidence, "CLAUDE.md")
	})
	t.Run("absent", func(t *testing.T) {
		dir := t.TempDir()
		res := (AgentInstructions{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})
}

func TestLicense(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "LICENSE", "MIT")
	res := (License{}).Run(context.Background(), newDeps(t, dir))
	assert.Equal(t, attr.StatusPass, res.Status)

	empty := t.TempDir()
	res = (License{}).Run(context.Background(), newDeps(t, empty))
	assert.Equal(t, attr.StatusFail, res.Status)
}

func TestSetupCommand(t *testing.T) {
	t.Run("command in leading sections", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "README.md", "# proj\n\n## Quick Start\n\n```bash\nmake setup\n```\n")
		res := (SetupCommand{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
		assert.Contains(t, res.Evidence, "make setup")
		assert.Contains(t, res.Evidence, "heuristic")
	})

	t.Run("prose but no command", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "README.md", "# proj\n\n## Installation\n\nClone, then configure six things by hand.\n")
		res := (SetupCommand{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})

	t.Run("command buried past leading sections", func(t *testing.T) {
		dir := t.TempDir()
		readme := "# proj\n\n## A\nx\n\n## B\nx\n\n## C\nx\n\n## Setup\n\nnpm install\n"
		writeFile(t, dir, "README.md", readme)
		res := (SetupCommand{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})

	t.Run("no readme is skipped not failed", func(t *testing.T) {
		dir := t.TempDir()
		res := (SetupCommand{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusSkipped, res.Status)
	})
}
