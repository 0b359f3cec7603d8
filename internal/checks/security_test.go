package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/agentready/internal/attr"
)

func TestIgnoredSecrets(t *testing.T) {
	t.Run("ignored and not committed", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".gitignore", "*.pyc\n.env\n")
		res := (IgnoredSecrets{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
	})

	t.Run("env file committed", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".gitignore", ".env\n")
		writeFile(t, dir, ".env", "SECRET=1\n")
		res := (IgnoredSecrets{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
		assert.Contains(t, res.Evidence, ".env")
	})

	t.Run("env example is fine", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".gitignore", ".env\n")
		writeFile(t, dir, ".env.example", "SECRET=\n")
		res := (IgnoredSecrets{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
	})

	t.Run("no gitignore", func(t *testing.T) {
		dir := t.TempDir()
		res := (IgnoredSecrets{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})

	t.Run("gitignore without env coverage", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".gitignore", "*.pyc\n")
		res := (IgnoredSecrets{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})
}
