package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/agentready/internal/attr"
)

func TestStandardLayout_TestsSynonyms(t *testing.T) {
	tests := []struct {
		name     string
		testsDir string
		want     attr.Status
	}{
		{"tests directory", "tests", attr.StatusPass},
		{"test directory", "test", attr.StatusPass}, // second synonym must count on its own
		{"spec directory", "spec", attr.StatusPass},
		{"no test directory", "", attr.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			mkdir(t, dir, "src")
			if tt.testsDir != "" {
				mkdir(t, dir, tt.testsDir)
			}

			res := (StandardLayout{}).Run(context.Background(), newDeps(t, dir))
			assert.Equal(t, tt.want, res.Status)
			if tt.testsDir != "" {
				// Evidence must name which synonym matched.
				assert.Contains(t, res.Evidence, tt.testsDir)
			}
		})
	}
}

func TestStandardLayout_BothSynonymsReported(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "src")
	mkdir(t, dir, "tests")
	mkdir(t, dir, "test")

	res := (StandardLayout{}).Run(context.Background(), newDeps(t, dir))
	assert.Equal(t, attr.StatusPass, res.Status)
	// A match on the first synonym must not hide the second.
	assert.Contains(t, res.Evidence, "tests")
	assert.Contains(t, res.Evidence, "matched tests, test")
}

func TestStandardLayout_RootPackage(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "tests")
	writeFile(t, dir, "main.go", "package main\n")

	res := (StandardLayout{}).Run(context.Background(), newDeps(t, dir))
	assert.Equal(t, attr.StatusPass, res.Status)
	assert.Contains(t, res.Evidence, "root package")
}

func TestStandardLayout_NoSource(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "tests")
	writeFile(t, dir, "notes.txt", "nothing here")

	res := (StandardLayout{}).Run(context.Background(), newDeps(t, dir))
	assert.Equal(t, attr.StatusFail, res.Status)
}

func TestDocsDir(t *testing.T) {
	t.Run("docs", func(t *testing.T) {
		dir := t.TempDir()
		mkdir(t, dir, "docs")
		res := (DocsDir{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
		assert.Contains(t, res.Evidence, "docs")
	})
	t.Run("doc synonym", func(t *testing.T) {
		dir := t.TempDir()
		mkdir(t, dir, "doc")
		res := (DocsDir{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusPass, res.Status)
		assert.Contains(t, res.Evidence, "matched doc")
	})
	t.Run("absent", func(t *testing.T) {
		dir := t.TempDir()
		res := (DocsDir{}).Run(context.Background(), newDeps(t, dir))
		assert.Equal(t, attr.StatusFail, res.Status)
	})
}
