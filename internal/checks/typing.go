// SPDX-License-Identifier: AGPL-3.0-or-later

package checks

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/runner"
	"github.com/bartekus/agentready/internal/scanner"
)

// annotationThreshold is the minimum annotated fraction of parameter and
// return slots for the attribute to pass.
const annotationThreshold = 0.80

// TypeAnnotations measures Python type-annotation coverage with a
// structural Tree-sitter parse instead of textual pattern matching, so a
// type hint inside a string or comment never counts. Repositories without
// Python sources are skipped, not failed.
type TypeAnnotations struct{}

func (TypeAnnotations) Definition() attr.Definition {
	return attr.Definition{
		ID:          "quality:type-annotations",
		Category:    attr.CategoryQuality,
		Weight:      7,
		Description: "Python functions carry type annotations",
	}
}

func (c TypeAnnotations) Run(ctx context.Context, deps *runner.Deps) attr.Result {
	id := c.Definition().ID

	pyFiles, err := deps.Scanner.FilesFiltered(ctx, scanner.FilterOptions{
		ExcludeDirs:       scanner.DefaultExcludeDirs(),
		IncludeExtensions: []string{".py", ".pyw"},
	})
	if err != nil {
		return attr.Errored(id, err)
	}
	if len(pyFiles) == 0 {
		return attr.Skip(id, "no Python sources to assess")
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	var annotated, total int
	for _, rel := range pyFiles {
		data, ok, err := readFile(deps.RepoRoot, rel)
		if err != nil {
			return attr.Errored(id, fmt.Errorf("reading %s: %w", rel, err))
		}
		if !ok {
			// Enumerated but gone by read time; nothing to measure.
			continue
		}
		tree, err := parser.ParseCtx(ctx, nil, data)
		if err != nil {
			return attr.Errored(id, fmt.Errorf("parsing %s: %w", rel, err))
		}
		a, t := countAnnotations(tree.RootNode(), data)
		tree.Close()
		annotated += a
		total += t
	}

	if total == 0 {
		return attr.Skip(id, fmt.Sprintf("%d Python files but no annotatable functions", len(pyFiles)))
	}

	coverage := float64(annotated) / float64(total)
	evidence := fmt.Sprintf("structural parse of %d Python files: %d/%d annotatable slots annotated (%.0f%%, threshold %.0f%%)",
		len(pyFiles), annotated, total, coverage*100, annotationThreshold*100)
	if coverage >= annotationThreshold {
		return attr.Pass(id, evidence)
	}
	return attr.Fail(id, evidence)
}

// countAnnotations walks the AST counting annotatable slots: one per
// parameter (self/cls excluded) and one return slot per function.
func countAnnotations(node *sitter.Node, src []byte) (annotated, total int) {
	if node.Type() == "function_definition" {
		a, t := countFunctionSlots(node, src)
		annotated += a
		total += t
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		a, t := countAnnotations(node.NamedChild(i), src)
		annotated += a
		total += t
	}
	return annotated, total
}

func countFunctionSlots(fn *sitter.Node, src []byte) (annotated, total int) {
	params := fn.ChildByFieldName("parameters")
	if params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			switch p.Type() {
			case "identifier", "default_parameter":
				name := paramName(p, src)
				if i == 0 && (name == "self" || name == "cls") {
					continue
				}
				total++
			case "typed_parameter", "typed_default_parameter":
				total++
				annotated++
			case "list_splat_pattern", "dictionary_splat_pattern":
				// *args / **kwargs are conventionally left bare.
			}
		}
	}

	// One return slot per function.
	total++
	if fn.ChildByFieldName("return_type") != nil {
		annotated++
	}
	return annotated, total
}

func paramName(p *sitter.Node, src []byte) string {
	if p.Type() == "identifier" {
		return string(src[p.StartByte():p.EndByte()])
	}
	if name := p.ChildByFieldName("name"); name != nil {
		return string(src[name.StartByte():name.EndByte()])
	}
	if p.NamedChildCount() > 0 {
		first := p.NamedChild(0)
		return string(src[first.StartByte():first.EndByte()])
	}
	return ""
}
