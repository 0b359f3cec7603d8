// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"io"
	"strings"
)

const notAssessed = "not assessed"

// WriteMarkdown renders the report as a Markdown document. Output is
// deterministic for identical reports.
func WriteMarkdown(w io.Writer, r *Report) error {
	var b strings.Builder

	b.WriteString("# Agent Readiness Report\n\n")
	fmt.Fprintf(&b, "- Repository: `%s`\n", r.RepositoryPath)
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(&b, "- Overall score: %s\n\n", scoreCell(r.OverallScore))

	b.WriteString("## Categories\n\n")
	b.WriteString("| Category | Score | Earned | Possible | Skipped | Errored |\n")
	b.WriteString("|----------|-------|--------|----------|---------|--------|\n")
	for _, c := range r.Categories {
		fmt.Fprintf(&b, "| %s | %s | %.1f | %.1f | %d | %d |\n",
			c.Category, scoreCell(c.Score), c.EarnedWeight, c.PossibleWeight, c.Skipped, c.Errored)
	}

	b.WriteString("\n## Attributes\n\n")
	b.WriteString("| Attribute | Category | Weight | Status | Detail |\n")
	b.WriteString("|-----------|----------|--------|--------|--------|\n")
	for _, a := range r.Attributes {
		detail := a.Evidence
		if a.Error != "" {
			detail = a.Error
		}
		fmt.Fprintf(&b, "| %s | %s | %.1f | %s | %s |\n",
			a.ID, a.Category, a.Weight, a.Status, markdownCell(detail))
	}

	fmt.Fprintf(&b, "\n%d passed, %d failed, %d skipped, %d errored.\n",
		r.Counts.Passed, r.Counts.Failed, r.Counts.Skipped, r.Counts.Errored)

	_, err := io.WriteString(w, b.String())
	return err
}

func scoreCell(s *float64) string {
	if s == nil {
		return notAssessed
	}
	return fmt.Sprintf("%.1f", *s)
}

// markdownCell keeps evidence text from breaking the table.
func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
