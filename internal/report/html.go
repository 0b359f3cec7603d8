// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"html/template"
	"io"

	"github.com/bartekus/agentready/internal/attr"
)

// htmlTmpl renders the human-readable summary and embeds the full report
// JSON as data. Field interpolation goes through html/template's
// contextual escaping; the JSON payload is HTML-escaped by
// MarshalEmbeddable before it is marked safe for the script element.
var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Agent Readiness Report</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
table { border-collapse: collapse; width: 100%; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
.status-pass { color: #1a7f37; } .status-fail { color: #cf222e; }
.status-skipped, .status-errored { color: #9a6700; }
</style>
</head>
<body>
<h1>Agent Readiness Report</h1>
<p>Repository: <code>{{.Report.RepositoryPath}}</code><br>
Generated: {{.Report.GeneratedAt.Format "2006-01-02T15:04:05Z07:00"}}<br>
Overall score: <strong>{{.Overall}}</strong></p>

<h2>Categories</h2>
<table>
<tr><th>Category</th><th>Score</th><th>Earned</th><th>Possible</th><th>Skipped</th><th>Errored</th></tr>
{{range .Categories}}<tr>
<td>{{.Category}}</td><td>{{.Score}}</td><td>{{printf "%.1f" .EarnedWeight}}</td><td>{{printf "%.1f" .PossibleWeight}}</td><td>{{.Skipped}}</td><td>{{.Errored}}</td>
</tr>{{end}}
</table>

<h2>Attributes</h2>
<table>
<tr><th>Attribute</th><th>Category</th><th>Weight</th><th>Status</th><th>Detail</th></tr>
{{range .Report.Attributes}}<tr>
<td>{{.ID}}</td><td>{{.Category}}</td><td>{{printf "%.1f" .Weight}}</td><td class="status-{{.Status}}">{{.Status}}</td><td>{{if .Error}}{{.Error}}{{else}}{{.Evidence}}{{end}}</td>
</tr>{{end}}
</table>

<p>{{.Report.Counts.Passed}} passed, {{.Report.Counts.Failed}} failed, {{.Report.Counts.Skipped}} skipped, {{.Report.Counts.Errored}} errored.</p>

<script type="application/json" id="report-data">{{.Payload}}</script>
</body>
</html>
`))

type htmlCategory struct {
	Category       attr.Category
	Score          string
	EarnedWeight   float64
	PossibleWeight float64
	Skipped        int
	Errored        int
}

// WriteHTML renders the report as a standalone HTML document with the
// report JSON embedded as structured data, never as executable script.
func WriteHTML(w io.Writer, r *Report) error {
	payload, err := MarshalEmbeddable(r)
	if err != nil {
		return err
	}

	cats := make([]htmlCategory, 0, len(r.Categories))
	for _, c := range r.Categories {
		cats = append(cats, htmlCategory{
			Category:       c.Category,
			Score:          scoreCell(c.Score),
			EarnedWeight:   c.EarnedWeight,
			PossibleWeight: c.PossibleWeight,
			Skipped:        c.Skipped,
			Errored:        c.Errored,
		})
	}

	data := struct {
		Report     *Report
		Overall    string
		Categories []htmlCategory
		Payload    template.JS
	}{
		Report:     r,
		Overall:    scoreCell(r.OverallScore),
		Categories: cats,
		// Safe: MarshalEmbeddable escaped all HTML-significant runes.
		Payload: template.JS(payload),
	}
	return htmlTmpl.Execute(w, data)
}
