package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/testutil/golden"
)

func sampleReport() *Report {
	overall := 72.7
	s100 := 100.0
	s0 := 0.0
	return &Report{
		SchemaVersion:  SchemaVersion,
		RepositoryPath: "/tmp/fixture",
		GeneratedAt:    time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		OverallScore:   &overall,
		Categories: []CategoryScore{
			{Category: attr.CategoryStructure, Score: &s100, EarnedWeight: 8, PossibleWeight: 8},
			{Category: attr.CategoryQuality, Score: &s0, EarnedWeight: 0, PossibleWeight: 3},
			{Category: attr.CategoryTesting, Score: nil, Skipped: 1},
		},
		Attributes: []AttributeLine{
			{ID: "structure:standard-layout", Category: attr.CategoryStructure, Weight: 8, Status: attr.StatusPass, Evidence: "matched tests", Description: "layout"},
			{ID: "quality:type-annotations", Category: attr.CategoryQuality, Weight: 3, Status: attr.StatusFail, Evidence: "coverage 40% | low", Description: "typing"},
			{ID: "testing:ci", Category: attr.CategoryTesting, Weight: 2, Status: attr.StatusSkipped, Evidence: "not applicable", Description: "ci"},
		},
		Counts: Counts{Passed: 1, Failed: 1, Skipped: 1},
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var back Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *sampleReport(), back)
}

func TestWriteJSON_NotAssessedIsNull(t *testing.T) {
	r := sampleReport()
	r.OverallScore = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	// Explicit null, never 0 and never omitted.
	assert.Contains(t, buf.String(), `"overall_score": null`)
}

func TestWriteMarkdown_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))
	golden.Assert(t, golden.TestdataDir(t), "markdown_report", buf.String())
}

func TestWriteHTML_EmbedsReportAsData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, `<script type="application/json" id="report-data">`)
	assert.Contains(t, out, "72.7")

	// The embedded payload parses back to the same report.
	start := strings.Index(out, `id="report-data">`)
	require.Greater(t, start, 0)
	rest := out[start+len(`id="report-data">`):]
	end := strings.Index(rest, "</script>")
	require.Greater(t, end, 0)

	var back Report
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &back))
	assert.Equal(t, *sampleReport(), back)
}

func TestWriteHTML_HostileEvidenceStaysData(t *testing.T) {
	r := sampleReport()
	r.Attributes[0].Evidence = `</script><script>alert(1)</script>`

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, r))

	// The payload must not be able to terminate its script element or
	// inject markup anywhere in the document.
	assert.NotContains(t, buf.String(), `</script><script>alert(1)`)
}

func TestWriteMarkdown_NotAssessed(t *testing.T) {
	r := sampleReport()
	r.OverallScore = nil

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, r))
	assert.Contains(t, buf.String(), "Overall score: not assessed")
}
