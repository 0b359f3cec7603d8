// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report defines the normalized assessment report and its
// renderers. Renderers serialize the model as-is and never re-derive
// scores.
package report

import (
	"time"

	"github.com/bartekus/agentready/internal/attr"
)

// SchemaVersion identifies the serialized report layout. Format changes
// bump this and operate on the serialized form, not on engine internals.
const SchemaVersion = "1"

// Counts tallies results by status across the whole run.
type Counts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

// CategoryScore is one category's weighted subscore. Score is nil when
// the category had no counted (pass/fail) attributes — "not assessed" —
// which is distinct from a score of zero.
type CategoryScore struct {
	Category       attr.Category `json:"category"`
	Score          *float64      `json:"score"`
	EarnedWeight   float64       `json:"earned_weight"`
	PossibleWeight float64       `json:"possible_weight"`
	Skipped        int           `json:"skipped"`
	Errored        int           `json:"errored"`
}

// AttributeLine is one attribute's entry in the report listing.
type AttributeLine struct {
	ID          string        `json:"id"`
	Category    attr.Category `json:"category"`
	Weight      float64       `json:"weight"`
	Status      attr.Status   `json:"status"`
	Evidence    string        `json:"evidence,omitempty"`
	Error       string        `json:"error,omitempty"`
	Description string        `json:"description"`
}

// Report is the finalized outcome of one assessment run. Immutable once
// built; identical inputs produce identical reports except GeneratedAt.
//
// OverallScore is nil when every attribute was skipped or errored: the
// run completed but nothing was assessable, which must not read as 0 or
// as 100.
type Report struct {
	SchemaVersion  string          `json:"schema_version"`
	RepositoryPath string          `json:"repository_path"`
	GeneratedAt    time.Time       `json:"generated_at"`
	OverallScore   *float64        `json:"overall_score"`
	Categories     []CategoryScore `json:"category_subscores"`
	Attributes     []AttributeLine `json:"attribute_results"`
	Counts         Counts          `json:"counts"`
}

// Assessed reports whether the run produced a meaningful overall score.
func (r *Report) Assessed() bool { return r.OverallScore != nil }
