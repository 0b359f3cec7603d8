// SPDX-License-Identifier: AGPL-3.0-or-later

// Package score aggregates attribute results into the assessment report.
// It is a pure function of (registry, results): no retries, no I/O, fully
// deterministic for identical inputs.
package score

import (
	"math"
	"time"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/report"
)

type categoryAccum struct {
	earned   float64
	possible float64
	skipped  int
	errored  int
}

// Build produces the finalized report for one run. Results are reordered
// into registry order first, so execution order never leaks into the
// report.
//
// Only pass/fail results enter weight arithmetic. Skipped and errored
// results are excluded from both numerator and denominator but stay in
// the listing and the counts. A category, or the whole run, with zero
// counted weight gets a nil score ("not assessed") rather than a division.
func Build(registry *attr.Registry, results []attr.Result, repoPath string, now time.Time) report.Report {
	ordered := make([]attr.Result, len(results))
	copy(ordered, results)
	registry.SortResults(ordered)

	var (
		lines      []report.AttributeLine
		counts     report.Counts
		byCategory = map[attr.Category]*categoryAccum{}
		catOrder   []attr.Category
	)

	for _, res := range ordered {
		def, ok := registry.Lookup(res.AttributeID)
		if !ok {
			// A result for an unregistered attribute would mean a runner
			// bug; drop it rather than corrupt the arithmetic.
			continue
		}

		lines = append(lines, report.AttributeLine{
			ID:          def.ID,
			Category:    def.Category,
			Weight:      def.Weight,
			Status:      res.Status,
			Evidence:    res.Evidence,
			Error:       res.Err,
			Description: def.Description,
		})

		acc := byCategory[def.Category]
		if acc == nil {
			acc = &categoryAccum{}
			byCategory[def.Category] = acc
			catOrder = append(catOrder, def.Category)
		}

		switch res.Status {
		case attr.StatusPass:
			counts.Passed++
			acc.earned += def.Weight
			acc.possible += def.Weight
		case attr.StatusFail:
			counts.Failed++
			acc.possible += def.Weight
		case attr.StatusSkipped:
			counts.Skipped++
			acc.skipped++
		case attr.StatusErrored:
			counts.Errored++
			acc.errored++
		}
	}

	var categories []report.CategoryScore
	var totalEarned, totalPossible float64
	for _, cat := range catOrder {
		acc := byCategory[cat]
		cs := report.CategoryScore{
			Category:       cat,
			EarnedWeight:   acc.earned,
			PossibleWeight: acc.possible,
			Skipped:        acc.skipped,
			Errored:        acc.errored,
		}
		if acc.possible > 0 {
			cs.Score = ptr(round1(100 * acc.earned / acc.possible))
		}
		categories = append(categories, cs)
		totalEarned += acc.earned
		totalPossible += acc.possible
	}

	var overall *float64
	if totalPossible > 0 {
		// Rounded exactly once, on the final ratio. Category rounding
		// above never feeds back into this number.
		overall = ptr(round1(100 * totalEarned / totalPossible))
	}

	return report.Report{
		SchemaVersion:  report.SchemaVersion,
		RepositoryPath: repoPath,
		GeneratedAt:    now.UTC(),
		OverallScore:   overall,
		Categories:     categories,
		Attributes:     lines,
		Counts:         counts,
	}
}

// round1 rounds half away from zero to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func ptr(f float64) *float64 { return &f }
