// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner executes attribute checks against a repository and
// collects their results in registry order.
package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/scanner"
)

// Deps contains dependencies injected into checks.
type Deps struct {
	RepoRoot string
	Scanner  *scanner.Scanner
	Logger   *zap.Logger
}

// Check evaluates one attribute against a repository. Implementations
// must be read-only over the repository and must classify their own
// faults: a missing file is a fail (criterion unmet), an unreadable file
// is errored (could not determine).
type Check interface {
	// Definition returns the attribute this check evaluates.
	Definition() attr.Definition

	// Run evaluates the attribute. The context carries the per-check
	// deadline; long scans should honor it.
	Run(ctx context.Context, deps *Deps) attr.Result
}

// Reweight returns a copy of the check list with weights overridden by
// attribute id. Overriding an unknown id or setting a non-positive weight
// is a configuration error.
func Reweight(checks []Check, overrides map[string]float64) ([]Check, error) {
	if len(overrides) == 0 {
		return checks, nil
	}
	known := make(map[string]bool, len(checks))
	for _, c := range checks {
		known[c.Definition().ID] = true
	}
	for id, w := range overrides {
		if !known[id] {
			return nil, attr.Configf("weight override for unknown attribute id %q", id)
		}
		if w <= 0 {
			return nil, attr.Configf("weight override for %q is non-positive: %v", id, w)
		}
	}
	out := make([]Check, len(checks))
	for i, c := range checks {
		if w, ok := overrides[c.Definition().ID]; ok {
			out[i] = &reweighted{Check: c, weight: w}
		} else {
			out[i] = c
		}
	}
	return out, nil
}

type reweighted struct {
	Check
	weight float64
}

func (r *reweighted) Definition() attr.Definition {
	d := r.Check.Definition()
	d.Weight = r.weight
	return d
}
