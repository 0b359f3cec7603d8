// SPDX-License-Identifier: AGPL-3.0-or-later

package attr

import "sort"

// Registry holds the immutable, ordered list of attribute definitions.
// Registry order defines report order, regardless of execution order.
type Registry struct {
	defs  []Definition
	byID  map[string]Definition
	order map[string]int
}

// NewRegistry validates the definitions and builds a registry.
// Duplicate ids and non-positive weights are configuration errors.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:  make([]Definition, len(defs)),
		byID:  make(map[string]Definition, len(defs)),
		order: make(map[string]int, len(defs)),
	}
	copy(r.defs, defs)
	for i, d := range r.defs {
		if d.ID == "" {
			return nil, Configf("attribute at position %d has empty id", i)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, Configf("duplicate attribute id %q", d.ID)
		}
		if d.Weight <= 0 {
			return nil, Configf("attribute %q has non-positive weight %v", d.ID, d.Weight)
		}
		r.byID[d.ID] = d
		r.order[d.ID] = i
	}
	return r, nil
}

// Definitions returns the definitions in registry order. The returned
// slice is a copy; the registry itself never changes after construction.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of definitions.
func (r *Registry) Len() int { return len(r.defs) }

// Without returns a new registry omitting the excluded ids. Exclusion is
// a run-time selection; the receiver is left untouched. Excluding an id
// the registry does not know is a configuration error.
func (r *Registry) Without(exclusions []string) (*Registry, error) {
	if len(exclusions) == 0 {
		return r, nil
	}
	drop := make(map[string]bool, len(exclusions))
	for _, id := range exclusions {
		if _, ok := r.byID[id]; !ok {
			return nil, Configf("unknown attribute id in exclusion set: %q", id)
		}
		drop[id] = true
	}
	kept := make([]Definition, 0, len(r.defs)-len(drop))
	for _, d := range r.defs {
		if !drop[d.ID] {
			kept = append(kept, d)
		}
	}
	return NewRegistry(kept)
}

// SortResults orders results into registry order, in place. Results for
// ids outside the registry sort last, by id, so the output stays
// deterministic even on bad input.
func (r *Registry) SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		oi, iok := r.order[results[i].AttributeID]
		oj, jok := r.order[results[j].AttributeID]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return results[i].AttributeID < results[j].AttributeID
	})
}
