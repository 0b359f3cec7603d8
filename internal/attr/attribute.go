// SPDX-License-Identifier: AGPL-3.0-or-later

// Package attr defines the attribute vocabulary of the assessment engine:
// what an attribute is, what outcomes a check can produce, and the registry
// that fixes the canonical attribute order for a run.
package attr

import "fmt"

// Status represents the outcome of evaluating one attribute.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	// StatusSkipped means the attribute was deliberately not evaluated
	// (inapplicable to the repository). Excluded from score arithmetic.
	StatusSkipped Status = "skipped"
	// StatusErrored means evaluation was attempted but hit an unexpected
	// fault. Also excluded from score arithmetic, but reported separately
	// from skipped for debugging.
	StatusErrored Status = "errored"
)

// Counted reports whether the status participates in weight arithmetic.
func (s Status) Counted() bool {
	return s == StatusPass || s == StatusFail
}

// Category groups related attributes for subscoring.
type Category string

const (
	CategoryStructure     Category = "structure"
	CategoryDocumentation Category = "documentation"
	CategoryBuild         Category = "build"
	CategoryTesting       Category = "testing"
	CategoryQuality       Category = "quality"
	CategorySecurity      Category = "security"
)

// Definition describes one agent-readiness attribute. Definitions are
// immutable once the registry is built.
type Definition struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description"`
}

// Result is the outcome of evaluating one attribute against a repository.
// Created once per run per attribute, never mutated afterwards.
type Result struct {
	AttributeID string `json:"attribute_id"`
	Status      Status `json:"status"`
	Evidence    string `json:"evidence,omitempty"`
	Err         string `json:"error,omitempty"`
}

// Pass returns a passing result with supporting evidence.
func Pass(id, evidence string) Result {
	return Result{AttributeID: id, Status: StatusPass, Evidence: evidence}
}

// Fail returns a failing result. Evidence explains what was missing.
func Fail(id, evidence string) Result {
	return Result{AttributeID: id, Status: StatusFail, Evidence: evidence}
}

// Skip returns a skipped result with the reason the attribute was
// inapplicable.
func Skip(id, reason string) Result {
	return Result{AttributeID: id, Status: StatusSkipped, Evidence: reason}
}

// Errored returns an errored result carrying the underlying fault.
func Errored(id string, err error) Result {
	return Result{AttributeID: id, Status: StatusErrored, Err: err.Error()}
}

// Erroredf is a formatted variant of Errored.
func Erroredf(id, format string, args ...any) Result {
	return Result{AttributeID: id, Status: StatusErrored, Err: fmt.Sprintf(format, args...)}
}
