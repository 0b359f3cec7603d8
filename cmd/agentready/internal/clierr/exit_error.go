// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clierr maps engine errors to process exit codes.
package clierr

import (
	"errors"
	"fmt"

	"github.com/bartekus/agentready/internal/attr"
)

// Exit codes of the agentready CLI.
const (
	ExitGeneric = 1
	// ExitConfig: invalid configuration (duplicate id, bad weight,
	// unknown exclusion). Nothing ran.
	ExitConfig = 2
	// ExitAborted: the target repository was unusable or a guard
	// declined the run. No report was emitted.
	ExitAborted = 3
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// Classify wraps an engine error with the exit code its taxonomy implies:
// configuration errors exit 2, aborted runs exit 3, everything else 1.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var cfg *attr.ConfigurationError
	if errors.As(err, &cfg) {
		return &ExitError{code: ExitConfig, msg: "invalid configuration", cause: err}
	}
	var aborted *attr.RunAbortedError
	if errors.As(err, &aborted) {
		return &ExitError{code: ExitAborted, msg: "assessment aborted", cause: err}
	}
	return err
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
// This keeps main() dumb and avoids duplicating errors.As logic.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitGeneric
}

func normalize(code int) int {
	if code <= 0 {
		return ExitGeneric
	}
	return code
}
