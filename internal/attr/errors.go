// SPDX-License-Identifier: AGPL-3.0-or-later

package attr

import "fmt"

// ConfigurationError indicates invalid engine configuration: duplicate
// attribute ids, non-positive weights, or exclusion of an unknown id.
// Fatal at startup, before any check runs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Configf builds a ConfigurationError from a format string.
func Configf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// RunAbortedError indicates the whole run could not proceed: the target
// repository is missing or unreadable, or a policy guard declined the run.
// No partial report is emitted.
type RunAbortedError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *RunAbortedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("run aborted for %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("run aborted for %s: %s", e.Path, e.Reason)
}

func (e *RunAbortedError) Unwrap() error { return e.Cause }
