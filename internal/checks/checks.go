// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checks implements the attribute checks of the assessment
// engine, one small type per attribute, and the table that registers
// them in canonical order.
package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartekus/agentready/internal/runner"
)

// All returns the full check table in canonical registry order.
// The table is built fresh per call so callers can reweight or filter
// without sharing state.
func All() []runner.Check {
	return []runner.Check{
		&StandardLayout{},
		&DocsDir{},
		&Readme{},
		&AgentInstructions{},
		&License{},
		&SetupCommand{},
		&BuildAutomation{},
		&Lockfile{},
		&TestsPresent{},
		&CIConfig{},
		&TypeAnnotations{},
		&LintConfig{},
		&IgnoredSecrets{},
	}
}

// probeDirs checks every candidate directory name under root and returns
// the ones that exist as directories. Every candidate is evaluated; a
// match never short-circuits the rest, so evidence can name them all.
func probeDirs(root string, names ...string) ([]string, error) {
	var matched []string
	for _, name := range names {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("probing %s: %w", name, err)
		}
		if info.IsDir() {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// probeFiles is probeDirs for regular files.
func probeFiles(root string, names ...string) ([]string, error) {
	var matched []string
	for _, name := range names {
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("probing %s: %w", name, err)
		}
		if info.Mode().IsRegular() {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// readFile reads a repository file in one attempt. A missing file is
// reported via ok=false with a nil error; any other failure is returned
// for the caller to classify as errored. There is deliberately no
// exists-then-read two-step: the file is read directly and the read
// error itself is classified.
func readFile(root, rel string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// evidenceList renders "matched a, b (probed x, y, z)".
func evidenceList(matched, probed []string) string {
	if len(matched) == 0 {
		return "none of " + strings.Join(probed, ", ") + " present"
	}
	return "matched " + strings.Join(matched, ", ") + " (probed " + strings.Join(probed, ", ") + ")"
}
