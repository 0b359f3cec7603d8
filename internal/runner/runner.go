// SPDX-License-Identifier: AGPL-3.0-or-later

package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/scanner"
)

const (
	DefaultConcurrency  = 4
	DefaultCheckTimeout = 10 * time.Second
	DefaultMaxFiles     = 50000
)

// Options configures a run. Guard hooks are policy decisions the caller
// owns; the runner only invokes them.
type Options struct {
	// Concurrency bounds the number of checks evaluated in parallel.
	Concurrency int

	// CheckTimeout bounds each individual check. A check that exceeds it
	// is recorded as errored, not failed.
	CheckTimeout time.Duration

	// MaxFiles is the file count above which Confirm is consulted.
	MaxFiles int

	// Warn is called before scanning a known-sensitive root (home
	// directory, filesystem root). Nil disables the warning.
	Warn func(path string)

	// Confirm is consulted when the repository exceeds MaxFiles.
	// Returning false aborts the run. Nil means proceed.
	Confirm func(files int) bool

	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.CheckTimeout <= 0 {
		o.CheckTimeout = DefaultCheckTimeout
	}
	if o.MaxFiles <= 0 {
		o.MaxFiles = DefaultMaxFiles
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Runner executes attribute checks over one repository.
type Runner struct {
	checks []Check
	opts   Options
}

// New creates a runner over the given checks.
func New(checks []Check, opts Options) *Runner {
	return &Runner{checks: checks, opts: opts.withDefaults()}
}

// Run evaluates all non-excluded checks against repoPath and returns the
// results in registry order together with the registry used for the run.
//
// One misbehaving check degrades one line of the report: panics and
// timeouts become errored results for that attribute only. Only a
// structurally unusable repository aborts the whole run.
func (r *Runner) Run(ctx context.Context, repoPath string, exclusions []string) (*attr.Registry, []attr.Result, error) {
	log := r.opts.Logger

	defs := make([]attr.Definition, 0, len(r.checks))
	byID := make(map[string]Check, len(r.checks))
	for _, c := range r.checks {
		d := c.Definition()
		defs = append(defs, d)
		byID[d.ID] = c
	}
	registry, err := attr.NewRegistry(defs)
	if err != nil {
		return nil, nil, err
	}
	registry, err = registry.Without(exclusions)
	if err != nil {
		return nil, nil, err
	}

	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, nil, &attr.RunAbortedError{Path: repoPath, Reason: "cannot resolve path", Cause: err}
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, nil, &attr.RunAbortedError{Path: absPath, Reason: "repository not readable", Cause: err}
	}
	if !info.IsDir() {
		return nil, nil, &attr.RunAbortedError{Path: absPath, Reason: "not a directory"}
	}

	if r.opts.Warn != nil && sensitiveRoot(absPath) {
		r.opts.Warn(absPath)
	}

	scn := scanner.New(absPath)
	count, err := scn.Count(ctx)
	if err != nil {
		return nil, nil, &attr.RunAbortedError{Path: absPath, Reason: "enumerating files", Cause: err}
	}
	if count > r.opts.MaxFiles && r.opts.Confirm != nil && !r.opts.Confirm(count) {
		return nil, nil, &attr.RunAbortedError{
			Path:   absPath,
			Reason: fmt.Sprintf("declined: %d files exceeds threshold %d", count, r.opts.MaxFiles),
		}
	}

	deps := &Deps{RepoRoot: absPath, Scanner: scn, Logger: log}
	active := registry.Definitions()

	log.Info("assessment run starting",
		zap.String("repo", absPath),
		zap.Int("attributes", len(active)),
		zap.Int("files", count),
		zap.Int("concurrency", r.opts.Concurrency))

	results := make([]attr.Result, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, def := range active {
		i, def := i, def
		check := byID[def.ID]
		g.Go(func() error {
			start := time.Now()
			res := r.runOne(gctx, check, def, deps)
			// Results are keyed by registry position, so completion order
			// never affects report order.
			results[i] = res
			log.Debug("check finished",
				zap.String("attribute", def.ID),
				zap.String("status", string(res.Status)),
				zap.Duration("took", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	log.Info("assessment run finished", zap.String("repo", absPath))
	return registry, results, nil
}

// runOne evaluates a single check under its timeout, containing panics
// and normalizing the result's attribute id to the registry's.
func (r *Runner) runOne(ctx context.Context, check Check, def attr.Definition, deps *Deps) attr.Result {
	cctx, cancel := context.WithTimeout(ctx, r.opts.CheckTimeout)
	defer cancel()

	done := make(chan attr.Result, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- attr.Erroredf(def.ID, "check panicked: %v", rec)
			}
		}()
		done <- check.Run(cctx, deps)
	}()

	select {
	case res := <-done:
		res.AttributeID = def.ID
		return res
	case <-cctx.Done():
		return attr.Erroredf(def.ID, "check timed out after %s", r.opts.CheckTimeout)
	}
}

// sensitiveRoot reports whether path is a location the user almost
// certainly did not mean to scan wholesale.
func sensitiveRoot(path string) bool {
	if path == string(os.PathSeparator) {
		return true
	}
	home, err := os.UserHomeDir()
	return err == nil && path == home
}
