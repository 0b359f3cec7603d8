// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/agentready/cmd/agentready/internal/clierr"
	"github.com/bartekus/agentready/internal/checks"
	"github.com/bartekus/agentready/internal/config"
	"github.com/bartekus/agentready/internal/report"
	"github.com/bartekus/agentready/internal/runner"
	"github.com/bartekus/agentready/internal/score"
)

type assessFlags struct {
	exclude     []string
	configPath  string
	format      string
	output      string
	concurrency int
	timeout     time.Duration
	yes         bool
}

func newAssessCmd() *cobra.Command {
	flags := &assessFlags{}

	cmd := &cobra.Command{
		Use:   "assess <repository-path>",
		Short: "Assess a repository's agent readiness",
		Long: `Run all attribute checks against the repository at the given path and
render the assessment report. A completed run always yields a report,
possibly with errored entries; only an unusable repository yields none.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return clierr.Classify(runAssess(cmd, args[0], flags, verbose))
		},
	}

	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "attribute ids to exclude from the run (repeatable)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML run configuration")
	cmd.Flags().StringVar(&flags.format, "format", "json", "report format: json, markdown, or html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "parallel check limit (default 4)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "per-check timeout (default 10s)")
	cmd.Flags().BoolVar(&flags.yes, "yes", false, "proceed without confirmation on large repositories")

	return cmd
}

func runAssess(cmd *cobra.Command, repoPath string, flags *assessFlags, verbose bool) error {
	render, err := rendererFor(flags.format)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return err
		}
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if flags.concurrency > 0 {
		opts.Concurrency = flags.concurrency
	}
	if flags.timeout > 0 {
		opts.CheckTimeout = flags.timeout
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	opts.Logger = logger

	opts.Warn = func(path string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: assessing %s scans a sensitive location\n", path)
	}
	opts.Confirm = func(files int) bool {
		if flags.yes {
			return true
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "repository has %d files; proceed? [y/N] ", files)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, _ := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	table, err := runner.Reweight(checks.All(), cfg.Weights)
	if err != nil {
		return err
	}
	exclusions := append(append([]string{}, cfg.Exclusions...), flags.exclude...)

	r := runner.New(table, opts)
	registry, results, err := r.Run(cmd.Context(), repoPath, exclusions)
	if err != nil {
		return err
	}

	rep := score.Build(registry, results, repoPath, time.Now())

	var buf bytes.Buffer
	if err := render(&buf, &rep); err != nil {
		return err
	}

	if flags.output != "" {
		return report.AtomicWrite(flags.output, buf.Bytes())
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}

func rendererFor(format string) (func(w io.Writer, r *report.Report) error, error) {
	switch format {
	case "json":
		return report.WriteJSON, nil
	case "markdown", "md":
		return report.WriteMarkdown, nil
	case "html":
		return report.WriteHTML, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want json, markdown, or html)", format)
	}
}
