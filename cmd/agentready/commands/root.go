// SPDX-License-Identifier: AGPL-3.0-or-later

/*
agentready assesses how ready a source repository is for AI-agent
collaboration. It runs a registry of weighted attribute checks over the
repository, aggregates them into a deterministic score, and renders the
result as JSON, Markdown, or HTML.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd constructs the agentready root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("AGENTREADY_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "agentready",
		Short:         "agentready - Agent-readiness assessment for source repositories",
		Long:          "agentready scores a repository against weighted agent-readiness attributes and renders the result as JSON, Markdown, or HTML.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of agentready",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "agentready version %s\n", version)
		},
	})

	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newAttributesCmd())

	return cmd
}

// newLogger builds the CLI logger. Quiet by default; --verbose switches
// to development output at debug level.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}
