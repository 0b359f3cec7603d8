// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/agentready/internal/attr"
	"github.com/bartekus/agentready/internal/checks"
)

func newAttributesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "attributes",
		Short: "List the attribute registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := make([]attr.Definition, 0)
			for _, c := range checks.All() {
				defs = append(defs, c.Definition())
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"attributes": defs})
			}

			for _, d := range defs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-14s %5.1f  %s\n", d.ID, d.Category, d.Weight, d.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
