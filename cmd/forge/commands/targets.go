package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildforge/forge/internal/core/domain"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the known build target names",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, name := range domain.TargetNames() {
				_, _ = fmt.Fprintln(out, name)
			}
		},
	}
}
