package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build -target <name> -output <path> [-debug] [-append]",
		Short: "Trigger one player build",
		Long: `Trigger one player build through the project's editor backend.

Tokens after "build" are scanned the way the editor scans its own command
line: flag names match case-insensitively, -target and -output take the next
token, -debug and -append are presence flags, and unrelated tokens are
tolerated. This lets CI systems forward an editor invocation line unchanged.`,
		Args: cobra.ArbitraryArgs,
		// Tokens use the editor's single-dash convention and may include
		// host-runtime noise, so cobra must not interpret them as flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && isHelpToken(args[0]) {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			// An empty token list goes through resolution like any other;
			// it fails on the missing target so automation whose argument
			// variable expands empty exits non-zero instead of faking
			// success.
			return c.app.Run(cmd.Context(), args)
		},
	}
}

func isHelpToken(tok string) bool {
	return tok == "-h" || tok == "--help"
}
