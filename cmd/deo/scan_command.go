package main

import (
	"github.com/spf13/cobra"

	"deo/internal/discovery"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover sessions and their encode directories",
		Long: "Walk the source directory, classify every entry, and report which\n" +
			"sessions map to which encode directories along with any diagnostics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runDiscovery(cmd, ctx)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, newScanView(result))
			}
			out := cmd.OutOrStdout()
			printScanResult(out, result, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// runDiscovery resolves the source root and runs one discovery pass.
func runDiscovery(cmd *cobra.Command, ctx *commandContext) (*discovery.Result, error) {
	root, err := ctx.sourceRoot()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}
	return discovery.Discover(cmd.Context(), root, discovery.Options{Logger: logger})
}
