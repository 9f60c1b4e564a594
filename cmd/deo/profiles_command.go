package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deo/internal/profiles"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the HandBrake presets available for encoding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			set, err := profiles.Load(cfg.Paths.ProfilesDir)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, set.Items())
			}

			def, _ := set.Default()
			rows := make([][]string, 0, set.Len())
			for _, p := range set.Items() {
				rows = append(rows, []string{p.DisplayName, p.PresetName, yesNo(p == def), p.Path})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Name", "Preset", "Default", "Path"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
