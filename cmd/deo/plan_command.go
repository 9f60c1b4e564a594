package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"deo/internal/encoding"
	"deo/internal/media"
	"deo/internal/preflight"
	"deo/internal/profiles"
	"deo/internal/selection"
	"deo/internal/services"
)

type planOptions struct {
	profile   string
	sessions  []string
	kinds     []string
	overwrite bool
	json      bool
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Select mappings and preview the HandBrakeCLI jobs for them",
		Long: "Discover mappings, filter them by session and kind, assign a profile,\n" +
			"and print the HandBrakeCLI invocation for every file that still needs\n" +
			"encoding. No encoder process is started.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Profile display name (defaults to the first profile)")
	cmd.Flags().StringArrayVar(&opts.sessions, "session", nil, "Only plan this session (repeatable)")
	cmd.Flags().StringSliceVar(&opts.kinds, "kind", nil, "Only plan this kind: tv or movie (repeatable)")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Plan files whose output already exists")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	return cmd
}

func runPlan(cmd *cobra.Command, ctx *commandContext, opts planOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	rules, err := opts.rules()
	if err != nil {
		return err
	}
	result, err := runDiscovery(cmd, ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if result.Empty() {
		if opts.json {
			return writeJSON(cmd, []jobView{})
		}
		fmt.Fprintln(out, emptyResultMessage)
		return nil
	}

	set, err := profiles.Load(cfg.Paths.ProfilesDir)
	if err != nil {
		return err
	}
	selected, err := rules.Select(result.Mappings, set)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		if opts.json {
			return writeJSON(cmd, []jobView{})
		}
		fmt.Fprintln(out, "No mappings matched the selection")
		return nil
	}

	mappings := make([]media.Mapping, 0, len(selected))
	for _, s := range selected {
		mappings = append(mappings, s.Mapping)
	}
	if failed := preflight.Failed(preflight.CheckEncodeDirs(mappings)); len(failed) > 0 {
		if !opts.json {
			for _, line := range preflightLines(failed, colorize) {
				fmt.Fprintln(out, line)
			}
		}
		return services.Wrap(services.ErrValidation, "plan", "check encode dirs", fmt.Sprintf("%d encode directories are not writable", len(failed)), nil)
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	var preview io.Writer = out
	if opts.json {
		preview = io.Discard
	} else {
		for _, line := range renderSectionHeader("Commands", colorize) {
			fmt.Fprintln(out, line)
		}
	}
	runner := encoding.NewRunner(encoding.NewPreview(preview, cfg.HandBrake.Binary), encoding.RunnerOptions{
		LockPath:  cfg.Paths.LockPath,
		Overwrite: opts.overwrite || cfg.Encoding.OverwriteExisting,
		Logger:    logger,
	})
	report, err := runner.Run(cmd.Context(), encoding.Plan(selected))
	if err != nil {
		return err
	}

	if opts.json {
		views := make([]jobView, 0, len(report.Outcomes))
		for _, outcome := range report.Outcomes {
			views = append(views, newJobView(outcome, cfg.HandBrake.Binary))
		}
		return writeJSON(cmd, views)
	}
	printPlanReport(out, selected, report, colorize)
	if report.Failed() {
		return fmt.Errorf("%d of %d jobs failed", report.Count(encoding.StatusFailed), len(report.Outcomes))
	}
	return nil
}

func (o planOptions) rules() (selection.Rules, error) {
	rules := selection.Rules{Sessions: o.sessions, Profile: o.profile}
	for _, value := range o.kinds {
		kind, err := media.ParseKind(value)
		if err != nil {
			return selection.Rules{}, services.Wrap(services.ErrValidation, "plan", "parse kind", "invalid --kind", err)
		}
		rules.Kinds = append(rules.Kinds, kind)
	}
	return rules, nil
}

func printPlanReport(out io.Writer, selected []selection.Selection, report encoding.Report, colorize bool) {
	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Plan", colorize) {
		fmt.Fprintln(out, line)
	}
	for _, s := range selected {
		fmt.Fprintln(out, s.String())
	}

	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		status := string(outcome.Status)
		if outcome.Err != nil {
			status = fmt.Sprintf("%s: %v", status, outcome.Err)
		}
		rows = append(rows, []string{
			outcome.Job.Session.String(),
			outcome.Job.Label(),
			outcome.Job.Profile.DisplayName,
			outcome.Job.Output,
			status,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Session", "File", "Profile", "Output", "Status"},
		rows,
		nil,
	))
	fmt.Fprintf(out, "%d planned, %d skipped, %d failed\n",
		report.Count(encoding.StatusEncoded),
		report.Count(encoding.StatusSkipped),
		report.Count(encoding.StatusFailed),
	)
}
