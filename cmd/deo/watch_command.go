package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"deo/internal/discovery"
	"deo/internal/logging"
	"deo/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run discovery whenever the source tree changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := ctx.sourceRoot()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if debounce <= 0 {
				debounce = cfg.WatchDebounce()
			}

			w, err := watch.New(root, watch.Options{Debounce: debounce}, logger)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			rescan := func(runCtx context.Context) {
				result, err := discovery.Discover(runCtx, root, discovery.Options{Logger: logger})
				if err != nil {
					if runCtx.Err() != nil {
						return
					}
					logger.Warn("discovery failed",
						logging.String(logging.FieldEventType, "watch_rescan_failed"),
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "check the source directory is still mounted"),
					)
					return
				}
				fmt.Fprintf(out, "[%s] ", time.Now().Format(time.TimeOnly))
				printWatchSummary(out, result)
			}

			fmt.Fprintf(out, "Watching %s (debounce %s); press Ctrl+C to stop\n", root, debounce)
			rescan(cmd.Context())
			return w.Run(cmd.Context(), rescan)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Quiet period before re-running discovery (default from watch.debounce_ms)")
	return cmd
}

func printWatchSummary(out io.Writer, result *discovery.Result) {
	if result.Empty() {
		fmt.Fprintln(out, emptyResultMessage)
		return
	}
	fmt.Fprintf(out, "%d mappings, %d files, %d warnings\n", len(result.Mappings), result.FileCount(), len(result.Warnings))
}
