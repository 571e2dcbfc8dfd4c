package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutlog/internal/category"
	"cutlog/internal/dedupe"
	"cutlog/internal/edl"
	"cutlog/internal/report"
	"cutlog/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var rulesPath string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats <edl-file> [edl-file...]",
		Short: "Summarize an EDL: counts, durations, and distributions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, _, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			fps, err := ctx.fps()
			if err != nil {
				return err
			}

			sequences := make([][]edl.Event, 0, len(args))
			for _, path := range args {
				list, err := edl.ParseFile(path, logger)
				if err != nil {
					return err
				}
				sequences = append(sequences, list.Events)
			}
			events := edl.Merge(logger, sequences...)

			effectiveRules := rulesPath
			if effectiveRules == "" {
				effectiveRules = cfg.Rules.Path
			}
			if effectiveRules != "" {
				rules, err := category.LoadRules(effectiveRules)
				if err != nil {
					return err
				}
				category.Apply(events, rules.Categories, logger)
			}
			dedupe.Detect(events, logger)

			summary := stats.Collect(events, fps, logger)
			if jsonFlag {
				return writeJSON(cmd, summary)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Stats(summary, report.FormatTable))
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Category rules file (default: configured rules.path)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}
