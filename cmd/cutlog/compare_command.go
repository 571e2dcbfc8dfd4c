package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutlog/internal/changelog"
	"cutlog/internal/edl"
	"cutlog/internal/report"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "compare <original-edl> <revised-edl>",
		Short: "Compare two EDL versions and show the changelog",
		Long: `Compare two versions of an EDL and classify every event as added,
removed, or modified.

Events are matched on their record range and clip name, so a re-linked clip
with identical timing shows up as modified rather than as a remove plus an
add.

Examples:
  cutlog compare cut_v1.edl cut_v2.edl
  cutlog compare cut_v1.edl cut_v2.edl --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, _, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			original, err := edl.ParseFile(args[0], logger)
			if err != nil {
				return err
			}
			revised, err := edl.ParseFile(args[1], logger)
			if err != nil {
				return err
			}
			cl := changelog.Compare(original.Events, revised.Events, logger)

			if jsonFlag {
				return writeJSON(cmd, comparePayload{
					Original: len(cl.Original),
					Revised:  len(cl.Revised),
					Added:    cl.Added,
					Removed:  cl.Removed,
					Modified: cl.Modified,
				})
			}

			format := report.Format(formatFlag)
			if formatFlag == "" {
				format = report.Format(cfg.Report.Format)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Changes(cl, format))
			if format == report.FormatTable {
				fmt.Fprintln(out, report.Summary(cl))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: table or csv (default: configured report.format)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}

type comparePayload struct {
	Original int                      `json:"original_events"`
	Revised  int                      `json:"revised_events"`
	Added    []edl.Event              `json:"added"`
	Removed  []edl.Event              `json:"removed"`
	Modified []changelog.ChangeRecord `json:"modified"`
}
