package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutlog/internal/edl"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "validate <edl-file>",
		Short: "Check that events are sequential on the record timeline",
		Long: `Check an EDL for record-timeline overlaps: each event's Record In must
not precede the previous event's Record Out. The check is advisory and
reports findings without failing; overlaps are legitimate in some workflows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			fps, err := ctx.fps()
			if err != nil {
				return err
			}

			list, err := edl.ParseFile(args[0], logger)
			if err != nil {
				return err
			}
			ok, issues := edl.ValidateOrder(list.Events, fps, logger)

			if jsonFlag {
				return writeJSON(cmd, validatePayload{
					File:   args[0],
					Events: len(list.Events),
					Valid:  ok,
					Issues: issues,
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Timecode Validation", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Events", statusInfo, fmt.Sprintf("%d", len(list.Events)), colorize))
			if ok {
				fmt.Fprintln(out, renderStatusLine("Sequence", statusOK, "all events sequential", colorize))
				return nil
			}
			fmt.Fprintln(out, renderStatusLine("Sequence", statusWarn, fmt.Sprintf("%d issue(s)", len(issues)), colorize))
			for _, issue := range issues {
				fmt.Fprintln(out, renderStatusLine("Issue", statusWarn, issue, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of status lines")

	return cmd
}

type validatePayload struct {
	File   string   `json:"file"`
	Events int      `json:"events"`
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}
