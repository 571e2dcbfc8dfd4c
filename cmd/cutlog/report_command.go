package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cutlog/internal/category"
	"cutlog/internal/dedupe"
	"cutlog/internal/edl"
	"cutlog/internal/grouping"
	"cutlog/internal/query"
	"cutlog/internal/report"
	"cutlog/internal/subtitle"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var (
		rulesPath        string
		filterExpr       string
		searchTerm       string
		searchField      string
		searchRegex      bool
		sortKey          string
		groupInterval    float64
		subtitlePath     string
		alignStart       string
		removeDuplicates bool
		splitDir         string
		formatFlag       string
		jsonFlag         bool
	)

	cmd := &cobra.Command{
		Use:   "report <edl-file> [edl-file...]",
		Short: "Parse EDL files and render an event report",
		Long: `Parse one or more CMX3600 EDL files, run them through the analysis
pipeline, and render the result.

Multiple input files are merged into a single record-ordered timeline. The
pipeline applies category rules, flags duplicate events, and optionally
filters, searches, sorts, and groups the events before rendering.

Examples:
  cutlog report cut_v1.edl
  cutlog report reel1.edl reel2.edl --sort clip_name
  cutlog report cut_v1.edl --filter 'clip_name == "INTRO" or duration > 5'
  cutlog report cut_v1.edl --search "scene_12*" --group 60
  cutlog report cut_v1.edl --subtitles dialog.srt --split exports/`,
		Args: cobra.MinimumNArgs(1),
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
			title := ""
			for _, path := range args {
				list, err := edl.ParseFile(path, logger)
				if err != nil {
					return err
				}
				if title == "" {
					title = list.Title
				}
				sequences = append(sequences, list.Events)
			}
			events := edl.Merge(logger, sequences...)

			if subtitlePath != "" {
				cues, err := subtitle.ParseSRTFile(subtitlePath, logger)
				if err != nil {
					return err
				}
				if err := subtitle.Align(events, cues, fps, alignStart, logger); err != nil {
					return err
				}
			}

			effectiveRules := rulesPath
			if effectiveRules == "" {
				effectiveRules = cfg.Rules.Path
			}
			var distribution map[string]int
			if effectiveRules != "" {
				rules, err := category.LoadRules(effectiveRules)
				if err != nil {
					return err
				}
				distribution = category.Apply(events, rules.Categories, logger)
			}

			duplicates := dedupe.Detect(events, logger)
			if removeDuplicates {
				events = dedupe.Remove(events, logger)
			}

			if filterExpr != "" {
				events, err = query.Filter(events, filterExpr, fps, logger)
				if err != nil {
					return err
				}
			}
			if searchTerm != "" {
				events, err = query.Search(events, searchTerm, searchField, searchRegex, logger)
				if err != nil {
					return err
				}
			}
			events = query.Sort(events, sortKey, fps, logger)

			var groups []grouping.Group
			if groupInterval > 0 {
				groups, err = grouping.Build(events, groupInterval, fps, logger)
				if err != nil {
					return err
				}
			}

			if splitDir != "" {
				paths, err := report.SplitByCategory(events, fps, splitDir, logger)
				if err != nil {
					return err
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				}
				return nil
			}

			if jsonFlag {
				return writeJSON(cmd, reportPayload{
					Title:      title,
					Events:     events,
					Duplicates: duplicates,
					Categories: distribution,
					Groups:     groups,
				})
			}

			format := report.Format(formatFlag)
			if formatFlag == "" {
				format = report.Format(cfg.Report.Format)
			}
			out := cmd.OutOrStdout()
			if title != "" && format == report.FormatTable {
				fmt.Fprintf(out, "%s\n", title)
			}
			if groupInterval > 0 {
				fmt.Fprintln(out, report.Groups(groups, format))
				return nil
			}
			fmt.Fprintln(out, report.Events(events, fps, format))
			if duplicates > 0 && format == report.FormatTable {
				fmt.Fprintf(out, "%d duplicate event(s) flagged (*)\n", duplicates)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Category rules file (default: configured rules.path)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "Filter expression, e.g. 'clip_name == \"INTRO\" and duration > 5'")
	cmd.Flags().StringVar(&searchTerm, "search", "", "Search pattern (glob by default)")
	cmd.Flags().StringVar(&searchField, "search-field", "", "Restrict search to one column (default: clip name, source file, reel)")
	cmd.Flags().BoolVar(&searchRegex, "regex", false, "Treat the search pattern as a regular expression")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key: timecode, clip_name, source_file, category, duration")
	cmd.Flags().Float64Var(&groupInterval, "group", 0, "Group events into windows of this many seconds")
	cmd.Flags().StringVar(&subtitlePath, "subtitles", "", "SRT subtitle file to align with events")
	cmd.Flags().StringVar(&alignStart, "align-start", "", "Timecode where the first subtitle starts (default: first event)")
	cmd.Flags().BoolVar(&removeDuplicates, "remove-duplicates", false, "Drop duplicate events, keeping the first occurrence")
	cmd.Flags().StringVar(&splitDir, "split", "", "Write one CSV per category into this directory")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: table or csv (default: configured report.format)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}

type reportPayload struct {
	Title      string           `json:"title,omitempty"`
	Events     []edl.Event      `json:"events"`
	Duplicates int              `json:"duplicates"`
	Categories map[string]int   `json:"categories,omitempty"`
	Groups     []grouping.Group `json:"groups,omitempty"`
}
