package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"cutlog/internal/category"
	"cutlog/internal/edl"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect category rules files",
	}
	cmd.AddCommand(newRulesLintCommand(ctx))
	return cmd
}

func newRulesLintCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <rules-file>",
		Short: "Check a category rules file for problems",
		Long: `Load a YAML category rules file and report problems: missing names,
unknown pattern types, unknown field names, and patterns that will never
compile. A file that loads with warnings still works; broken patterns are
skipped at match time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			rules, err := category.LoadRules(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("Rules Lint", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Rules", statusInfo, fmt.Sprintf("%d", len(rules.Categories)), colorize))

			warnings := 0
			for _, rule := range rules.Categories {
				label := fmt.Sprintf("Rule %q", rule.Name)
				if len(rule.Patterns) == 0 {
					fmt.Fprintln(out, renderStatusLine(label, statusWarn, "no patterns; rule never matches", colorize))
					warnings++
					continue
				}
				ok := true
				for _, pattern := range rule.Patterns {
					if issue := lintPattern(pattern); issue != "" {
						fmt.Fprintln(out, renderStatusLine(label, statusWarn, issue, colorize))
						warnings++
						ok = false
					}
				}
				if ok {
					fmt.Fprintln(out, renderStatusLine(label, statusOK, fmt.Sprintf("priority %d, %d pattern(s)", rule.Priority, len(rule.Patterns)), colorize))
				}
			}

			if warnings == 0 {
				fmt.Fprintln(out, renderStatusLine("Result", statusOK, "no problems found", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Result", statusWarn, fmt.Sprintf("%d warning(s)", warnings), colorize))
			}
			return nil
		},
	}
	return cmd
}

func lintPattern(pattern category.Pattern) string {
	if pattern.Field == "" || pattern.Kind == "" || pattern.Pattern == "" {
		return "incomplete pattern (field, type, and pattern are all required)"
	}
	if !(edl.Event{}).HasField(pattern.Field) {
		return fmt.Sprintf("unknown field %q", pattern.Field)
	}
	switch pattern.Kind {
	case "glob":
		// every glob is valid; nothing to compile
	case "regex":
		if _, err := regexp.Compile("(?i)" + pattern.Pattern); err != nil {
			return fmt.Sprintf("invalid regex %q: %v", pattern.Pattern, err)
		}
	default:
		return fmt.Sprintf("unknown pattern type %q (want glob or regex)", pattern.Kind)
	}
	return ""
}
