package category

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
)

// Uncategorized is assigned when no rule matches an event.
const Uncategorized = "Uncategorized"

// Categorize evaluates every rule against the event and returns the names of
// all matching rules in priority order (lower priority value first, ties in
// declaration order). Within a rule the patterns are OR'd and evaluation
// stops at the first hit; across rules there is no short-circuit, so one
// event can accumulate several categories.
func Categorize(event edl.Event, rules []Rule, logger *slog.Logger) []string {
	if logger == nil {
		logger = logging.NewNop()
	}
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	var matched []string
	for _, rule := range ordered {
		for _, pattern := range rule.Patterns {
			if pattern.Field == "" || pattern.Kind == "" || pattern.Pattern == "" {
				logger.Warn("skipping incomplete pattern",
					logging.String("rule", rule.Name),
					logging.String("field", pattern.Field))
				continue
			}
			if MatchPattern(event.Field(pattern.Field), pattern.Kind, pattern.Pattern, logger) {
				matched = append(matched, rule.Name)
				break
			}
		}
	}
	if len(matched) == 0 {
		return []string{Uncategorized}
	}
	return matched
}

// Apply assigns categories to every event in place and returns the per-name
// distribution for logging and statistics.
func Apply(events []edl.Event, rules []Rule, logger *slog.Logger) map[string]int {
	if logger == nil {
		logger = logging.NewNop()
	}
	distribution := map[string]int{}
	for i := range events {
		categories := Categorize(events[i], rules, logger)
		events[i].Categories = categories
		for _, name := range categories {
			distribution[name]++
		}
	}
	logger.Info("categorized events",
		logging.Int("events", len(events)),
		logging.Int("categories", len(distribution)))
	return distribution
}

// Label renders an assigned category list the way reports print it.
func Label(categories []string) string {
	if len(categories) == 0 {
		return Uncategorized
	}
	return strings.Join(categories, "; ")
}

// MatchPattern tests a field value against one pattern. Glob matching is
// case-sensitive fnmatch semantics where `/` is an ordinary character; regex
// matching is a case-insensitive substring search. A broken pattern is
// reported and treated as a non-match.
func MatchPattern(value, kind, pattern string, logger *slog.Logger) bool {
	if logger == nil {
		logger = logging.NewNop()
	}
	if value == edl.Unknown {
		value = ""
	}
	switch kind {
	case "glob":
		return GlobMatch(pattern, value)
	case "regex":
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			logger.Warn("invalid regex pattern", logging.String("pattern", pattern), logging.Error(err))
			return false
		}
		return re.MatchString(value)
	default:
		logger.Warn("unknown pattern type", logging.String("type", kind))
		return false
	}
}
