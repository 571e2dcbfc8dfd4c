package query

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"cutlog/internal/category"
	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
)

// defaultSearchFields is the text field set searched when no field is named.
var defaultSearchFields = []string{edl.FieldClipName, edl.FieldSourceFile, edl.FieldReel}

// Search returns the events whose searched fields match the term, preserving
// original relative order. With a valid field name only that field is
// searched; otherwise the default set {Clip Name, Source File, Reel} is.
// Glob matching is case-insensitive; regex matching is a case-insensitive
// substring search. An invalid regex rejects the request up front.
func Search(events []edl.Event, term, field string, useRegex bool, logger *slog.Logger) ([]edl.Event, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	fields := defaultSearchFields
	if field != "" {
		if (edl.Event{}).HasField(field) {
			fields = []string{field}
		} else {
			logger.Warn("unknown search field, using default text fields", logging.String("field", field))
		}
	}

	var re *regexp.Regexp
	if useRegex {
		compiled, err := regexp.Compile("(?i)" + term)
		if err != nil {
			return nil, pipeline.Wrap(pipeline.ErrFormat, "query", "search", fmt.Sprintf("invalid regex %q", term), err)
		}
		re = compiled
	}

	matched := make([]edl.Event, 0, len(events))
	for _, event := range events {
		if eventMatches(event, fields, term, re) {
			matched = append(matched, event)
		}
	}
	logger.Info("search complete",
		logging.String("term", term),
		logging.Int("matched", len(matched)),
		logging.Int("total", len(events)))
	return matched, nil
}

// eventMatches searches field values as rendered, so the "N/A" placeholder
// is itself searchable.
func eventMatches(event edl.Event, fields []string, term string, re *regexp.Regexp) bool {
	for _, field := range fields {
		value := event.Field(field)
		if re != nil {
			if re.MatchString(value) {
				return true
			}
			continue
		}
		if category.GlobMatch(strings.ToLower(term), strings.ToLower(value)) {
			return true
		}
	}
	return false
}
