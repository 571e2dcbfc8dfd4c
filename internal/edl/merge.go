package edl

import (
	"log/slog"
	"sort"

	"cutlog/internal/logging"
)

// Merge concatenates event sequences, re-sorts by Record In, and renumbers
// densely from 1. With a single well-formed HH:MM:SS:FF rendering, the string
// order is the chronological order, so no frame rate is needed here.
func Merge(logger *slog.Logger, sequences ...[]Event) []Event {
	if logger == nil {
		logger = logging.NewNop()
	}
	var merged []Event
	for _, seq := range sequences {
		merged = append(merged, seq...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RecordIn < merged[j].RecordIn
	})
	Renumber(merged)
	if len(sequences) > 1 {
		logger.Info("merged EDL sequences",
			logging.Int("sequences", len(sequences)),
			logging.Int("events", len(merged)))
	}
	return merged
}

// Renumber rewrites the Event # field to a dense 1..N sequence in slice
// order. Called after any structural change: merge, duplicate removal.
func Renumber(events []Event) {
	for i := range events {
		events[i].Number = i + 1
	}
}

// Clone returns a copy of the slice so component mutations never alias a
// caller's collection.
func Clone(events []Event) []Event {
	if events == nil {
		return nil
	}
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
