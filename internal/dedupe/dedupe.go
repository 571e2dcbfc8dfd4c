package dedupe

import (
	"log/slog"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
)

// identity is the duplicate key: exact string equality of the record range
// and clip name. Source file is deliberately excluded so re-linked clips
// still count as repeats.
type identity struct {
	recordIn  string
	recordOut string
	clipName  string
}

func keyOf(e edl.Event) identity {
	return identity{recordIn: e.RecordIn, recordOut: e.RecordOut, clipName: e.ClipName}
}

// Detect flags every repeat occurrence in input order; the first occurrence
// of a key stays unflagged. Events are mutated in place. Returns the number
// of duplicates found. Running Detect twice yields the same flags.
func Detect(events []edl.Event, logger *slog.Logger) int {
	if logger == nil {
		logger = logging.NewNop()
	}
	seen := make(map[identity]struct{}, len(events))
	duplicates := 0
	for i := range events {
		key := keyOf(events[i])
		if _, ok := seen[key]; ok {
			events[i].Duplicate = true
			duplicates++
			logger.Warn("duplicate event",
				logging.Int("event", events[i].Number),
				logging.String("clip", events[i].ClipName),
				logging.String("record_in", events[i].RecordIn))
			continue
		}
		seen[key] = struct{}{}
		events[i].Duplicate = false
	}
	if duplicates == 0 {
		logger.Info("no duplicate events found")
	} else {
		logger.Warn("found duplicate events", logging.Int("duplicates", duplicates))
	}
	return duplicates
}

// Remove returns a new slice holding only the first occurrence of each key,
// in original relative order, renumbered densely from 1 with duplicate flags
// cleared.
func Remove(events []edl.Event, logger *slog.Logger) []edl.Event {
	if logger == nil {
		logger = logging.NewNop()
	}
	seen := make(map[identity]struct{}, len(events))
	kept := make([]edl.Event, 0, len(events))
	for _, event := range events {
		key := keyOf(event)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		event.Duplicate = false
		kept = append(kept, event)
	}
	edl.Renumber(kept)
	if removed := len(events) - len(kept); removed > 0 {
		logger.Info("removed duplicate events",
			logging.Int("removed", removed),
			logging.Int("kept", len(kept)))
	} else {
		logger.Info("no duplicates to remove")
	}
	return kept
}
