package query

import (
	"log/slog"
	"sort"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/timecode"
)

// Sort keys accepted by Sort.
const (
	SortTimecode   = "timecode"
	SortClipName   = "clip_name"
	SortSourceFile = "source_file"
	SortCategory   = "category"
	SortDuration   = "duration"
)

// Sort returns the events ordered by the given key. Timecode is a no-op (the
// input is already record-ordered). String keys sort ascending with missing
// values last; duration sorts descending by record-range length at the given
// frame rate, events with unreadable timecodes weighing as zero. All sorts
// are stable. An unknown key warns and returns the input unchanged.
func Sort(events []edl.Event, key string, fps float64, logger *slog.Logger) []edl.Event {
	if logger == nil {
		logger = logging.NewNop()
	}
	switch key {
	case SortTimecode, "":
		logger.Info("events are already in timecode order")
		return events
	case SortClipName:
		return sortByString(events, edl.FieldClipName)
	case SortSourceFile:
		return sortByString(events, edl.FieldSourceFile)
	case SortCategory:
		return sortByString(events, edl.FieldCategory)
	case SortDuration:
		return sortByDuration(events, fps)
	default:
		logger.Warn("unknown sort key", logging.String("key", key))
		return events
	}
}

func sortByString(events []edl.Event, field string) []edl.Event {
	sorted := edl.Clone(events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Field(field), sorted[j].Field(field)
		aMissing := a == "" || a == edl.Unknown
		bMissing := b == "" || b == edl.Unknown
		if aMissing != bMissing {
			return bMissing
		}
		return a < b
	})
	return sorted
}

func sortByDuration(events []edl.Event, fps float64) []edl.Event {
	durations := make([]int, len(events))
	for i, event := range events {
		frames, err := timecode.DurationFrames(fps, event.RecordIn, event.RecordOut)
		if err != nil {
			frames = 0
		}
		durations[i] = frames
	}
	indices := make([]int, len(events))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return durations[indices[i]] > durations[indices[j]]
	})
	sorted := make([]edl.Event, len(events))
	for i, idx := range indices {
		sorted[i] = events[idx]
	}
	return sorted
}
