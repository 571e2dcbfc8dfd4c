package changelog

import (
	"log/slog"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
)

// Change kinds.
const (
	KindAdded    = "Added"
	KindRemoved  = "Removed"
	KindModified = "Modified"
)

// ChangeRecord describes one modified event between two EDL versions.
type ChangeRecord struct {
	EventNumber int
	RecordIn    string
	RecordOut   string
	OldClip     string
	NewClip     string
	OldSource   string
	NewSource   string
	Kind        string
}

// Changelog is the partition produced by comparing two event collections.
// Original and Revised are retained for the summary report.
type Changelog struct {
	Added    []edl.Event
	Removed  []edl.Event
	Modified []ChangeRecord
	Original []edl.Event
	Revised  []edl.Event
}

// Compare classifies the differences between an original and a revised event
// collection.
//
// The identity key is the concatenation of Record In, Record Out, and Clip
// Name — deliberately excluding Source File, so a re-linked clip with
// identical timing classifies as Modified rather than Added plus Removed.
// For keys on both sides, the first occurrence per side represents the key
// (duplicate keys resolve arbitrarily by encounter order) and a Modified
// record is emitted only when the Source File differs; an identical source
// under an identical key is unchanged and omitted.
func Compare(original, revised []edl.Event, logger *slog.Logger) Changelog {
	if logger == nil {
		logger = logging.NewNop()
	}
	originalByKey := firstByKey(original)
	revisedByKey := firstByKey(revised)

	result := Changelog{Original: original, Revised: revised}

	for _, event := range revised {
		if _, ok := originalByKey[compareKey(event)]; !ok {
			result.Added = append(result.Added, event)
		}
	}
	for _, event := range original {
		if _, ok := revisedByKey[compareKey(event)]; !ok {
			result.Removed = append(result.Removed, event)
		}
	}

	seen := map[string]struct{}{}
	for _, event := range original {
		key := compareKey(event)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		oldRow, inOriginal := originalByKey[key]
		newRow, inRevised := revisedByKey[key]
		if !inOriginal || !inRevised {
			continue
		}
		if oldRow.SourceFile == newRow.SourceFile {
			continue
		}
		result.Modified = append(result.Modified, ChangeRecord{
			EventNumber: newRow.Number,
			RecordIn:    newRow.RecordIn,
			RecordOut:   newRow.RecordOut,
			OldClip:     oldRow.ClipName,
			NewClip:     newRow.ClipName,
			OldSource:   oldRow.SourceFile,
			NewSource:   newRow.SourceFile,
			Kind:        KindModified,
		})
	}

	logger.Info("compared EDL versions",
		logging.Int("original", len(original)),
		logging.Int("revised", len(revised)),
		logging.Int("added", len(result.Added)),
		logging.Int("removed", len(result.Removed)),
		logging.Int("modified", len(result.Modified)))
	return result
}

// compareKey joins the identity fields. The separator keeps distinct field
// boundaries out of each other's way in the concatenation.
func compareKey(e edl.Event) string {
	return e.RecordIn + "_" + e.RecordOut + "_" + e.ClipName
}

func firstByKey(events []edl.Event) map[string]edl.Event {
	byKey := make(map[string]edl.Event, len(events))
	for _, event := range events {
		key := compareKey(event)
		if _, ok := byKey[key]; !ok {
			byKey[key] = event
		}
	}
	return byKey
}
