package changelog_test

import (
	"testing"

	"cutlog/internal/changelog"
	"cutlog/internal/edl"
	"cutlog/internal/testsupport"
)

func TestCompareSourceChangeIsModified(t *testing.T) {
	original := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov"),
	}
	revised := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "B.mov"),
	}
	result := changelog.Compare(original, revised, nil)
	if len(result.Added) != 0 || len(result.Removed) != 0 {
		t.Fatalf("source change must not split into added+removed: %+v", result)
	}
	if len(result.Modified) != 1 {
		t.Fatalf("expected one modified record, got %+v", result.Modified)
	}
	record := result.Modified[0]
	if record.OldSource != "A.mov" || record.NewSource != "B.mov" || record.Kind != changelog.KindModified {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestCompareAddedAndRemoved(t *testing.T) {
	original := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov"),
		testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "K2", "A.mov"),
	}
	revised := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov"),
		testsupport.SourcedEvent(2, "00:00:02:00", "00:00:03:00", "K3", "C.mov"),
	}
	result := changelog.Compare(original, revised, nil)
	if len(result.Removed) != 1 || result.Removed[0].ClipName != "K2" {
		t.Fatalf("expected K2 removed, got %+v", result.Removed)
	}
	if len(result.Added) != 1 || result.Added[0].ClipName != "K3" {
		t.Fatalf("expected K3 added, got %+v", result.Added)
	}
	if len(result.Modified) != 0 {
		t.Fatalf("identical K1 must be omitted, got %+v", result.Modified)
	}
}

func TestCompareIdenticalCollections(t *testing.T) {
	events := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov"),
		testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "K2", "B.mov"),
	}
	result := changelog.Compare(events, events, nil)
	if len(result.Added)+len(result.Removed)+len(result.Modified) != 0 {
		t.Fatalf("identical inputs must produce an empty changelog: %+v", result)
	}
	if len(result.Original) != 2 || len(result.Revised) != 2 {
		t.Fatal("original and revised collections must be retained")
	}
}

// Duplicate keys are unspecified upstream: each side is represented by its
// first occurrence, so only one record can come out of a duplicated key.
func TestCompareDuplicateKeysUseFirstOccurrence(t *testing.T) {
	original := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov"),
		testsupport.SourcedEvent(2, "00:00:00:00", "00:00:01:00", "K1", "Z.mov"),
	}
	revised := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "B.mov"),
	}
	result := changelog.Compare(original, revised, nil)
	if len(result.Modified) != 1 {
		t.Fatalf("expected exactly one modified record, got %+v", result.Modified)
	}
	if result.Modified[0].OldSource != "A.mov" {
		t.Fatalf("first occurrence must represent the key, got %+v", result.Modified[0])
	}
}

func TestCompareOrderChangesAreInvisible(t *testing.T) {
	a := testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "K1", "A.mov")
	b := testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "K2", "B.mov")
	result := changelog.Compare([]edl.Event{a, b}, []edl.Event{b, a}, nil)
	if len(result.Added)+len(result.Removed)+len(result.Modified) != 0 {
		t.Fatalf("positional changes must be invisible: %+v", result)
	}
}
