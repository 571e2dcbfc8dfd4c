package query_test

import (
	"errors"
	"testing"

	"cutlog/internal/edl"
	"cutlog/internal/pipeline"
	"cutlog/internal/query"
	"cutlog/internal/testsupport"
)

func filterFixture() []edl.Event {
	a := testsupport.SourcedEvent(1, "00:00:00:00", "00:00:10:00", "A-CAM_001", "a.mov")
	a.Categories = []string{"A-Camera"}
	b := testsupport.SourcedEvent(2, "00:00:10:00", "00:00:12:00", "B-CAM_001", "b.mov")
	b.Categories = []string{"B-Camera"}
	c := testsupport.SourcedEvent(3, "00:00:12:00", "00:00:30:00", "drone", "c.mov")
	c.Categories = []string{"Aerial"}
	return []edl.Event{a, b, c}
}

func TestFilterByCategory(t *testing.T) {
	got, err := query.Filter(filterFixture(), "category == 'A-Camera'", 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 1 || got[0].Number != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterByDurationSeconds(t *testing.T) {
	got, err := query.Filter(filterFixture(), "duration > 5", 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 || got[0].Number != 1 || got[1].Number != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterConnectivesAndParens(t *testing.T) {
	expr := "(category == 'A-Camera' or category == 'Aerial') and duration >= 10"
	got, err := query.Filter(filterFixture(), expr, 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %+v", got)
	}
}

func TestFilterNot(t *testing.T) {
	got, err := query.Filter(filterFixture(), "not clip_name == 'drone'", 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %+v", got)
	}
}

func TestFilterQuotedColumnName(t *testing.T) {
	got, err := query.Filter(filterFixture(), `"Clip Name" != 'drone'`, 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %+v", got)
	}
}

func TestFilterEventNumber(t *testing.T) {
	got, err := query.Filter(filterFixture(), "event >= 2", 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 2 || got[0].Number != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterInvalidExpressions(t *testing.T) {
	for _, expr := range []string{
		"",
		"category ==",
		"category = 'x'",
		"nosuchfield == 'x'",
		"duration > 'five' and",
		"(category == 'x'",
		"category == 'unterminated",
	} {
		if _, err := query.Filter(filterFixture(), expr, 30, nil); !errors.Is(err, pipeline.ErrFilter) {
			t.Errorf("Filter(%q) error = %v, want filter error", expr, err)
		}
	}
}

func TestFilterUnreadableDurationExcluded(t *testing.T) {
	events := filterFixture()
	events[0].RecordOut = "garbage"
	got, err := query.Filter(events, "duration > 0", 30, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	for _, event := range got {
		if event.Number == 1 {
			t.Fatal("event with unreadable timecode must not satisfy a duration comparison")
		}
	}
}
