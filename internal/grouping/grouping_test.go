package grouping_test

import (
	"errors"
	"testing"

	"cutlog/internal/edl"
	"cutlog/internal/grouping"
	"cutlog/internal/pipeline"
	"cutlog/internal/testsupport"
)

func TestBuildBoundaryStraddleAppearsInBothWindows(t *testing.T) {
	// At 10 fps with a 5 second interval (50 frames):
	// event 1 spans frames [0,100), event 2 spans [90,200).
	events := []edl.Event{
		testsupport.Event(1, "00:00:00:00", "00:00:10:00", "X"),
		testsupport.Event(2, "00:00:09:00", "00:00:20:00", "Y"),
	}
	groups, err := grouping.Build(events, 5, 10, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d: %+v", len(groups), groups)
	}
	// Window 1 = [0,50): event 1 only (event 2 starts at frame 90).
	if groups[0].EventCount != 1 || groups[0].FirstEvent != 1 {
		t.Fatalf("group 1 = %+v, want only event 1", groups[0])
	}
	// Window 2 = [51,101): event 1 straddles the boundary and repeats here.
	if groups[1].EventCount != 2 {
		t.Fatalf("group 2 = %+v, want both events", groups[1])
	}
	// Windows 3 and 4 hold only event 2.
	for _, g := range groups[2:] {
		if g.EventCount != 1 || g.FirstEvent != 2 {
			t.Fatalf("tail group = %+v, want only event 2", g)
		}
	}
}

func TestBuildWindowsAreContiguous(t *testing.T) {
	events := []edl.Event{
		testsupport.Event(1, "00:00:00:00", "00:00:10:00", "X"),
		testsupport.Event(2, "00:00:09:00", "00:00:20:00", "Y"),
	}
	groups, err := grouping.Build(events, 5, 10, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	wantBounds := [][2]string{
		{"00:00:00:00", "00:00:05:00"},
		{"00:00:05:01", "00:00:10:01"},
		{"00:00:10:02", "00:00:15:02"},
		{"00:00:15:03", "00:00:20:00"},
	}
	for i, bounds := range wantBounds {
		if groups[i].RecordIn != bounds[0] || groups[i].RecordOut != bounds[1] {
			t.Fatalf("group %d bounds = %s..%s, want %s..%s",
				i+1, groups[i].RecordIn, groups[i].RecordOut, bounds[0], bounds[1])
		}
	}
	if groups[0].Number != 1 || groups[3].Number != 4 {
		t.Fatalf("groups must be numbered sequentially from 1: %+v", groups)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	groups, err := grouping.Build(nil, 5, 10, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}

func TestBuildRejectsInvalidParameters(t *testing.T) {
	events := []edl.Event{testsupport.Event(1, "00:00:00:00", "00:00:01:00", "X")}
	if _, err := grouping.Build(events, 5, 0, nil); !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation error for zero fps, got %v", err)
	}
	if _, err := grouping.Build(events, 0, 30, nil); !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation error for zero interval, got %v", err)
	}
}

func TestBuildAggregation(t *testing.T) {
	a := testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "clip-a", "b.mov")
	a.Subtitles = "hello | world"
	b := testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "clip-b", "a.mov")
	b.Subtitles = "world | again"
	c := testsupport.SourcedEvent(3, "00:00:02:00", "00:00:03:00", "clip-a", edl.Unknown)
	groups, err := grouping.Build([]edl.Event{a, b, c}, 10, 30, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected a single group, got %+v", groups)
	}
	g := groups[0]
	if g.EventCount != 3 || g.FirstEvent != 1 || g.LastEvent != 3 {
		t.Fatalf("unexpected membership: %+v", g)
	}
	if g.UniqueClips != 2 {
		t.Fatalf("UniqueClips = %d, want 2", g.UniqueClips)
	}
	if len(g.SourceFiles) != 2 || g.SourceFiles[0] != "a.mov" || g.SourceFiles[1] != "b.mov" {
		t.Fatalf("SourceFiles = %v, want sorted [a.mov b.mov]", g.SourceFiles)
	}
	if g.Subtitles != "hello | world | again" {
		t.Fatalf("Subtitles = %q", g.Subtitles)
	}
	// Window is capped at the last Record Out: 3 seconds at 30 fps.
	if g.Duration != "00:00:03:00" {
		t.Fatalf("Duration = %q, want 00:00:03:00", g.Duration)
	}
}

func TestBuildSkipsUnreadableEvents(t *testing.T) {
	events := []edl.Event{
		testsupport.Event(1, "00:00:00:00", "00:00:02:00", "good"),
		testsupport.Event(2, "garbage", "00:00:02:00", "bad"),
		testsupport.Event(3, "00:00:02:00", "00:00:04:00", "good2"),
	}
	groups, err := grouping.Build(events, 10, 30, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(groups) != 1 || groups[0].EventCount != 2 {
		t.Fatalf("expected the unreadable event to be skipped, got %+v", groups)
	}
}
