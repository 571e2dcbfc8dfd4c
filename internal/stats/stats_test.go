package stats_test

import (
	"testing"

	"cutlog/internal/edl"
	"cutlog/internal/stats"
	"cutlog/internal/testsupport"
)

func TestCollect(t *testing.T) {
	a := testsupport.SourcedEvent(1, "00:00:00:00", "00:00:02:00", "clip-a", "a.mov")
	a.Categories = []string{"A-Camera"}
	a.SourceFPS = "48"
	b := testsupport.SourcedEvent(2, "00:00:02:00", "00:00:03:00", "clip-b", "a.mov")
	b.Categories = []string{"A-Camera", "Slow Motion"}
	b.Video = false
	b.AudioChannels = []int{1, 2}
	b.Transition = "Dissolve"
	c := testsupport.SourcedEvent(3, "00:00:03:00", "00:00:07:00", "clip-a", "b.mov")
	c.Duplicate = true
	c.Reel = "TAPE01"

	s := stats.Collect([]edl.Event{a, b, c}, 30, nil)

	if s.TotalEvents != 3 {
		t.Fatalf("TotalEvents = %d", s.TotalEvents)
	}
	if s.UniqueSourceFiles != 2 || s.UniqueClipNames != 2 || s.UniqueReels != 1 {
		t.Fatalf("unique counts = %d/%d/%d", s.UniqueSourceFiles, s.UniqueClipNames, s.UniqueReels)
	}
	if s.VideoEvents != 2 || s.AudioOnlyEvents != 1 {
		t.Fatalf("video/audio = %d/%d", s.VideoEvents, s.AudioOnlyEvents)
	}
	if s.DuplicateEvents != 1 {
		t.Fatalf("DuplicateEvents = %d", s.DuplicateEvents)
	}
	if s.CategoryCounts["A-Camera"] != 2 || s.CategoryCounts["Slow Motion"] != 1 {
		t.Fatalf("CategoryCounts = %v", s.CategoryCounts)
	}
	if s.TransitionCounts["Cut"] != 2 || s.TransitionCounts["Dissolve"] != 1 {
		t.Fatalf("TransitionCounts = %v", s.TransitionCounts)
	}
	if s.FPSCounts["48"] != 1 {
		t.Fatalf("FPSCounts = %v", s.FPSCounts)
	}
	// Timeline: 00:00:00:00 to 00:00:07:00 at 30 fps.
	if s.TimelineDuration != "00:00:07:00" {
		t.Fatalf("TimelineDuration = %q", s.TimelineDuration)
	}
	// Shots are 60, 30, and 120 frames.
	if s.TotalShotFrames != 210 {
		t.Fatalf("TotalShotFrames = %d", s.TotalShotFrames)
	}
	if s.ShortestShot != "00:00:01:00" || s.LongestShot != "00:00:04:00" || s.AverageShot != "00:00:02:10" {
		t.Fatalf("shot metrics = %q/%q/%q", s.ShortestShot, s.LongestShot, s.AverageShot)
	}
}

func TestCollectEmpty(t *testing.T) {
	s := stats.Collect(nil, 30, nil)
	if s.TotalEvents != 0 || s.TimelineDuration != "" {
		t.Fatalf("unexpected stats for empty input: %+v", s)
	}
}

func TestCollectSkipsUnreadableDurations(t *testing.T) {
	events := []edl.Event{
		testsupport.Event(1, "00:00:00:00", "00:00:01:00", "ok"),
		testsupport.Event(2, "bad", "00:00:02:00", "broken"),
	}
	s := stats.Collect(events, 30, nil)
	if s.TotalShotFrames != 30 {
		t.Fatalf("TotalShotFrames = %d, want 30", s.TotalShotFrames)
	}
}
