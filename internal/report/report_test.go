package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutlog/internal/changelog"
	"cutlog/internal/edl"
	"cutlog/internal/report"
	"cutlog/internal/stats"
	"cutlog/internal/testsupport"
)

func TestEventsTableAndCSV(t *testing.T) {
	events := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "clip_a", "a.mov"),
		testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "clip_b", "b.mov"),
	}
	events[1].Duplicate = true

	rendered := report.Events(events, 24, report.FormatTable)
	for _, want := range []string{"clip_a", "a.mov", "Record In", "00:00:01:00", "2 *"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}

	csv := report.Events(events, 24, report.FormatCSV)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 CSV rows, got %d:\n%s", len(lines), csv)
	}
	if !strings.Contains(lines[1], "00:00:01:00") {
		t.Errorf("first data row missing duration: %s", lines[1])
	}
}

func TestChangesAndSummary(t *testing.T) {
	original := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "keep", "old.mov"),
		testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "drop", "drop.mov"),
	}
	revised := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "keep", "new.mov"),
		testsupport.SourcedEvent(2, "00:00:02:00", "00:00:03:00", "fresh", "fresh.mov"),
	}
	cl := changelog.Compare(original, revised, nil)

	rendered := report.Changes(cl, report.FormatTable)
	for _, want := range []string{changelog.KindAdded, changelog.KindRemoved, changelog.KindModified, "old.mov -> new.mov"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("changes table missing %q:\n%s", want, rendered)
		}
	}

	summary := report.Summary(cl)
	for _, want := range []string{"Original events", "Added", "Modified"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestStatsIncludesDistributions(t *testing.T) {
	events := []edl.Event{
		testsupport.SourcedEvent(1, "00:00:00:00", "00:00:01:00", "clip_a", "a.mov"),
		testsupport.SourcedEvent(2, "00:00:01:00", "00:00:02:00", "clip_b", "b.mov"),
	}
	events[0].Categories = []string{"A-Camera"}
	s := stats.Collect(events, 24, nil)

	rendered := report.Stats(s, report.FormatTable)
	for _, want := range []string{"Total events", "Category: A-Camera", "Transition: Cut", "Timeline duration"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("stats table missing %q:\n%s", want, rendered)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"A-Camera":      "A-Camera",
		"VFX / Cleanup": "VFX_Cleanup",
		"Music & FX":    "Music_FX",
		"scene_12":      "scene_12",
	}
	for in, want := range cases {
		if got := report.SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitByCategory(t *testing.T) {
	dir := t.TempDir()
	events := []edl.Event{
		testsupport.Event(1, "00:00:00:00", "00:00:01:00", "a"),
		testsupport.Event(2, "00:00:01:00", "00:00:02:00", "b"),
		testsupport.Event(3, "00:00:02:00", "00:00:03:00", "c"),
	}
	events[0].Categories = []string{"A-Camera", "VFX / Cleanup"}
	events[1].Categories = []string{"A-Camera"}

	paths, err := report.SplitByCategory(events, 24, dir, nil)
	if err != nil {
		t.Fatalf("SplitByCategory: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %v", paths)
	}

	camera, err := os.ReadFile(filepath.Join(dir, "events_A-Camera.csv"))
	if err != nil {
		t.Fatalf("read A-Camera export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(camera)), "\n")
	if len(lines) != 3 {
		t.Fatalf("A-Camera export should have header plus 2 rows:\n%s", camera)
	}

	if _, err := os.Stat(filepath.Join(dir, "events_VFX_Cleanup.csv")); err != nil {
		t.Errorf("sanitized category file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "events_Uncategorized.csv")); err != nil {
		t.Errorf("uncategorized file missing: %v", err)
	}
}
