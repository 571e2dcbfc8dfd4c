package edl_test

import (
	"testing"

	"cutlog/internal/edl"
)

func TestFieldLookup(t *testing.T) {
	event := edl.Event{
		Number:        7,
		RecordIn:      "00:00:01:00",
		RecordOut:     "00:00:02:00",
		ClipName:      "clip",
		SourceFile:    "clip.mov",
		Reel:          "TAPE01",
		Transition:    "Cut",
		Video:         true,
		AudioChannels: []int{1, 2},
		Categories:    []string{"B", "A"},
		Subtitles:     "hello",
	}
	tests := map[string]string{
		edl.FieldEventNumber:   "7",
		edl.FieldRecordIn:      "00:00:01:00",
		edl.FieldClipName:      "clip",
		edl.FieldSourceFile:    "clip.mov",
		edl.FieldReel:          "TAPE01",
		edl.FieldVideo:         "V",
		edl.FieldAudioChannels: "A1, A2",
		edl.FieldCategory:      "B; A",
		edl.FieldSubtitles:     "hello",
		"No Such Field":        "",
	}
	for name, want := range tests {
		if got := event.Field(name); got != want {
			t.Errorf("Field(%q) = %q, want %q", name, got, want)
		}
	}
	if event.HasField("No Such Field") {
		t.Fatal("HasField should reject unknown names")
	}
	if !event.HasField(edl.FieldClipName) || !event.HasField(edl.FieldEventNumber) {
		t.Fatal("HasField should accept canonical names")
	}
}

func TestMarkerLabels(t *testing.T) {
	event := edl.Event{Markers: []edl.Marker{
		{Timecode: "00:02:23:18", Color: "RED", Name: "MARKER 4"},
		{Timecode: "00:03:00:00", Color: "BLUE", Name: "review"},
	}}
	tcs, colors, names := event.MarkerLabels()
	if tcs != "00:02:23:18 | 00:03:00:00" || colors != "RED | BLUE" || names != "MARKER 4 | review" {
		t.Fatalf("unexpected labels: %q %q %q", tcs, colors, names)
	}
	none := edl.Event{}
	if tcs, _, _ := none.MarkerLabels(); tcs != "" {
		t.Fatalf("expected empty labels, got %q", tcs)
	}
}
