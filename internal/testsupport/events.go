package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"cutlog/internal/edl"
)

// Event builds a minimal event fixture with the fields every component keys
// on. Remaining fields carry the parser's "N/A" sentinel.
func Event(number int, recordIn, recordOut, clip string) edl.Event {
	return edl.Event{
		Number:     number,
		RecordIn:   recordIn,
		RecordOut:  recordOut,
		ClipName:   clip,
		SourceFile: edl.Unknown,
		Reel:       edl.Unknown,
		SourceFPS:  edl.Unknown,
		Transition: "Cut",
		Video:      true,
	}
}

// SourcedEvent builds an event fixture with an explicit source file.
func SourcedEvent(number int, recordIn, recordOut, clip, source string) edl.Event {
	event := Event(number, recordIn, recordOut, clip)
	event.SourceFile = source
	return event
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
