package edl

import (
	"strconv"
	"strings"
)

// Unknown is the sentinel for string fields the parser could not populate.
const Unknown = "N/A"

// Marker is a locator comment attached to an event.
type Marker struct {
	Timecode string
	Color    string
	Name     string
}

// Event is the canonical record for one edit event. The parser produces it;
// later components only ever mutate the category list, the duplicate flag,
// the subtitle text, and the event number after structural changes.
type Event struct {
	Number        int
	RecordIn      string
	RecordOut     string
	ClipName      string
	SourceFile    string
	Reel          string
	SourceFPS     string
	SourceIn      string
	SourceOut     string
	Transition    string
	Video         bool
	AudioChannels []int
	Markers       []Marker
	Categories    []string
	Duplicate     bool
	Subtitles     string
}

// Canonical column names shared with the original report layout. Categorizer
// patterns, search, and filter address event fields by these names.
const (
	FieldEventNumber   = "Event #"
	FieldRecordIn      = "Record In"
	FieldRecordOut     = "Record Out"
	FieldClipName      = "Clip Name"
	FieldSourceFile    = "Source File"
	FieldReel          = "Reel"
	FieldSourceFPS     = "Source FPS"
	FieldTimecodeIn    = "Timecode In"
	FieldTimecodeOut   = "Timecode Out"
	FieldTransition    = "Transition"
	FieldVideo         = "Video"
	FieldAudioChannels = "Audio Channels"
	FieldCategory      = "Category"
	FieldSubtitles     = "Subtitles"
)

// Field returns the named field's display value. Unknown names yield the
// empty string so pattern matching treats them as a missing value.
func (e Event) Field(name string) string {
	switch name {
	case FieldEventNumber:
		return strconv.Itoa(e.Number)
	case FieldRecordIn:
		return e.RecordIn
	case FieldRecordOut:
		return e.RecordOut
	case FieldClipName:
		return e.ClipName
	case FieldSourceFile:
		return e.SourceFile
	case FieldReel:
		return e.Reel
	case FieldSourceFPS:
		return e.SourceFPS
	case FieldTimecodeIn:
		return e.SourceIn
	case FieldTimecodeOut:
		return e.SourceOut
	case FieldTransition:
		return e.Transition
	case FieldVideo:
		if e.Video {
			return "V"
		}
		return ""
	case FieldAudioChannels:
		return e.AudioLabel()
	case FieldCategory:
		return e.CategoryLabel()
	case FieldSubtitles:
		return e.Subtitles
	default:
		return ""
	}
}

// HasField reports whether name addresses a known event field.
func (e Event) HasField(name string) bool {
	switch name {
	case FieldEventNumber, FieldRecordIn, FieldRecordOut, FieldClipName,
		FieldSourceFile, FieldReel, FieldSourceFPS, FieldTimecodeIn,
		FieldTimecodeOut, FieldTransition, FieldVideo, FieldAudioChannels,
		FieldCategory, FieldSubtitles:
		return true
	default:
		return false
	}
}

// CategoryLabel joins the assigned categories with "; ". Events without an
// assignment pass render as the empty string; run the categorizer first if a
// populated column is required.
func (e Event) CategoryLabel() string {
	return strings.Join(e.Categories, "; ")
}

// AudioLabel renders the audio channel set as "A1, A2, ...".
func (e Event) AudioLabel() string {
	if len(e.AudioChannels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.AudioChannels))
	for _, ch := range e.AudioChannels {
		parts = append(parts, "A"+strconv.Itoa(ch))
	}
	return strings.Join(parts, ", ")
}

// MarkerLabels renders the marker list as the three " | "-joined columns the
// report layer expects: timecodes, colors, names.
func (e Event) MarkerLabels() (timecodes, colors, names string) {
	if len(e.Markers) == 0 {
		return "", "", ""
	}
	tcs := make([]string, 0, len(e.Markers))
	cols := make([]string, 0, len(e.Markers))
	nms := make([]string, 0, len(e.Markers))
	for _, m := range e.Markers {
		tcs = append(tcs, m.Timecode)
		cols = append(cols, m.Color)
		nms = append(nms, m.Name)
	}
	return strings.Join(tcs, " | "), strings.Join(cols, " | "), strings.Join(nms, " | ")
}
