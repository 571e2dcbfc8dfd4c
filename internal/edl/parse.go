package edl

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
)

// eventLinePattern matches a CMX3600 event line: number, reel, channels,
// transition (with optional duration operand), then four timecodes.
var eventLinePattern = regexp.MustCompile(
	`^(\d+)\s+(\S+)\s+(\S+)\s+([A-Z]+)\s*(\d*)\s+` +
		`(\d{1,2}[:;]\d{1,2}[:;]\d{1,2}[:;]\d{1,3})\s+` +
		`(\d{1,2}[:;]\d{1,2}[:;]\d{1,2}[:;]\d{1,3})\s+` +
		`(\d{1,2}[:;]\d{1,2}[:;]\d{1,2}[:;]\d{1,3})\s+` +
		`(\d{1,2}[:;]\d{1,2}[:;]\d{1,2}[:;]\d{1,3})\s*$`)

// List is the result of parsing one EDL file.
type List struct {
	Title  string
	Events []Event
}

// ParseFile reads and parses a CMX3600-style EDL file. Unreadable event lines
// are skipped with a warning rather than failing the whole file.
func ParseFile(path string, logger *slog.Logger) (List, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return List{}, pipeline.Wrap(pipeline.ErrNotFound, "edl", "parse", fmt.Sprintf("EDL file not found: %s", path), err)
		}
		return List{}, pipeline.Wrap(pipeline.ErrFormat, "edl", "parse", fmt.Sprintf("read %s", path), err)
	}
	list := Parse(decodeText(data), logger)
	logger.Info("parsed EDL file",
		logging.String("file", path),
		logging.String("title", list.Title),
		logging.Int("events", len(list.Events)))
	return list, nil
}

// Parse parses EDL text that has already been read and decoded.
func Parse(text string, logger *slog.Logger) List {
	if logger == nil {
		logger = logging.NewNop()
	}
	var list List
	var current *Event

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "TITLE:"):
			list.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "TITLE:"))
		case strings.HasPrefix(trimmed, "FCM:"):
			// Frame-count mode notes are informational only.
			continue
		case eventLinePattern.MatchString(trimmed):
			event, ok := parseEventLine(trimmed, logger)
			if !ok {
				continue
			}
			// Multi-line events repeat the number; the first edit is primary.
			if n := len(list.Events); n > 0 && list.Events[n-1].Number == event.Number {
				continue
			}
			list.Events = append(list.Events, event)
			current = &list.Events[len(list.Events)-1]
		case current != nil && strings.HasPrefix(trimmed, "*LOC:"):
			if marker, ok := parseMarker(trimmed); ok {
				current.Markers = append(current.Markers, marker)
			}
		case current != nil && strings.HasPrefix(trimmed, "*"):
			parseNoteLine(current, trimmed)
		case current != nil && isMotionLine(trimmed):
			if fps, ok := motionFPS(trimmed); ok {
				current.SourceFPS = strconv.FormatFloat(fps, 'g', -1, 64)
			}
		}
	}
	return list
}

func parseEventLine(line string, logger *slog.Logger) (Event, bool) {
	m := eventLinePattern.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		logger.Warn("skipping event line with unusable number", logging.String("line", line))
		return Event{}, false
	}
	video, audio := parseChannels(m[3])
	event := Event{
		Number:        number,
		Reel:          m[2],
		Transition:    transitionName(m[4]),
		Video:         video,
		AudioChannels: audio,
		SourceIn:      formatTimecode(m[6]),
		SourceOut:     formatTimecode(m[7]),
		RecordIn:      formatTimecode(m[8]),
		RecordOut:     formatTimecode(m[9]),
		ClipName:      Unknown,
		SourceFile:    Unknown,
		SourceFPS:     Unknown,
	}
	return event, true
}

func parseNoteLine(event *Event, line string) {
	note := strings.TrimSpace(strings.TrimPrefix(line, "*"))
	upper := strings.ToUpper(note)
	switch {
	case strings.HasPrefix(upper, "FROM CLIP NAME:"):
		event.ClipName = noteValue(note)
	case strings.HasPrefix(upper, "TO CLIP NAME:") && event.ClipName == Unknown:
		event.ClipName = noteValue(note)
	case strings.HasPrefix(upper, "SOURCE FILE:"):
		event.SourceFile = noteValue(note)
	}
}

func noteValue(note string) string {
	idx := strings.Index(note, ":")
	if idx < 0 {
		return Unknown
	}
	value := strings.TrimSpace(note[idx+1:])
	if value == "" {
		return Unknown
	}
	return value
}

// parseMarker reads a locator line: *LOC: 00:02:23:18 RED MARKER 4
func parseMarker(line string) (Marker, bool) {
	fields := strings.Fields(strings.TrimSpace(strings.TrimPrefix(line, "*LOC:")))
	switch {
	case len(fields) >= 3:
		return Marker{Timecode: fields[0], Color: fields[1], Name: strings.Join(fields[2:], " ")}, true
	case len(fields) == 2:
		return Marker{Timecode: fields[0], Color: fields[1]}, true
	default:
		return Marker{}, false
	}
}

func isMotionLine(line string) bool {
	return strings.HasPrefix(line, "M1 ") || strings.HasPrefix(line, "M2 ") || strings.HasPrefix(line, "M3 ") ||
		strings.HasPrefix(line, "M1\t") || strings.HasPrefix(line, "M2\t") || strings.HasPrefix(line, "M3\t")
}

// motionFPS extracts the adapter speed from an M1/M2/M3 line. The value is
// whichever token parses as a float in the plausible 1..240 fps range.
func motionFPS(line string) (float64, bool) {
	for _, token := range strings.Fields(line)[1:] {
		fps, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if fps >= 1.0 && fps <= 240.0 {
			return fps, true
		}
	}
	return 0, false
}

// channelCodes maps the common CMX channel designators. "B" means both video
// and the first audio channel.
var channelCodes = map[string]struct {
	video bool
	audio []int
}{
	"V":    {video: true},
	"A":    {audio: []int{1}},
	"A2":   {audio: []int{2}},
	"A3":   {audio: []int{3}},
	"A4":   {audio: []int{4}},
	"AA":   {audio: []int{1, 2}},
	"B":    {video: true, audio: []int{1}},
	"NONE": {},
}

func parseChannels(code string) (bool, []int) {
	video := false
	seen := map[int]struct{}{}
	var audio []int
	for _, part := range strings.Split(strings.ToUpper(code), "/") {
		entry, ok := channelCodes[part]
		if !ok {
			// A1A2-style compound designators.
			for _, sub := range splitCompoundChannels(part) {
				if e, ok := channelCodes[sub]; ok {
					video = video || e.video
					for _, ch := range e.audio {
						if _, dup := seen[ch]; !dup {
							seen[ch] = struct{}{}
							audio = append(audio, ch)
						}
					}
				}
			}
			continue
		}
		video = video || entry.video
		for _, ch := range entry.audio {
			if _, dup := seen[ch]; !dup {
				seen[ch] = struct{}{}
				audio = append(audio, ch)
			}
		}
	}
	return video, audio
}

// splitCompoundChannels breaks "A1A2" or "VA1" into single designators.
func splitCompoundChannels(code string) []string {
	var parts []string
	for i := 0; i < len(code); {
		c := code[i]
		if c != 'A' && c != 'V' && c != 'B' {
			i++
			continue
		}
		j := i + 1
		for j < len(code) && code[j] >= '0' && code[j] <= '9' {
			j++
		}
		part := code[i:j]
		if part == "A1" {
			part = "A"
		}
		parts = append(parts, part)
		i = j
	}
	return parts
}

func transitionName(code string) string {
	switch {
	case code == "C":
		return "Cut"
	case code == "D":
		return "Dissolve"
	case strings.HasPrefix(code, "W"):
		return "Wipe"
	case code == "K", code == "KB", code == "KO":
		return "Key"
	default:
		return code
	}
}

// formatTimecode normalizes separators and zero-pads every field so the
// string forms compare and sort consistently.
func formatTimecode(tc string) string {
	parts := strings.Split(strings.ReplaceAll(tc, ";", ":"), ":")
	if len(parts) != 4 {
		return tc
	}
	for i, part := range parts {
		if len(part) < 2 {
			parts[i] = "0" + part
		}
	}
	return strings.Join(parts, ":")
}

// decodeText returns the file contents as a string, falling back to Latin-1
// when the bytes are not valid UTF-8. Older edit systems routinely emit
// non-UTF-8 clip names.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
