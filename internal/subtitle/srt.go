package subtitle

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
)

// Cue is one subtitle entry with start and end positions in seconds.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// ParseSRTFile reads and parses an SRT subtitle file.
func ParseSRTFile(path string, logger *slog.Logger) ([]Cue, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pipeline.Wrap(pipeline.ErrNotFound, "subtitle", "parse", fmt.Sprintf("subtitle file not found: %s", path), err)
		}
		return nil, pipeline.Wrap(pipeline.ErrFormat, "subtitle", "parse", fmt.Sprintf("read %s", path), err)
	}
	cues := ParseSRT(string(data), logger)
	logger.Info("parsed subtitle file", logging.String("file", path), logging.Int("cues", len(cues)))
	return cues, nil
}

// ParseSRT parses SRT content: blank-line-separated blocks of index,
// timestamp range, and text lines. Malformed blocks are skipped with a
// warning.
func ParseSRT(content string, logger *slog.Logger) []Cue {
	if logger == nil {
		logger = logging.NewNop()
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	var cues []Cue
	for _, block := range strings.Split(strings.TrimSpace(normalized), "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			logger.Warn("skipping block without a numeric index", logging.String("block", lines[0]))
			continue
		}
		start, end, err := parseTimestampRange(lines[1])
		if err != nil {
			logger.Warn("skipping block with unreadable timestamps",
				logging.Int("index", index), logging.Error(err))
			continue
		}
		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		cues = append(cues, Cue{Index: index, Start: start, End: end, Text: text})
	}
	return cues
}

func parseTimestampRange(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing --> separator in %q", line)
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp reads HH:MM:SS,mmm. The SRT standard uses a comma before
// the milliseconds but periods show up in the wild and are tolerated.
func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
