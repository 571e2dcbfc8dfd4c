package subtitle

import (
	"log/slog"
	"math"
	"strings"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
	"cutlog/internal/timecode"
)

// Align attaches subtitle text to every event whose record range overlaps a
// cue, mutating the events in place. Cue times are converted to frames at
// fps. When startAt is a non-empty Record In timecode, the whole subtitle
// timeline shifts so the first cue begins there; otherwise the subtitle
// timeline and the record timeline are taken to share an origin. Multiple
// cues landing on one event are joined with " | ".
func Align(events []edl.Event, cues []Cue, fps float64, startAt string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	if fps <= 0 {
		return pipeline.Wrap(pipeline.ErrValidation, "subtitle", "align", "frame rate must be positive", nil)
	}
	if len(cues) == 0 || len(events) == 0 {
		return nil
	}

	offset := 0
	if strings.TrimSpace(startAt) != "" {
		anchor, err := timecode.Parse(fps, startAt)
		if err != nil {
			return pipeline.Wrap(pipeline.ErrFormat, "subtitle", "align", "invalid alignment start timecode", err)
		}
		offset = anchor.Frames() - toFrames(cues[0].Start, fps)
	}

	attached := 0
	for i := range events {
		in, err := timecode.Parse(fps, events[i].RecordIn)
		if err != nil {
			logger.Warn("skipping event with unreadable Record In",
				logging.Int("event", events[i].Number), logging.Error(err))
			continue
		}
		out, err := timecode.Parse(fps, events[i].RecordOut)
		if err != nil {
			logger.Warn("skipping event with unreadable Record Out",
				logging.Int("event", events[i].Number), logging.Error(err))
			continue
		}
		var texts []string
		for _, cue := range cues {
			cueStart := toFrames(cue.Start, fps) + offset
			cueEnd := toFrames(cue.End, fps) + offset
			if cueStart < out.Frames() && cueEnd > in.Frames() && cue.Text != "" {
				texts = append(texts, cue.Text)
			}
		}
		if len(texts) > 0 {
			events[i].Subtitles = strings.Join(texts, " | ")
			attached++
		}
	}
	logger.Info("aligned subtitles to events",
		logging.Int("cues", len(cues)),
		logging.Int("events_with_subtitles", attached))
	return nil
}

func toFrames(seconds, fps float64) int {
	return int(math.Round(seconds * fps))
}
