package grouping

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/pipeline"
	"cutlog/internal/timecode"
)

// Group summarizes the events overlapping one time window. Groups own no
// events; FirstEvent/LastEvent are a weak back-reference by event number.
type Group struct {
	Number      int
	EventCount  int
	FirstEvent  int
	LastEvent   int
	RecordIn    string
	RecordOut   string
	UniqueClips int
	SourceFiles []string
	TimecodeIn  string
	TimecodeOut string
	Duration    string
	Subtitles   string
}

// Build partitions record-ordered events into continuous time windows of
// intervalSeconds at the given frame rate and aggregates each window.
//
// Windows are contiguous and non-overlapping: each starts one frame after
// the previous window ends. Membership uses a half-open overlap test
// (event in < window end AND event out > window start), so an event
// straddling a boundary belongs to both adjacent windows. That is
// intentional and must not be "fixed".
func Build(events []edl.Event, intervalSeconds, fps float64, logger *slog.Logger) ([]Group, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if fps <= 0 {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "grouping", "build", fmt.Sprintf("frame rate %v must be positive", fps), nil)
	}
	if intervalSeconds <= 0 {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "grouping", "build", fmt.Sprintf("interval %v must be positive", intervalSeconds), nil)
	}
	if len(events) == 0 {
		return nil, nil
	}

	startTC, err := timecode.Parse(fps, events[0].RecordIn)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFormat, "grouping", "build", fmt.Sprintf("first event Record In %q", events[0].RecordIn), err)
	}
	endTC, err := timecode.Parse(fps, events[len(events)-1].RecordOut)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFormat, "grouping", "build", fmt.Sprintf("last event Record Out %q", events[len(events)-1].RecordOut), err)
	}

	intervalFrames := int(intervalSeconds * fps)
	logger.Info("grouping events into continuous intervals",
		logging.Float64("interval_seconds", intervalSeconds),
		logging.Float64("fps", fps),
		logging.String("timeline_start", startTC.String()),
		logging.String("timeline_end", endTC.String()))

	var groups []Group
	windowStart := startTC.Frames()
	number := 1
	for windowStart < endTC.Frames() {
		windowEnd := windowStart + intervalFrames
		if windowEnd > endTC.Frames() {
			windowEnd = endTC.Frames()
		}

		var members []edl.Event
		for _, event := range events {
			in, err := timecode.Parse(fps, event.RecordIn)
			if err != nil {
				logger.Warn("skipping event with unreadable Record In",
					logging.Int("event", event.Number), logging.Error(err))
				continue
			}
			out, err := timecode.Parse(fps, event.RecordOut)
			if err != nil {
				logger.Warn("skipping event with unreadable Record Out",
					logging.Int("event", event.Number), logging.Error(err))
				continue
			}
			if in.Frames() < windowEnd && out.Frames() > windowStart {
				members = append(members, event)
			}
		}

		if len(members) > 0 {
			groups = append(groups, aggregate(members, number, windowStart, windowEnd, fps))
			number++
		}

		windowStart = windowEnd + 1
	}

	logger.Info("created time-based groups",
		logging.Int("groups", len(groups)),
		logging.Int("events", len(events)))
	return groups, nil
}

func aggregate(members []edl.Event, number, windowStart, windowEnd int, fps float64) Group {
	first := members[0]
	last := members[len(members)-1]

	clips := map[string]struct{}{}
	sources := map[string]struct{}{}
	for _, event := range members {
		if event.ClipName != edl.Unknown && event.ClipName != "" {
			clips[event.ClipName] = struct{}{}
		}
		if event.SourceFile != edl.Unknown && event.SourceFile != "" {
			sources[event.SourceFile] = struct{}{}
		}
	}
	sourceFiles := make([]string, 0, len(sources))
	for source := range sources {
		sourceFiles = append(sourceFiles, source)
	}
	sort.Strings(sourceFiles)

	return Group{
		Number:      number,
		EventCount:  len(members),
		FirstEvent:  first.Number,
		LastEvent:   last.Number,
		RecordIn:    timecode.FromFrames(fps, windowStart).String(),
		RecordOut:   timecode.FromFrames(fps, windowEnd).String(),
		UniqueClips: len(clips),
		SourceFiles: sourceFiles,
		TimecodeIn:  first.SourceIn,
		TimecodeOut: last.SourceOut,
		Duration:    timecode.FromFrames(fps, windowEnd-windowStart).String(),
		Subtitles:   mergeSubtitles(members),
	}
}

// mergeSubtitles concatenates member subtitle text, de-duplicated in
// first-seen order. Events carrying several cues already join them with
// " | ", so split on that before de-duplicating.
func mergeSubtitles(members []edl.Event) string {
	seen := map[string]struct{}{}
	var merged []string
	for _, event := range members {
		for _, part := range strings.Split(event.Subtitles, " | ") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			merged = append(merged, part)
		}
	}
	return strings.Join(merged, " | ")
}
