package stats

import (
	"log/slog"

	"cutlog/internal/edl"
	"cutlog/internal/logging"
	"cutlog/internal/timecode"
)

// Statistics aggregates one event collection for the summary report.
type Statistics struct {
	TotalEvents       int
	UniqueSourceFiles int
	UniqueClipNames   int
	UniqueReels       int
	VideoEvents       int
	AudioOnlyEvents   int
	DuplicateEvents   int

	CategoryCounts   map[string]int
	TransitionCounts map[string]int
	FPSCounts        map[string]int

	TimelineDuration string
	AverageShot      string
	ShortestShot     string
	LongestShot      string
	TotalShotFrames  int
}

// Collect computes statistics over the collection at the given frame rate.
// Duration metrics degrade to empty strings when the bounding timecodes are
// unreadable; nothing here fails the run.
func Collect(events []edl.Event, fps float64, logger *slog.Logger) Statistics {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := Statistics{
		TotalEvents:      len(events),
		CategoryCounts:   map[string]int{},
		TransitionCounts: map[string]int{},
		FPSCounts:        map[string]int{},
	}

	sources := map[string]struct{}{}
	clips := map[string]struct{}{}
	reels := map[string]struct{}{}
	for _, event := range events {
		if event.SourceFile != edl.Unknown && event.SourceFile != "" {
			sources[event.SourceFile] = struct{}{}
		}
		if event.ClipName != edl.Unknown && event.ClipName != "" {
			clips[event.ClipName] = struct{}{}
		}
		if event.Reel != edl.Unknown && event.Reel != "" {
			reels[event.Reel] = struct{}{}
		}
		if event.Video {
			s.VideoEvents++
		} else {
			s.AudioOnlyEvents++
		}
		if event.Duplicate {
			s.DuplicateEvents++
		}
		for _, name := range event.Categories {
			s.CategoryCounts[name]++
		}
		if event.Transition != edl.Unknown && event.Transition != "" {
			s.TransitionCounts[event.Transition]++
		}
		if event.SourceFPS != edl.Unknown && event.SourceFPS != "" {
			s.FPSCounts[event.SourceFPS]++
		}
	}
	s.UniqueSourceFiles = len(sources)
	s.UniqueClipNames = len(clips)
	s.UniqueReels = len(reels)

	collectDurations(&s, events, fps, logger)

	logger.Info("statistics generated",
		logging.Int("events", s.TotalEvents),
		logging.Int("unique_sources", s.UniqueSourceFiles))
	return s
}

func collectDurations(s *Statistics, events []edl.Event, fps float64, logger *slog.Logger) {
	if len(events) == 0 {
		return
	}
	if frames, err := timecode.DurationFrames(fps, events[0].RecordIn, events[len(events)-1].RecordOut); err == nil {
		s.TimelineDuration = timecode.FromFrames(fps, frames).String()
	} else {
		logger.Warn("could not compute timeline duration", logging.Error(err))
	}

	var durations []int
	for _, event := range events {
		frames, err := timecode.DurationFrames(fps, event.RecordIn, event.RecordOut)
		if err != nil {
			continue
		}
		durations = append(durations, frames)
	}
	if len(durations) == 0 {
		return
	}
	total, shortest, longest := 0, durations[0], durations[0]
	for _, frames := range durations {
		total += frames
		if frames < shortest {
			shortest = frames
		}
		if frames > longest {
			longest = frames
		}
	}
	s.TotalShotFrames = total
	s.AverageShot = timecode.FromFrames(fps, total/len(durations)).String()
	s.ShortestShot = timecode.FromFrames(fps, shortest).String()
	s.LongestShot = timecode.FromFrames(fps, longest).String()
}
