package edl

import (
	"fmt"
	"log/slog"

	"cutlog/internal/logging"
	"cutlog/internal/timecode"
)

// ValidateOrder checks that adjacent events are sequential on the record
// timeline: the next event's Record In must not precede the previous event's
// Record Out. The check is advisory; it reports overlaps without failing.
func ValidateOrder(events []Event, fps float64, logger *slog.Logger) (bool, []string) {
	if logger == nil {
		logger = logging.NewNop()
	}
	var issues []string
	for i := 0; i+1 < len(events); i++ {
		currentOut, err := timecode.Parse(fps, events[i].RecordOut)
		if err != nil {
			issues = append(issues, fmt.Sprintf("Event #%d has unreadable Record Out %q", events[i].Number, events[i].RecordOut))
			continue
		}
		nextIn, err := timecode.Parse(fps, events[i+1].RecordIn)
		if err != nil {
			issues = append(issues, fmt.Sprintf("Event #%d has unreadable Record In %q", events[i+1].Number, events[i+1].RecordIn))
			continue
		}
		if nextIn.Frames() < currentOut.Frames() {
			issue := fmt.Sprintf("Overlap: Event #%d ends at %s but Event #%d starts at %s",
				events[i].Number, currentOut, events[i+1].Number, nextIn)
			issues = append(issues, issue)
			logger.Warn("timecode overlap", logging.String("issue", issue))
		}
	}
	if len(issues) == 0 {
		logger.Info("timecode validation passed", logging.Int("events", len(events)))
		return true, nil
	}
	logger.Warn("timecode validation found issues", logging.Int("issues", len(issues)))
	return false, issues
}
