package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cutlog/internal/pipeline"
)

// Timecode is a frame-accurate position on a timeline at a fixed frame rate.
// The absolute frame count is the single source of truth for ordering and
// arithmetic; the HH:MM:SS:FF string form is a formatting concern only.
type Timecode struct {
	rate   float64
	frames int
}

// Parse constructs a Timecode from an HH:MM:SS:FF string at the given rate.
// Both ':' and the drop-frame ';' separator are accepted. The frame field is
// not range-checked; an out-of-range value simply carries into the absolute
// frame count.
func Parse(rate float64, text string) (Timecode, error) {
	if rate <= 0 {
		return Timecode{}, pipeline.Wrap(pipeline.ErrValidation, "timecode", "parse", fmt.Sprintf("frame rate %v must be positive", rate), nil)
	}
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ";", ":")
	parts := strings.Split(normalized, ":")
	if len(parts) != 4 {
		return Timecode{}, pipeline.Wrap(pipeline.ErrFormat, "timecode", "parse", fmt.Sprintf("%q is not HH:MM:SS:FF", text), nil)
	}
	values := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Timecode{}, pipeline.Wrap(pipeline.ErrFormat, "timecode", "parse", fmt.Sprintf("%q has a non-numeric field", text), err)
		}
		values[i] = v
	}
	fps := nominalFPS(rate)
	frames := ((values[0]*3600)+(values[1]*60)+values[2])*fps + values[3]
	return Timecode{rate: rate, frames: frames}, nil
}

// FromFrames constructs a Timecode from an absolute frame count. Negative
// counts are legal only as intermediate arithmetic; rendering one is the
// caller's bug.
func FromFrames(rate float64, frames int) Timecode {
	return Timecode{rate: rate, frames: frames}
}

// Rate returns the frame rate the Timecode was constructed with.
func (t Timecode) Rate() float64 { return t.rate }

// Frames returns the absolute frame count.
func (t Timecode) Frames() int { return t.frames }

// String renders the Timecode as HH:MM:SS:FF with a two-digit zero-padded
// frame field.
func (t Timecode) String() string {
	fps := nominalFPS(t.rate)
	if fps <= 0 {
		fps = 30
	}
	total := t.frames
	ff := total % fps
	seconds := total / fps
	ss := seconds % 60
	minutes := seconds / 60
	mm := minutes % 60
	hh := minutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hh, mm, ss, ff)
}

// Sub returns the signed frame difference t - other. Both operands must share
// the same frame rate.
func (t Timecode) Sub(other Timecode) (int, error) {
	if t.rate != other.rate {
		return 0, pipeline.Wrap(pipeline.ErrValidation, "timecode", "sub", fmt.Sprintf("mismatched frame rates %v and %v", t.rate, other.rate), nil)
	}
	return t.frames - other.frames, nil
}

// Add returns a Timecode offset by the given number of frames.
func (t Timecode) Add(frames int) Timecode {
	return Timecode{rate: t.rate, frames: t.frames + frames}
}

// DurationFrames parses both timecodes at the given rate and returns
// out - in as a frame count.
func DurationFrames(rate float64, in, out string) (int, error) {
	tcIn, err := Parse(rate, in)
	if err != nil {
		return 0, err
	}
	tcOut, err := Parse(rate, out)
	if err != nil {
		return 0, err
	}
	return tcOut.Sub(tcIn)
}

// nominalFPS maps a real frame rate onto the integer frame counter used in
// the HH:MM:SS:FF representation (23.976 counts 24 frames per second label).
func nominalFPS(rate float64) int {
	return int(math.Round(rate))
}
