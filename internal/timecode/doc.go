// Package timecode implements the frame-rate-aware timecode value used across
// the pipeline.
//
// A Timecode pairs a frame rate with an absolute frame count. Arithmetic and
// comparison are defined only between timecodes sharing a rate; cross-rate
// work requires converting to a common rate first, which is the caller's
// responsibility. The package never resamples.
package timecode
