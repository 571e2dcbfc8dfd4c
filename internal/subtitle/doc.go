// Package subtitle parses SRT subtitle files and aligns cues to events on
// the record timeline.
package subtitle
