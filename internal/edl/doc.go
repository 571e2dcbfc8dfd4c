// Package edl defines the event data model and parses CMX3600-style edit
// decision lists into it.
//
// An Event is one edit on the program timeline: record and source timecode
// ranges, clip and source-file names, reel, channel set, transition, and any
// locator markers. The parser also reads the comment conventions most
// editing systems emit (FROM CLIP NAME, SOURCE FILE, *LOC markers, M2 motion
// adapter lines). Missing string fields carry the "N/A" sentinel.
//
// Merge and ValidateOrder implement the multi-file interleave and the
// advisory sequential-order check; everything else that operates on events
// lives in the sibling component packages.
package edl
