// Package changelog compares two independently parsed EDL versions and
// classifies the differences as added, removed, or modified events.
//
// The comparison is a key-set difference plus a per-common-key source-file
// check; no positional or edit-distance alignment is performed, so position
// changes with identical timing and clip name are invisible here.
package changelog
