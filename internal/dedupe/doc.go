// Package dedupe flags and removes repeated events. Two events are repeats
// when their Record In, Record Out, and Clip Name strings are all equal; the
// first occurrence in input order is canonical.
package dedupe
