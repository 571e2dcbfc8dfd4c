// Package stats derives summary metrics from an event collection: counts,
// category and transition distributions, and shot-length analysis.
package stats
