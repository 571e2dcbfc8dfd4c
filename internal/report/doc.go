// Package report renders event collections, temporal groups, changelogs, and
// statistics as terminal tables or CSV, and exports per-category CSV splits.
package report
