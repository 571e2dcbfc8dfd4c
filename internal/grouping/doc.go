// Package grouping partitions a record-ordered event sequence into
// continuous time windows and aggregates each window into a group summary.
package grouping
