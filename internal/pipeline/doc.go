// Package pipeline carries the shared error taxonomy and run context for the
// event-processing pipeline.
//
// Components tag failures with sentinel errors (ErrFormat, ErrFilter,
// ErrValidation, ErrConfiguration, ErrNotFound) via Wrap so callers can
// classify them with errors.Is. Format errors are always recovered locally by
// skipping the offending unit; filter and validation errors reject the request
// before processing begins.
//
// The context helpers attach a per-invocation run identifier that the logging
// layer surfaces on every record belonging to the same run.
package pipeline
