// Package logging builds the slog loggers used across cutlog.
//
// Every component receives an injected *slog.Logger (nil means discard);
// there is no package-level logger. New constructs console or JSON handlers
// over one or more output paths, and WithContext augments a logger with the
// run identifier carried in the context.
package logging
