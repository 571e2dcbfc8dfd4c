package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormat marks malformed input data: a bad timecode string or an
	// unusable category pattern. Always recovered locally by skipping the
	// offending unit.
	ErrFormat = errors.New("format error")
	// ErrFilter marks an invalid filter predicate. Surfaced to the caller,
	// which decides whether to fall back to the unfiltered collection.
	ErrFilter = errors.New("filter error")
	// ErrValidation marks structurally invalid control parameters rejected
	// before processing begins.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks an unusable configuration or rules file.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound marks a missing input file.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether an error may be absorbed by skipping the
// offending unit instead of aborting a collection-wide operation.
func Recoverable(err error) bool {
	return errors.Is(err, ErrFormat)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
