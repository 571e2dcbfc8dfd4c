package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cutlog/internal/pipeline"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := pipeline.Wrap(pipeline.ErrFormat, "timecode", "parse", "bad field count", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, pipeline.ErrFormat) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"timecode", "parse", "bad field count"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToValidation(t *testing.T) {
	err := pipeline.Wrap(nil, "grouping", "build", "missing frame rate", nil)
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}

func TestRecoverable(t *testing.T) {
	if !pipeline.Recoverable(pipeline.Wrap(pipeline.ErrFormat, "category", "match", "bad regex", nil)) {
		t.Fatal("format errors should be recoverable")
	}
	if pipeline.Recoverable(pipeline.Wrap(pipeline.ErrFilter, "query", "compile", "bad expression", nil)) {
		t.Fatal("filter errors should not be recoverable")
	}
}

func TestRunIDRoundTrip(t *testing.T) {
	ctx := pipeline.WithRunID(context.Background(), "")
	id, ok := pipeline.RunIDFromContext(ctx)
	if !ok || id == "" {
		t.Fatalf("expected generated run id, got %q", id)
	}
	ctx = pipeline.WithComponent(ctx, "grouping")
	if component, ok := pipeline.ComponentFromContext(ctx); !ok || component != "grouping" {
		t.Fatalf("unexpected component: %q", component)
	}
}
