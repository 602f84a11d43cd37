package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), false, "test-session")
	if err != nil {
		t.Fatalf("Setup(disabled) error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestTracerStartsSpans(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()

	if span == nil {
		t.Fatal("Tracer().Start() returned nil span")
	}
}
