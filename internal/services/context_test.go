package services_test

import (
	"context"
	"testing"

	"sortd/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-1")
	id, ok := services.RunIDFromContext(ctx)
	if !ok || id != "run-1" {
		t.Fatalf("expected run-1, got %q ok=%v", id, ok)
	}
	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	if _, ok := services.RunIDFromContext(services.WithRunID(context.Background(), "")); ok {
		t.Fatal("blank run id must not be stored")
	}
}

func TestPhaseRoundTrip(t *testing.T) {
	ctx := services.WithPhase(context.Background(), "plan")
	phase, ok := services.PhaseFromContext(ctx)
	if !ok || phase != "plan" {
		t.Fatalf("expected plan, got %q ok=%v", phase, ok)
	}
	if _, ok := services.PhaseFromContext(context.Background()); ok {
		t.Fatal("expected no phase on empty context")
	}
}
