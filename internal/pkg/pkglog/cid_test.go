package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelationID(ctx); got != missingCorrelationID {
		t.Fatalf("expected placeholder, got %q", got)
	}

	ctx = SetCorrelationID(ctx, "req-7f3a")
	if got := GetCorrelationID(ctx); got != "req-7f3a" {
		t.Fatalf("expected req-7f3a, got %q", got)
	}

	if got := GetCorrelationID(context.WithValue(ctx, correlationIDKey{}, 42)); got != missingCorrelationID {
		t.Fatalf("expected placeholder for non-string value, got %q", got)
	}
}
