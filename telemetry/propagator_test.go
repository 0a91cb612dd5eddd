package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/propagation"

	"github.com/next-trace/scg-conference-bus/telemetry"
)

func baggageWith(key, value string) (context.Context, error) {
	m, err := baggage.NewMember(key, value)
	if err != nil {
		return nil, err
	}

	b, err := baggage.New(m)
	if err != nil {
		return nil, err
	}

	return baggage.ContextWithBaggage(context.Background(), b), nil
}

func memberValue(ctx context.Context, key string) string {
	return baggage.FromContext(ctx).Member(key).Value()
}

func TestInjectExtractRoundTrip(t *testing.T) {
	t.Parallel()

	p := telemetry.Propagator{TextMap: propagation.Baggage{}}

	bag, err := baggageWith("requestId", "r-42")
	if err != nil {
		t.Fatalf("baggage: %v", err)
	}

	headers := map[string]string{}
	p.Inject(bag, headers)

	if headers["baggage"] == "" {
		t.Fatalf("headers: %v", headers)
	}

	out := p.Extract(context.Background(), headers)
	if got := memberValue(out, "requestId"); got != "r-42" {
		t.Fatalf("extracted: %q", got)
	}
}

func TestZeroValueUsesGlobalPropagator(t *testing.T) {
	t.Parallel()

	// The default global propagator is a no-op; Inject must not panic and
	// Extract must hand back the same context.
	p := telemetry.New()

	headers := map[string]string{}
	p.Inject(context.Background(), headers)

	ctx := context.Background()
	if out := p.Extract(ctx, headers); out == nil {
		t.Fatal("nil context")
	}
}
