// Package telemetry bridges message headers to OpenTelemetry context
// propagation so traces survive the hop through the broker.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/next-trace/scg-conference-bus/contract/bus"
)

// Propagator implements bus.HeaderPropagator on top of an OpenTelemetry
// TextMapPropagator. The zero value uses the global propagator.
type Propagator struct {
	TextMap propagation.TextMapPropagator
}

var _ bus.HeaderPropagator = Propagator{}

// New returns a Propagator backed by the global OpenTelemetry propagator as
// configured by the process (W3C tracecontext and baggage by default).
func New() Propagator { return Propagator{} }

func (p Propagator) textMap() propagation.TextMapPropagator {
	if p.TextMap != nil {
		return p.TextMap
	}

	return otel.GetTextMapPropagator()
}

func (p Propagator) Inject(ctx context.Context, headers map[string]string) {
	p.textMap().Inject(ctx, propagation.MapCarrier(headers))
}

func (p Propagator) Extract(ctx context.Context, headers map[string]string) context.Context {
	return p.textMap().Extract(ctx, propagation.MapCarrier(headers))
}
