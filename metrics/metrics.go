// Package metrics encapsulates Prometheus instrumentation for the
// consistency layer without global state.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every metric the broker adapters and validation endpoints
// record. Pass one instance per process; a nil *Registry is a valid no-op.
type Registry struct {
	registry *prometheus.Registry

	publishedTotal *prometheus.CounterVec
	droppedTotal   *prometheus.CounterVec
	consumedTotal  *prometheus.CounterVec
	ackedTotal     *prometheus.CounterVec
	rejectedTotal  *prometheus.CounterVec
	reconnectTotal prometheus.Counter
	rpcTotal       *prometheus.CounterVec
}

// NewRegistry creates a registry with all metrics initialized and the
// standard process/go collectors attached.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()

	r := &Registry{
		registry: registry,

		publishedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_published_total",
				Help: "Events published to an available channel",
			},
			[]string{"exchange", "routing_key"},
		),
		droppedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_dropped_total",
				Help: "Events silently dropped while the broker was unavailable",
			},
			[]string{"exchange", "routing_key"},
		),
		consumedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_consumed_total",
				Help: "Deliveries received by consumers",
			},
			[]string{"exchange", "routing_key"},
		),
		ackedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_acked_total",
				Help: "Deliveries acknowledged after successful handling",
			},
			[]string{"exchange", "routing_key"},
		),
		rejectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_rejected_total",
				Help: "Deliveries rejected toward the dead-letter exchange",
			},
			[]string{"exchange", "routing_key"},
		),
		reconnectTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conferencebus_broker_reconnects_total",
				Help: "Broker connections re-established after a drop",
			},
		),
		rpcTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conferencebus_validation_rpc_total",
				Help: "Validation RPCs by method and outcome",
			},
			[]string{"method", "outcome"}, // outcome: found, not_found, invalid, error
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.publishedTotal,
		r.droppedTotal,
		r.consumedTotal,
		r.ackedTotal,
		r.rejectedTotal,
		r.reconnectTotal,
		r.rpcTotal,
	)

	return r
}

// Handler returns the HTTP handler serving this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) Published(exchange, routingKey string) {
	if r == nil {
		return
	}
	r.publishedTotal.WithLabelValues(exchange, routingKey).Inc()
}

func (r *Registry) Dropped(exchange, routingKey string) {
	if r == nil {
		return
	}
	r.droppedTotal.WithLabelValues(exchange, routingKey).Inc()
}

func (r *Registry) Consumed(exchange, routingKey string) {
	if r == nil {
		return
	}
	r.consumedTotal.WithLabelValues(exchange, routingKey).Inc()
}

func (r *Registry) Acked(exchange, routingKey string) {
	if r == nil {
		return
	}
	r.ackedTotal.WithLabelValues(exchange, routingKey).Inc()
}

func (r *Registry) Rejected(exchange, routingKey string) {
	if r == nil {
		return
	}
	r.rejectedTotal.WithLabelValues(exchange, routingKey).Inc()
}

func (r *Registry) Reconnected() {
	if r == nil {
		return
	}
	r.reconnectTotal.Inc()
}

func (r *Registry) ValidationRPC(method, outcome string) {
	if r == nil {
		return
	}
	r.rpcTotal.WithLabelValues(method, outcome).Inc()
}
