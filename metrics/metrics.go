package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service. Each instance
// carries its own registry so tests can build servers side by side.
type Metrics struct {
	registry *prometheus.Registry

	EngineCalls     *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TracksResolved  prometheus.Counter
	TracksDropped   prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		EngineCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hifi_engine_calls_total",
				Help: "Total number of extraction engine invocations",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hifi_request_duration_seconds",
				Help:    "Time spent serving HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		TracksResolved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hifi_tracks_resolved_total",
				Help: "Total number of tracks with a usable audio URL",
			},
		),
		TracksDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hifi_tracks_dropped_total",
				Help: "Total number of entries dropped for lacking an audio URL",
			},
		),
	}

	registry.MustRegister(
		m.EngineCalls,
		m.RequestDuration,
		m.TracksResolved,
		m.TracksDropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the Prometheus exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveEngineCall records one extraction engine invocation.
func (m *Metrics) ObserveEngineCall(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.EngineCalls.WithLabelValues(operation, status).Inc()
}
