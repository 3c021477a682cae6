// Package metrics exposes the service's prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters on a private registry
type Metrics struct {
	registry *prometheus.Registry

	ChartRenders    prometheus.Counter
	RecordsRejected *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers the service counters
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ChartRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "astroloh_chart_renders_total",
			Help: "Number of wheel renders performed.",
		}),
		RecordsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "astroloh_records_rejected_total",
			Help: "Number of planet/aspect records dropped during validation.",
		}, []string{"kind"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "astroloh_http_requests_total",
			Help: "Number of HTTP requests served.",
		}, []string{"method", "status"}),
	}

	registry.MustRegister(m.ChartRenders, m.RecordsRejected, m.HTTPRequests)
	return m
}

// Handler serves the /metrics endpoint for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
