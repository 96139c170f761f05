// Package metrics provides Prometheus instrumentation for the HTTP API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge
}

// New creates and registers the service metrics under the given namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, by method, route and status.",
		}, []string{"service", "method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// IncrementInFlight marks a request as in flight.
func (m *Metrics) IncrementInFlight() {
	m.inFlight.Inc()
}

// DecrementInFlight marks a request as finished.
func (m *Metrics) DecrementInFlight() {
	m.inFlight.Dec()
}

// RecordHTTPRequest records a completed request.
func (m *Metrics) RecordHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(service, method, path, status).Inc()
	m.httpDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// Handler returns the /metrics scrape handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
