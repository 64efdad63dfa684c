// Package metrics provides Prometheus metrics for the CV dashboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cv_dashboard"

// Metrics owns the dashboard collectors and the private registry they live in.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
	sourceFailures *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates a Metrics with its own registry, including Go runtime and process collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newWithRegistry(registry)
}

func newWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Dashboard render passes by output format.",
		}, []string{"format"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent loading and shaping the CV data for one render.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		sourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_failures_total",
			Help:      "Optional data sources that could not be loaded, by source and reason.",
		}, []string{"source", "reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	registry.MustRegister(
		m.renders,
		m.renderDuration,
		m.sourceFailures,
		m.httpRequests,
		m.httpRequestDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRender records one completed render pass
func (m *Metrics) ObserveRender(format string, d time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(format).Inc()
	m.renderDuration.Observe(d.Seconds())
}

// SourceFailed records an optional source that could not be loaded
func (m *Metrics) SourceFailed(source, reason string) {
	if m == nil {
		return
	}
	m.sourceFailures.WithLabelValues(source, reason).Inc()
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}
