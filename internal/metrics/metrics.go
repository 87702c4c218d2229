// Package metrics exposes Prometheus instrumentation for API fetches and
// page requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "partyplanner"

// Fetch outcomes recorded by ObserveFetch.
const (
	OutcomeOK         = "ok"
	OutcomeHTTPStatus = "http_status"
	OutcomeTransport  = "transport"
)

// Metrics holds the collectors, registered on a private registry rather than
// the global default.
type Metrics struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	pages         *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_fetches_total",
			Help:      "Parties API fetches by resource and outcome.",
		}, []string{"resource", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_fetch_duration_seconds",
			Help:      "Parties API fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_requests_total",
			Help:      "Rendered page requests by route and status code.",
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		m.fetches,
		m.fetchDuration,
		m.pages,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveFetch records one API fetch. A nil receiver is a no-op.
func (m *Metrics) ObserveFetch(resource, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(resource, outcome).Inc()
	m.fetchDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// ObservePage records one served page. A nil receiver is a no-op.
func (m *Metrics) ObservePage(route string, code int) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
