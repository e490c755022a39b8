// Package metrics exposes the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shorty"

// Shortening outcomes.
const (
	KindAuto   = "auto"
	KindCustom = "custom"
	KindDedup  = "dedup"
)

// Redirect outcomes.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Analytics stats that may degrade.
const (
	StatHits     = "hits"
	StatLocation = "location"
	StatDate     = "date"
	StatGeo      = "geo"
)

type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	httpInflight   prometheus.Gauge
	shortened      *prometheus.CounterVec
	redirects      *prometheus.CounterVec
	degraded       *prometheus.CounterVec
	duplicateCodes prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		httpInflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_inflight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		shortened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "urls_shortened_total",
				Help:      "Total number of shortening requests by outcome.",
			},
			[]string{"kind"},
		),
		redirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redirects_total",
				Help:      "Total number of short code resolutions by result.",
			},
			[]string{"result"},
		),
		degraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analytics_degraded_total",
				Help:      "Total number of analytics updates that failed during a redirect.",
			},
			[]string{"stat"},
		),
		duplicateCodes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "duplicate_codes_total",
				Help:      "Total number of auto-generated short codes that collided with an existing auto-generated code.",
			},
		),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.httpInflight,
		m.shortened,
		m.redirects,
		m.degraded,
		m.duplicateCodes,
	)

	return m
}

func (m *Metrics) URLShortened(kind string) {
	if m == nil {
		return
	}
	m.shortened.WithLabelValues(kind).Inc()
}

func (m *Metrics) Redirect(result string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(result).Inc()
}

func (m *Metrics) AnalyticsDegraded(stat string) {
	if m == nil {
		return
	}
	m.degraded.WithLabelValues(stat).Inc()
}

func (m *Metrics) DuplicateCode() {
	if m == nil {
		return
	}
	m.duplicateCodes.Inc()
}
