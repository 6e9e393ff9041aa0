package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for dutyboard
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	DutiesCompletedTotal   prometheus.CounterVec
	DutiesUncompletedTotal prometheus.CounterVec
	MembersActive          prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutyboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dutyboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dutyboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutyboard_cache_hits_total",
				Help: "Total recent-duty cache hits by duty type",
			},
			[]string{"duty_type"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutyboard_cache_misses_total",
				Help: "Total recent-duty cache misses by duty type",
			},
			[]string{"duty_type"},
		),

		// Business Metrics
		DutiesCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutyboard_duties_completed_total",
				Help: "Total duty assignments marked completed",
			},
			[]string{"duty_type"},
		),
		DutiesUncompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dutyboard_duties_uncompleted_total",
				Help: "Total duty assignments reverted to uncompleted",
			},
			[]string{"duty_type"},
		),
		MembersActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "dutyboard_members_active",
				Help: "Current number of active office members",
			},
		),
	}
}
