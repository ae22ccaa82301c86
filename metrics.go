package atoship

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request pipeline.
// Endpoint labels use the path template, not the expanded path, to keep
// cardinality bounded. It is safe for concurrent use.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	retriesTotal *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec

	rateLimiterTokens prometheus.Gauge
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "atoship_requests_total",
				Help: "Total number of API calls made",
			},
			[]string{"method", "status_code", "endpoint"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atoship_request_duration_seconds",
				Help:    "Duration of API calls in seconds, including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code", "endpoint"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "atoship_requests_in_flight",
				Help: "Number of API calls currently in flight",
			},
			[]string{"method", "endpoint"},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "atoship_retries_total",
				Help: "Total number of retry attempts",
			},
			[]string{"method", "endpoint", "attempt"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "atoship_errors_total",
				Help: "Total number of classified request errors",
			},
			[]string{"kind", "method", "endpoint"},
		),
		rateLimiterTokens: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "atoship_rate_limiter_tokens",
				Help: "Current number of available client-side rate limiter tokens",
			},
		),
	}
}

// RecordRequestStart marks a logical call entering the pipeline.
func (mc *MetricsCollector) RecordRequestStart(method, endpoint string) {
	mc.requestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// RecordRequestEnd marks a logical call leaving the pipeline.
func (mc *MetricsCollector) RecordRequestEnd(method, endpoint string) {
	mc.requestsInFlight.WithLabelValues(method, endpoint).Dec()
}

// RecordRequest records the terminal outcome of a logical call.
func (mc *MetricsCollector) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	mc.requestsTotal.WithLabelValues(method, status, endpoint).Inc()
	mc.requestDuration.WithLabelValues(method, status, endpoint).Observe(duration.Seconds())
}

// RecordRetry records a scheduled retry attempt (1-based).
func (mc *MetricsCollector) RecordRetry(method, endpoint string, attempt int) {
	mc.retriesTotal.WithLabelValues(method, endpoint, strconv.Itoa(attempt)).Inc()
}

// RecordError records a classified per-attempt error.
func (mc *MetricsCollector) RecordError(kind, method, endpoint string) {
	mc.errorsTotal.WithLabelValues(kind, method, endpoint).Inc()
}

// RecordRateLimiterTokens records the limiter's current token count.
func (mc *MetricsCollector) RecordRateLimiterTokens(tokens float64) {
	mc.rateLimiterTokens.Set(tokens)
}
