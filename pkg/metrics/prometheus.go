package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/seoscope/audit-console/pkg/interfaces"
)

// PrometheusCollector implements metrics collection using Prometheus
type PrometheusCollector struct {
	serviceName string

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Submission metrics
	submissionsTotal   *prometheus.CounterVec
	submissionDuration *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector
func NewPrometheusCollector(serviceName string) *PrometheusCollector {
	return &PrometheusCollector{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
		),

		submissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_submissions_total",
				Help: "Total number of audit submissions by outcome",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"status"},
		),

		submissionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "audit_submission_duration_seconds",
				Help: "End-to-end audit submission duration in seconds",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"status"},
		),

		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_validation_failures_total",
				Help: "Total number of submissions rejected by input validation",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"field"},
		),
	}
}

// GetCollectors returns all Prometheus collectors for registration
func (p *PrometheusCollector) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.httpRequestsTotal,
		p.httpRequestDuration,
		p.httpRequestsInFlight,
		p.submissionsTotal,
		p.submissionDuration,
		p.validationFailures,
	}
}

// RecordRequest records HTTP request metrics
func (p *PrometheusCollector) RecordRequest(method, path string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)

	p.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	p.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
}

// RecordSubmission records one finished audit submission
func (p *PrometheusCollector) RecordSubmission(status string, duration float64) {
	p.submissionsTotal.WithLabelValues(status).Inc()
	p.submissionDuration.WithLabelValues(status).Observe(duration)
}

// RecordValidationFailure records a submission rejected before any network call
func (p *PrometheusCollector) RecordValidationFailure(field string) {
	p.validationFailures.WithLabelValues(field).Inc()
}

// IncRequestsInFlight increments the in-flight requests gauge
func (p *PrometheusCollector) IncRequestsInFlight() {
	p.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge
func (p *PrometheusCollector) DecRequestsInFlight() {
	p.httpRequestsInFlight.Dec()
}

// statusCodeToString converts HTTP status code to string category
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// Ensure PrometheusCollector implements interfaces.MetricsCollector
var _ interfaces.MetricsCollector = (*PrometheusCollector)(nil)
