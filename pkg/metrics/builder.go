package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BuilderMetrics records package builder submission outcomes.
type BuilderMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewBuilderMetrics registers the builder metrics on the provided registerer.
func NewBuilderMetrics(reg prometheus.Registerer) *BuilderMetrics {
	if reg == nil {
		return &BuilderMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "package_submission_duration_seconds",
		Help:    "Duration of package submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "package_submission_success",
		Help: "Successful package submissions.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "package_submission_failure",
		Help: "Failed package submissions.",
	}, []string{"operation"})
	reg.MustRegister(duration, success, failure)
	return &BuilderMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named operation.
func (b *BuilderMetrics) ObserveDuration(operation string, duration time.Duration) {
	if b == nil || b.duration == nil {
		return
	}
	b.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named operation.
func (b *BuilderMetrics) IncSuccess(operation string) {
	if b == nil || b.success == nil {
		return
	}
	b.success.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (b *BuilderMetrics) IncFailure(operation string) {
	if b == nil || b.failure == nil {
		return
	}
	b.failure.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
