package observability

import (
	"errors"
	"time"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by the Engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	records  *prometheus.CounterVec
	batches  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if a collector with the same name is already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixtura_records_generated_total",
				Help: "Total number of generated records",
			},
			[]string{"source"},
		),
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixtura_batches_total",
				Help: "Total number of test case batches requested",
			},
			[]string{"source"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixtura_generation_failures_total",
				Help: "Total number of failed generations by reason",
			},
			[]string{"source", "reason"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fixtura_batch_duration_seconds",
				Help:    "Duration of test case batch generation",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.records, m.batches, m.failures, m.duration)
	return m
}

// ObserveBatch records one batch request from source.
// records is the number of records produced (zero on failure).
func (m *Metrics) ObserveBatch(source string, records int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(source).Inc()
	m.duration.WithLabelValues(source).Observe(elapsed.Seconds())
	if err != nil {
		m.failures.WithLabelValues(source, Reason(err)).Inc()
		return
	}
	m.records.WithLabelValues(source).Add(float64(records))
}

// ObserveValue records one single-value generation from source.
func (m *Metrics) ObserveValue(source string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.failures.WithLabelValues(source, Reason(err)).Inc()
	}
}

// Reason classifies err into a low-cardinality label value.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrRange):
		return "range"
	case errors.Is(err, domain.ErrSchemaNotFound):
		return "not_found"
	default:
		return "other"
	}
}
