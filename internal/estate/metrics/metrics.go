package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the estate module.
type Metrics struct {
	// Calculation outcomes by case (standard, awl, radd)
	CalculationOutcome *prometheus.CounterVec

	// Full calculation latency including store reads
	CalculateLatency prometheus.Histogram

	// Result cache lookups by outcome
	CacheLookups *prometheus.CounterVec
}

// New creates a Metrics instance with all estate module metrics registered.
func New() *Metrics {
	return &Metrics{
		CalculationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mirath_calculation_outcomes_total",
			Help: "Total inheritance calculations by case",
		}, []string{"case"}),

		CalculateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mirath_calculation_duration_seconds",
			Help:    "Duration of a full calculation including roster loading",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mirath_result_cache_lookups_total",
			Help: "Result cache lookups by outcome",
		}, []string{"outcome"}), // outcome: "hit", "miss", "error"
	}
}

// IncrementOutcome records a calculation outcome.
func (m *Metrics) IncrementOutcome(caseTag string) {
	if m != nil {
		m.CalculationOutcome.WithLabelValues(caseTag).Inc()
	}
}

// ObserveCalculateLatency records the total calculation duration.
func (m *Metrics) ObserveCalculateLatency(d time.Duration) {
	if m != nil {
		m.CalculateLatency.Observe(d.Seconds())
	}
}

// IncrementCacheLookup records a result cache lookup outcome.
func (m *Metrics) IncrementCacheLookup(outcome string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(outcome).Inc()
	}
}
