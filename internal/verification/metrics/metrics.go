package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Extraction latencies by detected document kind
	ExtractionLatency *prometheus.HistogramVec

	// Final decisions by outcome and purpose
	DecisionOutcome *prometheus.CounterVec

	// Overall verification latency including extraction
	VerifyLatency prometheus.Histogram
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		ExtractionLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kycgate_extraction_duration_seconds",
			Help:    "Duration of document classification/extraction calls by detected kind",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),

		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kycgate_decisions_total",
			Help: "Total verification decisions by outcome and purpose",
		}, []string{"decision", "purpose"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kycgate_verify_duration_seconds",
			Help:    "Duration of full verification including extraction",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// ObserveExtractionLatency records the duration of one extraction call.
func (m *Metrics) ObserveExtractionLatency(kind string, d time.Duration) {
	if m != nil {
		m.ExtractionLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// IncrementDecision records a final decision.
func (m *Metrics) IncrementDecision(decision, purpose string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(decision, purpose).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
