package listener

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts decision-queue activity. Diagnostics only.
type Metrics struct {
	processed     prometheus.Counter
	failed        prometheus.Counter
	receiveErrors prometheus.Counter
	duration      prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		processed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "loan_decisions_processed_total",
			Help: "Total number of decision messages processed successfully",
		}),
		failed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "loan_decisions_failed_total",
			Help: "Total number of decision messages that failed processing",
		}),
		receiveErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "loan_decision_receive_errors_total",
			Help: "Total number of failed receive calls against the decision queue",
		}),
		duration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_decision_processing_duration_seconds",
			Help:    "Time taken to process one decision message",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.processed.Inc()
	} else {
		m.failed.Inc()
	}
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) receiveError() {
	if m == nil {
		return
	}
	m.receiveErrors.Inc()
}
