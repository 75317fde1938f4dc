// Package metrics exposes Prometheus collectors for the status lifecycle
// scheduler.
package metrics

import (
	"time"

	"shipping/internal/core/domain/model/shipment"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricStatusTransitionsTotal = "shipping_status_transitions_total"
	MetricStatusTickFailures     = "shipping_status_tick_failures_total"
	MetricStatusTickDuration     = "shipping_status_tick_duration_seconds"
)

// LifecycleMetrics records what each scheduler tick did.
type LifecycleMetrics struct {
	transitions  *prometheus.CounterVec
	tickFailures prometheus.Counter
	tickDuration prometheus.Histogram
}

// NewLifecycleMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewLifecycleMetrics(reg prometheus.Registerer) *LifecycleMetrics {
	factory := promauto.With(reg)

	return &LifecycleMetrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricStatusTransitionsTotal,
			Help: "Total number of shipments moved by the status scheduler.",
		},
			[]string{"from", "to"},
		),
		tickFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricStatusTickFailures,
			Help: "Total number of scheduler ticks that failed and were rolled back.",
		}),
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricStatusTickDuration,
			Help:    "Duration of scheduler ticks.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *LifecycleMetrics) ObserveTransitions(from, to shipment.Status, affected int64) {
	if affected <= 0 {
		return
	}
	m.transitions.WithLabelValues(from.String(), to.String()).Add(float64(affected))
}

func (m *LifecycleMetrics) ObserveTickFailure() {
	m.tickFailures.Inc()
}

func (m *LifecycleMetrics) ObserveTickDuration(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}
