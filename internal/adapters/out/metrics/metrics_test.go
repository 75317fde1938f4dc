package metrics_test

import (
	"strings"
	"testing"
	"time"

	"shipping/internal/adapters/out/metrics"
	"shipping/internal/core/domain/model/shipment"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleMetrics_ObserveTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewLifecycleMetrics(reg)

	m.ObserveTransitions(shipment.Placed, shipment.InTransit, 3)
	m.ObserveTransitions(shipment.Placed, shipment.InTransit, 2)
	m.ObserveTransitions(shipment.InTransit, shipment.Delivered, 0)

	expected := `
# HELP shipping_status_transitions_total Total number of shipments moved by the status scheduler.
# TYPE shipping_status_transitions_total counter
shipping_status_transitions_total{from="Placed",to="In Transit"} 5
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), metrics.MetricStatusTransitionsTotal)
	require.NoError(t, err)
}

func TestLifecycleMetrics_TickFailuresAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewLifecycleMetrics(reg)

	m.ObserveTickFailure()
	m.ObserveTickFailure()
	m.ObserveTickDuration(20 * time.Millisecond)

	count, err := testutil.GatherAndCount(reg, metrics.MetricStatusTickFailures, metrics.MetricStatusTickDuration)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP shipping_status_tick_failures_total Total number of scheduler ticks that failed and were rolled back.
# TYPE shipping_status_tick_failures_total counter
shipping_status_tick_failures_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), metrics.MetricStatusTickFailures))
}

func TestNewLifecycleMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewLifecycleMetrics(reg)

	assert.Panics(t, func() { metrics.NewLifecycleMetrics(reg) })
}
