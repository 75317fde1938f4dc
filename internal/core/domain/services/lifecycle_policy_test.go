package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tickAt = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func restore(t *testing.T, status shipment.Status, createdAt, updatedAt time.Time) *shipment.Shipment {
	t.Helper()

	code, err := shipment.ParseTrackingCode("SHIP-1")
	require.NoError(t, err)
	coords, err := kernel.NewCoordinates(1, 1)
	require.NoError(t, err)

	s, err := shipment.RestoreShipment(1, code, 1, "Jane", "a", "b", coords, status, createdAt, updatedAt)
	require.NoError(t, err)
	return s
}

func TestNewLifecyclePolicy(t *testing.T) {
	policy, err := services.NewLifecyclePolicy(10*time.Minute, 20*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, policy.TransitDelay())
	assert.Equal(t, 20*time.Minute, policy.DeliveryDelay())

	_, err = services.NewLifecyclePolicy(0, time.Minute)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewLifecyclePolicy(time.Minute, -time.Minute)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDefaultLifecyclePolicy(t *testing.T) {
	policy := services.DefaultLifecyclePolicy()

	assert.Equal(t, 30*time.Minute, policy.TransitDelay())
	assert.Equal(t, 30*time.Minute, policy.DeliveryDelay())
}

func TestLifecyclePolicy_Rules(t *testing.T) {
	policy := services.DefaultLifecyclePolicy()

	rules := policy.Rules(tickAt)

	require.Len(t, rules, 2)

	assert.Equal(t, shipment.Placed, rules[0].From)
	assert.Equal(t, shipment.InTransit, rules[0].To)
	assert.Equal(t, services.AnchorCreatedAt, rules[0].Anchor)
	assert.Equal(t, tickAt.Add(-30*time.Minute), rules[0].Cutoff)

	assert.Equal(t, shipment.InTransit, rules[1].From)
	assert.Equal(t, shipment.Delivered, rules[1].To)
	assert.Equal(t, services.AnchorUpdatedAt, rules[1].Anchor)
	assert.Equal(t, tickAt.Add(-30*time.Minute), rules[1].Cutoff)

	for _, rule := range rules {
		assert.NotEqual(t, shipment.Delivered, rule.From)
	}
}

func TestTransitionRule_Matches(t *testing.T) {
	rules := services.DefaultLifecyclePolicy().Rules(tickAt)
	toTransit, toDelivered := rules[0], rules[1]

	testCases := []struct {
		name     string
		rule     services.TransitionRule
		shipment *shipment.Shipment
		expected bool
	}{
		{
			name:     "placed 31 minutes ago",
			rule:     toTransit,
			shipment: restore(t, shipment.Placed, tickAt.Add(-31*time.Minute), tickAt.Add(-31*time.Minute)),
			expected: true,
		},
		{
			name:     "placed exactly at cutoff",
			rule:     toTransit,
			shipment: restore(t, shipment.Placed, tickAt.Add(-30*time.Minute), tickAt.Add(-30*time.Minute)),
			expected: true,
		},
		{
			name:     "placed 29 minutes ago",
			rule:     toTransit,
			shipment: restore(t, shipment.Placed, tickAt.Add(-29*time.Minute), tickAt.Add(-29*time.Minute)),
			expected: false,
		},
		{
			name:     "placed long ago but touched recently",
			rule:     toTransit,
			shipment: restore(t, shipment.Placed, tickAt.Add(-2*time.Hour), tickAt.Add(-time.Minute)),
			expected: true,
		},
		{
			name:     "in transit, updated 31 minutes ago",
			rule:     toDelivered,
			shipment: restore(t, shipment.InTransit, tickAt.Add(-2*time.Hour), tickAt.Add(-31*time.Minute)),
			expected: true,
		},
		{
			name:     "in transit, updated recently",
			rule:     toDelivered,
			shipment: restore(t, shipment.InTransit, tickAt.Add(-2*time.Hour), tickAt.Add(-5*time.Minute)),
			expected: false,
		},
		{
			name:     "delivered is never selected",
			rule:     toDelivered,
			shipment: restore(t, shipment.Delivered, tickAt.Add(-5*time.Hour), tickAt.Add(-4*time.Hour)),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.rule.Matches(tc.shipment))
		})
	}
}
