package services

import (
	"fmt"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// Default delays between automatic transitions.
const (
	DefaultTransitDelay  = 30 * time.Minute
	DefaultDeliveryDelay = 30 * time.Minute
)

// Anchor names the shipment timestamp a rule measures its delay from.
type Anchor string

const (
	AnchorCreatedAt Anchor = "created_at"
	AnchorUpdatedAt Anchor = "updated_at"
)

// TransitionRule selects every shipment in From whose Anchor timestamp is at or
// before Cutoff, and moves it to To.
type TransitionRule struct {
	From   shipment.Status
	To     shipment.Status
	Anchor Anchor
	Cutoff time.Time
}

func (r TransitionRule) String() string {
	return fmt.Sprintf("%s -> %s when %s <= %s", r.From, r.To, r.Anchor, r.Cutoff.Format(time.RFC3339))
}

// Matches reports whether a single shipment falls under the rule.
func (r TransitionRule) Matches(s *shipment.Shipment) bool {
	if s.Status() != r.From {
		return false
	}

	anchor := s.CreatedAt()
	if r.Anchor == AnchorUpdatedAt {
		anchor = s.UpdatedAt()
	}
	return !anchor.After(r.Cutoff)
}

// LifecyclePolicy is a domain service producing the automatic transitions due at
// a given tick.
//
// Business rules:
//   - Placed shipments move to InTransit transitDelay after creation
//   - InTransit shipments move to Delivered deliveryDelay after their last update
//   - Delivered is terminal, no rule leaves it
//
// Both rules run in the same tick, in this order. The first rule stamps
// updated_at with the tick time, so a shipment it moves is not delivered by the
// second rule in the same tick.
//
// Example usage:
//
//	policy, _ := services.NewLifecyclePolicy(30*time.Minute, 30*time.Minute)
//	for _, rule := range policy.Rules(clock.Now()) {
//	    affected, err := repo.ApplyTransition(ctx, rule, now)
//	    ...
//	}
type LifecyclePolicy struct {
	transitDelay  time.Duration
	deliveryDelay time.Duration
}

// NewLifecyclePolicy creates a policy from two positive delays.
//
// Returns:
//   - LifecyclePolicy: policy ready to produce rules
//   - error: ValueIsOutOfRange if a delay is zero or negative
func NewLifecyclePolicy(transitDelay, deliveryDelay time.Duration) (LifecyclePolicy, error) {
	if transitDelay <= 0 {
		return LifecyclePolicy{}, errs.NewValueIsOutOfRangeError("transitDelay", transitDelay, time.Nanosecond, "unbounded")
	}
	if deliveryDelay <= 0 {
		return LifecyclePolicy{}, errs.NewValueIsOutOfRangeError("deliveryDelay", deliveryDelay, time.Nanosecond, "unbounded")
	}

	return LifecyclePolicy{
		transitDelay:  transitDelay,
		deliveryDelay: deliveryDelay,
	}, nil
}

// DefaultLifecyclePolicy returns the 30 minute / 30 minute policy.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		transitDelay:  DefaultTransitDelay,
		deliveryDelay: DefaultDeliveryDelay,
	}
}

func (p LifecyclePolicy) TransitDelay() time.Duration {
	return p.transitDelay
}

func (p LifecyclePolicy) DeliveryDelay() time.Duration {
	return p.deliveryDelay
}

// Rules returns the transitions due at now, in the order they must be applied.
func (p LifecyclePolicy) Rules(now time.Time) []TransitionRule {
	return []TransitionRule{
		{
			From:   shipment.Placed,
			To:     shipment.InTransit,
			Anchor: AnchorCreatedAt,
			Cutoff: now.Add(-p.transitDelay),
		},
		{
			From:   shipment.InTransit,
			To:     shipment.Delivered,
			Anchor: AnchorUpdatedAt,
			Cutoff: now.Add(-p.deliveryDelay),
		},
	}
}
