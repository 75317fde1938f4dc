package commands

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/services"
)

// TransitionOutcome reports how many shipments one rule moved.
type TransitionOutcome struct {
	Rule     services.TransitionRule
	Affected int64
}

// AdvanceShipmentStatusesCommandHandler applies the lifecycle rules due at the
// tick time. All rules run in one transaction and in policy order; if any of
// them fails nothing is written and the next tick starts over.
type AdvanceShipmentStatusesCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.LifecyclePolicy
}

func NewAdvanceShipmentStatusesCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy services.LifecyclePolicy,
) AdvanceShipmentStatusesCommandHandler {
	return AdvanceShipmentStatusesCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h *AdvanceShipmentStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceShipmentStatusesCommand,
) ([]TransitionOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	rules := h.policy.Rules(cmd.Now())
	outcomes := make([]TransitionOutcome, 0, len(rules))

	for _, rule := range rules {
		affected, err := repo.ApplyTransition(ctx, rule, cmd.Now())
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", rule, err)
		}
		outcomes = append(outcomes, TransitionOutcome{Rule: rule, Affected: affected})
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return outcomes, nil
}
