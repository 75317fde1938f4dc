package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// UpdateShipmentStatusCommandHandler applies a manual status change.
//
// By default any valid status is accepted, including backward moves such as
// Delivered -> Placed. With forwardOnly set, only moves along
// Placed -> InTransit -> Delivered are allowed. Either way updated_at is
// stamped, which restarts the automatic delivery timer.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	clock       kernel.Clock
	forwardOnly bool
}

func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	clock kernel.Clock,
	forwardOnly bool,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		forwardOnly: forwardOnly,
	}
}

func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Requester().IsAdmin() {
		return nil, errs.NewAccessDeniedError("only administrators can change a shipment status")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	change := s.ChangeStatus
	if h.forwardOnly {
		change = s.ChangeStatusForwardOnly
	}
	if err = change(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
