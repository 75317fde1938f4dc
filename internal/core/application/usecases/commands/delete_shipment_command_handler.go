package commands

import (
	"context"

	"shipping/internal/pkg/errs"
)

// DeleteShipmentCommandHandler removes a shipment and its location records in
// one transaction. Only administrators may delete.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Requester().IsAdmin() {
		return errs.NewAccessDeniedError("only administrators can delete a shipment")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.LocationRepository().DeleteByShipmentID(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err := uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
