package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// CreateShipmentResult carries the stored shipment and its seeded receiver location.
type CreateShipmentResult struct {
	Shipment         *shipment.Shipment
	ReceiverLocation *location.Record
}

// CreateShipmentCommandHandler registers a shipment in Placed status together
// with a location record at the receiver's coordinates. Both rows are written
// in one transaction; a sender that does not exist leaves nothing behind.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	codes      *shipment.TrackingCodeGenerator
}

func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	clock kernel.Clock,
	codes *shipment.TrackingCodeGenerator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		codes:      codes,
	}
}

func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (CreateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.SenderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CreateShipmentResult{}, errs.NewValueIsInvalidErrorWithCause("sender_id does not exist", err)
		}
		return CreateShipmentResult{}, err
	}

	now := h.clock.Now()
	s, err := shipment.NewShipment(
		h.codes.Next(now),
		cmd.SenderID(),
		cmd.ReceiverName(),
		cmd.ReceiverAddress(),
		cmd.SenderAddress(),
		cmd.SenderCoordinates(),
		now,
	)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return CreateShipmentResult{}, err
	}

	record, err := location.NewRecord(s.ID(), cmd.ReceiverCoordinates(), now)
	if err != nil {
		return CreateShipmentResult{}, err
	}

	if err = uow.LocationRepository().Add(ctx, record); err != nil {
		return CreateShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateShipmentResult{}, err
	}

	return CreateShipmentResult{Shipment: s, ReceiverLocation: record}, nil
}
