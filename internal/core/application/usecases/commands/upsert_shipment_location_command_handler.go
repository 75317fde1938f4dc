package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/pkg/errs"
)

// UpsertShipmentLocationResult tells the caller whether the record was created
// or an existing one was moved.
type UpsertShipmentLocationResult struct {
	Record  *location.Record
	Created bool
}

// UpsertShipmentLocationCommandHandler keeps one location record per shipment:
// the first report creates it, later reports overwrite coordinates and
// timestamp in place.
type UpsertShipmentLocationCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      kernel.Clock
}

func NewUpsertShipmentLocationCommandHandler(
	uowFactory ShipmentUoWFactory,
	clock kernel.Clock,
) UpsertShipmentLocationCommandHandler {
	return UpsertShipmentLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpsertShipmentLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertShipmentLocationCommand,
) (UpsertShipmentLocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpsertShipmentLocationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpsertShipmentLocationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return UpsertShipmentLocationResult{}, err
	}

	now := h.clock.Now()
	repo := uow.LocationRepository()

	record, err := repo.GetByShipmentID(ctx, cmd.ShipmentID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		record, err = location.NewRecord(cmd.ShipmentID(), cmd.Coordinates(), now)
		if err != nil {
			return UpsertShipmentLocationResult{}, err
		}
		if err = repo.Add(ctx, record); err != nil {
			return UpsertShipmentLocationResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return UpsertShipmentLocationResult{}, err
		}
		return UpsertShipmentLocationResult{Record: record, Created: true}, nil

	case err != nil:
		return UpsertShipmentLocationResult{}, err
	}

	if err = record.MoveTo(cmd.Coordinates(), now); err != nil {
		return UpsertShipmentLocationResult{}, err
	}
	if err = repo.Update(ctx, record); err != nil {
		return UpsertShipmentLocationResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return UpsertShipmentLocationResult{}, err
	}

	return UpsertShipmentLocationResult{Record: record}, nil
}
