package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUpsertShipmentLocationCommandIsNotConstructed = errors.New(
	"UpsertShipmentLocationCommand must be created via NewUpsertShipmentLocationCommand constructor",
)

// UpsertShipmentLocationCommand reports the current position of a shipment.
type UpsertShipmentLocationCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.ID
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

func NewUpsertShipmentLocationCommand(
	shipmentID int64,
	latitude float64,
	longitude float64,
) (UpsertShipmentLocationCommand, error) {
	id, idErr := kernel.NewID(shipmentID)
	coordinates, coordinatesErr := kernel.NewCoordinates(latitude, longitude)
	if err := errors.Join(idErr, coordinatesErr); err != nil {
		return UpsertShipmentLocationCommand{}, err
	}

	return UpsertShipmentLocationCommand{
		shipmentID:  id,
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpsertShipmentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpsertShipmentLocationCommandIsNotConstructed)
}

func (c UpsertShipmentLocationCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

func (c UpsertShipmentLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}
