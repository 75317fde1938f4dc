package commands

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand removes a shipment and its location record.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	requester  identity.Principal
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteShipmentCommand(requester identity.Principal, shipmentID int64) (DeleteShipmentCommand, error) {
	id, err := kernel.NewID(shipmentID)
	if err != nil {
		return DeleteShipmentCommand{}, err
	}

	return DeleteShipmentCommand{
		requester:  requester,
		shipmentID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

func (c DeleteShipmentCommand) Requester() identity.Principal {
	return c.requester
}

func (c DeleteShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
