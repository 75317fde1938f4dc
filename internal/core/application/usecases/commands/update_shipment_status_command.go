package commands

import (
	"errors"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand is an administrator forcing the status of a shipment.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	requester  identity.Principal
	shipmentID kernel.ID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand parses status from its wire name
// ("Placed", "In Transit", "Delivered").
func NewUpdateShipmentStatusCommand(
	requester identity.Principal,
	shipmentID int64,
	status string,
) (UpdateShipmentStatusCommand, error) {
	id, idErr := kernel.NewID(shipmentID)
	parsed, statusErr := shipment.ParseStatus(status)
	if err := errors.Join(idErr, statusErr); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		requester:  requester,
		shipmentID: id,
		status:     parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) Requester() identity.Principal {
	return c.requester
}

func (c UpdateShipmentStatusCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}
