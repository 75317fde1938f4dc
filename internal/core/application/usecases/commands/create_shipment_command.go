package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new parcel.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(7, "Jane Doe", "1 Main St", "5 Side St", 52.52, 13.40, 48.85, 2.35)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	senderID            kernel.ID
	receiverName        string
	receiverAddress     string
	senderAddress       string
	senderCoordinates   kernel.Coordinates
	receiverCoordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates every field and reports all problems at once.
func NewCreateShipmentCommand(
	senderID int64,
	receiverName string,
	receiverAddress string,
	senderAddress string,
	senderLatitude float64,
	senderLongitude float64,
	receiverLatitude float64,
	receiverLongitude float64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		receiverName:    receiverName,
		receiverAddress: receiverAddress,
		senderAddress:   senderAddress,
		guard:           guard.NewConstructorGuard(),
	}

	var problems []error
	if senderID == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("sender_id"))
	} else if id, err := kernel.NewID(senderID); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sender_id", err))
	} else {
		cmd.senderID = id
	}

	for _, field := range []struct{ name, value string }{
		{"receiver_name", receiverName},
		{"receiver_address", receiverAddress},
		{"sender_address", senderAddress},
	} {
		if strings.TrimSpace(field.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(field.name))
		}
	}

	from, err := kernel.NewCoordinates(senderLatitude, senderLongitude)
	if err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sender coordinates", err))
	}
	cmd.senderCoordinates = from

	to, err := kernel.NewCoordinates(receiverLatitude, receiverLongitude)
	if err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("receiver coordinates", err))
	}
	cmd.receiverCoordinates = to

	if err = errors.Join(problems...); err != nil {
		return CreateShipmentCommand{}, err
	}
	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) SenderID() kernel.ID {
	return c.senderID
}

func (c CreateShipmentCommand) ReceiverName() string {
	return c.receiverName
}

func (c CreateShipmentCommand) ReceiverAddress() string {
	return c.receiverAddress
}

func (c CreateShipmentCommand) SenderAddress() string {
	return c.senderAddress
}

func (c CreateShipmentCommand) SenderCoordinates() kernel.Coordinates {
	return c.senderCoordinates
}

// ReceiverCoordinates seed the first location record of the shipment.
func (c CreateShipmentCommand) ReceiverCoordinates() kernel.Coordinates {
	return c.receiverCoordinates
}
