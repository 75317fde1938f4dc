package commands

import (
	"errors"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusesCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusesCommand must be created via NewAdvanceShipmentStatusesCommand constructor",
)

// AdvanceShipmentStatusesCommand is one tick of the lifecycle scheduler.
type AdvanceShipmentStatusesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewAdvanceShipmentStatusesCommand(now time.Time) (AdvanceShipmentStatusesCommand, error) {
	if now.IsZero() {
		return AdvanceShipmentStatusesCommand{}, errs.NewValueIsRequiredError("now")
	}

	return AdvanceShipmentStatusesCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceShipmentStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusesCommandIsNotConstructed)
}

// Now is the tick time every rule is evaluated against.
func (c AdvanceShipmentStatusesCommand) Now() time.Time {
	return c.now
}
