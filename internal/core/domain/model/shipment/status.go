package shipment

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// Automatic transitions only move forward:
//
//	Placed ──> InTransit ──> Delivered
//
// Delivered is terminal. Manual changes by an administrator may set any valid
// status unless the forward-only policy is enabled (see Shipment.ChangeStatus).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status of every new shipment.
	Placed

	// InTransit means the parcel left the sender.
	InTransit

	// Delivered is the terminal status.
	Delivered
)

// Persisted and wire names. "In Transit" keeps the space used by existing data.
const (
	placedName    = "Placed"
	inTransitName = "In Transit"
	deliveredName = "Delivered"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    placedName,
		InTransit: inTransitName,
		Delivered: deliveredName,
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    placedName,
		InTransit: inTransitName,
		Delivered: deliveredName,
	}
}

// ParseStatus maps a wire value to a Status. "InTransit" is accepted as an
// alias of "In Transit"; matching is exact otherwise.
func ParseStatus(value string) (Status, error) {
	if value == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	for status, name := range getValidStatusStrings() {
		if value == name || value == strings.ReplaceAll(name, " ", "") {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of %q, %q, %q", value, placedName, inTransitName, deliveredName),
	)
}

// Validate checks if the Status value is one of Placed, InTransit, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no automatic transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the forward successor of s.
//
// Valid transitions:
//   - Placed -> InTransit
//   - InTransit -> Delivered
//
// Delivered and invalid statuses have no successor.
func (s Status) Next() (Status, error) {
	switch s { //nolint:exhaustive // the remaining values have no successor
	case Placed:
		return InTransit, nil
	case InTransit:
		return Delivered, nil
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s has no next status", s.String()),
	)
}

// CanAdvanceTo reports whether target lies strictly ahead of s.
func (s Status) CanAdvanceTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil {
		return false
	}
	return target > s
}
