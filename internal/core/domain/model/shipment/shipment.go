package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created through
	// NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrIDIsAlreadyAssigned is returned when AssignID is called twice.
	ErrIDIsAlreadyAssigned = errors.New("shipment id is already assigned")
)

// Shipment is the aggregate root of a parcel sent by a registered user.
//
// Invariants:
//   - tracking code is issued once and never changes
//   - sender, receiver name and both addresses are non-empty
//   - status is one of Placed, InTransit, Delivered
//   - updatedAt is never before createdAt
type Shipment struct {
	id                kernel.ID
	trackingCode      TrackingCode
	senderID          kernel.ID
	receiverName      string
	receiverAddress   string
	senderAddress     string
	senderCoordinates kernel.Coordinates
	status            Status
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewShipment creates a shipment in Placed status. The id stays zero until the
// repository assigns one on insert.
//
// Example:
//
//	code := generator.Next(clock.Now())
//	from, _ := kernel.NewCoordinates(52.52, 13.405)
//	s, err := shipment.NewShipment(code, senderID, "Jane Doe", "1 Main St", "5 Side St", from, clock.Now())
func NewShipment(
	trackingCode TrackingCode,
	senderID kernel.ID,
	receiverName string,
	receiverAddress string,
	senderAddress string,
	senderCoordinates kernel.Coordinates,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingCode(trackingCode),
		s.setSenderID(senderID),
		s.setReceiverName(receiverName),
		s.setReceiverAddress(receiverAddress),
		s.setSenderAddress(senderAddress),
		s.setSenderCoordinates(senderCoordinates),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a persisted shipment, including its status and timestamps.
func RestoreShipment(
	id kernel.ID,
	trackingCode TrackingCode,
	senderID kernel.ID,
	receiverName string,
	receiverAddress string,
	senderAddress string,
	senderCoordinates kernel.Coordinates,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(trackingCode, senderID, receiverName, receiverAddress, senderAddress, senderCoordinates, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updated_at",
			fmt.Errorf("%s is before created_at %s", updatedAt.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}

	s.id = id
	s.status = status
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment was built by a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// AssignID records the key generated by storage. It can only be called once.
func (s *Shipment) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	s.id = id
	return nil
}

func (s *Shipment) ID() kernel.ID {
	return s.id
}

func (s *Shipment) TrackingCode() TrackingCode {
	return s.trackingCode
}

func (s *Shipment) SenderID() kernel.ID {
	return s.senderID
}

func (s *Shipment) ReceiverName() string {
	return s.receiverName
}

func (s *Shipment) ReceiverAddress() string {
	return s.receiverAddress
}

func (s *Shipment) SenderAddress() string {
	return s.senderAddress
}

func (s *Shipment) SenderCoordinates() kernel.Coordinates {
	return s.senderCoordinates
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsOwnedBy reports whether userID sent this shipment.
func (s *Shipment) IsOwnedBy(userID kernel.ID) bool {
	return s.senderID == userID
}

// ChangeStatus sets any valid status and stamps updatedAt, so the delivery timer
// restarts even when the status does not change. Backward moves such as
// Delivered -> Placed are accepted; use ChangeStatusForwardOnly to forbid them.
func (s *Shipment) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	s.status = status
	s.touch(now)
	return nil
}

// ChangeStatusForwardOnly is ChangeStatus restricted to moves along
// Placed -> InTransit -> Delivered.
func (s *Shipment) ChangeStatusForwardOnly(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if !s.status.CanAdvanceTo(status) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move from %s to %s", s.status, status),
		)
	}

	s.status = status
	s.touch(now)
	return nil
}

func (s *Shipment) touch(now time.Time) {
	if now.Before(s.createdAt) {
		now = s.createdAt
	}
	s.updatedAt = now
}

func (s *Shipment) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	s.trackingCode = code
	return nil
}

func (s *Shipment) setSenderID(id kernel.ID) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("sender_id")
	}
	if err := id.Validate(); err != nil {
		return err
	}
	s.senderID = id
	return nil
}

func (s *Shipment) setReceiverName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("receiver_name")
	}
	s.receiverName = name
	return nil
}

func (s *Shipment) setReceiverAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("receiver_address")
	}
	s.receiverAddress = address
	return nil
}

func (s *Shipment) setSenderAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("sender_address")
	}
	s.senderAddress = address
	return nil
}

func (s *Shipment) setSenderCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	s.senderCoordinates = coordinates
	return nil
}
