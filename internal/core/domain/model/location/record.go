package location

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("location record must be created via NewRecord constructor")

	// ErrIDIsAlreadyAssigned is returned when AssignID is called twice.
	ErrIDIsAlreadyAssigned = errors.New("location record id is already assigned")
)

// Record is the current position of one shipment.
type Record struct {
	id          kernel.ID
	shipmentID  kernel.ID
	coordinates kernel.Coordinates
	timestamp   time.Time

	isConstructed bool
}

// NewRecord creates the first position of a shipment, stamped at now.
func NewRecord(shipmentID kernel.ID, coordinates kernel.Coordinates, now time.Time) (*Record, error) {
	if shipmentID == 0 {
		return nil, errs.NewValueIsRequiredError("shipment_id")
	}
	if err := errors.Join(shipmentID.Validate(), coordinates.Validate()); err != nil {
		return nil, err
	}

	return &Record{
		shipmentID:    shipmentID,
		coordinates:   coordinates,
		timestamp:     now,
		isConstructed: true,
	}, nil
}

// RestoreRecord rebuilds a persisted record.
func RestoreRecord(id kernel.ID, shipmentID kernel.ID, coordinates kernel.Coordinates, timestamp time.Time) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	r, err := NewRecord(shipmentID, coordinates, timestamp)
	if err != nil {
		return nil, err
	}
	r.id = id
	return r, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// AssignID records the key generated by storage. It can only be called once.
func (r *Record) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if r.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	r.id = id
	return nil
}

func (r *Record) ID() kernel.ID {
	return r.id
}

func (r *Record) ShipmentID() kernel.ID {
	return r.shipmentID
}

func (r *Record) Coordinates() kernel.Coordinates {
	return r.coordinates
}

func (r *Record) Timestamp() time.Time {
	return r.timestamp
}

// MoveTo overwrites the position and its timestamp.
func (r *Record) MoveTo(coordinates kernel.Coordinates, now time.Time) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}

	r.coordinates = coordinates
	r.timestamp = now
	return nil
}

func (r *Record) String() string {
	return fmt.Sprintf("Record(shipment=%s, %s, at=%s)", r.shipmentID, r.coordinates, r.timestamp.Format(time.RFC3339))
}
