package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location records.
// Storage keeps at most one record per shipment.
type LocationRepository interface {
	// Add persists a new record and assigns the generated id to it.
	Add(ctx context.Context, record *location.Record) error

	// Update overwrites coordinates and timestamp of an existing record.
	Update(ctx context.Context, record *location.Record) error

	// GetByShipmentID returns the record of a shipment.
	// Returns errs.ObjectNotFoundError when the shipment has none.
	GetByShipmentID(ctx context.Context, shipmentID kernel.ID) (*location.Record, error)

	// ListByShipmentID returns every record of a shipment ordered by timestamp.
	// An empty slice is not an error.
	ListByShipmentID(ctx context.Context, shipmentID kernel.ID) ([]*location.Record, error)

	// DeleteByShipmentID removes the records of a shipment and reports how many were removed.
	DeleteByShipmentID(ctx context.Context, shipmentID kernel.ID) (int64, error)
}
