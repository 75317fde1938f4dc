// Package ports defines the contracts between the shipment core and its
// infrastructure: persistence, the user directory and the auth primitives.
package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns the generated id to it.
	// A tracking code that already exists is rejected by storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists status and updated_at of an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// GetByTrackingCode retrieves a shipment by its public code.
	// Returns errs.ObjectNotFoundError when absent.
	GetByTrackingCode(ctx context.Context, code shipment.TrackingCode) (*shipment.Shipment, error)

	// Delete removes a shipment. Returns errs.ObjectNotFoundError when no row was removed.
	Delete(ctx context.Context, id kernel.ID) error

	// ApplyTransition moves every shipment selected by rule to rule.To and stamps
	// updated_at with now, in one conditional statement. Rows changed concurrently
	// so that they no longer match the rule are left alone.
	//
	// Example:
	//   for _, rule := range policy.Rules(now) {
	//       affected, err := repo.ApplyTransition(ctx, rule, now)
	//       if err != nil {
	//           return err
	//       }
	//       log.Info("advanced", zap.Int64("rows", affected))
	//   }
	ApplyTransition(ctx context.Context, rule services.TransitionRule, now time.Time) (int64, error)
}
