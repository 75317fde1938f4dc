package shipmentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment and assigns the generated id to the aggregate.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and updated_at; everything else is immutable.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) GetByTrackingCode(
	ctx context.Context,
	code shipment.TrackingCode,
) (*shipment.Shipment, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking_code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id)
	}

	return nil
}

// ApplyTransition runs one conditional UPDATE for the rule:
//
//	UPDATE shipments SET status = <to>, updated_at = <now>
//	WHERE status = <from> AND <anchor> <= <cutoff>
//
// The predicate is evaluated by the database, so a row changed by a manual
// update in the meantime is skipped if it no longer matches.
func (r *GormShipmentRepository) ApplyTransition(
	ctx context.Context,
	rule services.TransitionRule,
	now time.Time,
) (int64, error) {
	column, err := anchorColumn(rule.Anchor)
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("status = ? AND "+column+" <= ?", rule.From.String(), rule.Cutoff).
		Updates(map[string]any{
			"status":     rule.To.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func anchorColumn(anchor services.Anchor) (string, error) {
	switch anchor {
	case services.AnchorCreatedAt:
		return "created_at", nil
	case services.AnchorUpdatedAt:
		return "updated_at", nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("anchor", fmt.Errorf("unknown anchor %q", anchor))
	}
}
