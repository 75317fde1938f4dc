package locationrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormLocationRepository {
	return &GormLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLocationRepository) Add(ctx context.Context, record *location.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := record.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormLocationRepository) Update(ctx context.Context, record *location.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"latitude":  dto.Latitude,
			"longitude": dto.Longitude,
			"timestamp": dto.Timestamp,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", record.ID())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormLocationRepository) GetByShipmentID(ctx context.Context, shipmentID kernel.ID) (*location.Record, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment_id", shipmentID)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) ListByShipmentID(ctx context.Context, shipmentID kernel.ID) ([]*location.Record, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Int64()).
		Order(`"timestamp", id`).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*location.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *GormLocationRepository) DeleteByShipmentID(ctx context.Context, shipmentID kernel.ID) (int64, error) {
	if err := shipmentID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("shipment_id = ?", shipmentID.Int64()).Delete(&LocationDTO{})
	return result.RowsAffected, result.Error
}
