// Package locationrepo persists the current location record of each shipment.
package locationrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
)

// LocationDTO is a row of shipment_locations. shipment_id is unique, so the
// table holds one position per shipment.
type LocationDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64           `gorm:"not null;uniqueIndex"`
	Latitude   decimal.Decimal `gorm:"type:numeric(10,8);not null"`
	Longitude  decimal.Decimal `gorm:"type:numeric(11,8);not null"`
	Timestamp  time.Time       `gorm:"column:timestamp;not null"`
}

func (LocationDTO) TableName() string {
	return "shipment_locations"
}

func fromDomain(r *location.Record) LocationDTO {
	return LocationDTO{
		ID:         r.ID().Int64(),
		ShipmentID: r.ShipmentID().Int64(),
		Latitude:   decimal.NewFromFloat(r.Coordinates().Latitude()),
		Longitude:  decimal.NewFromFloat(r.Coordinates().Longitude()),
		Timestamp:  r.Timestamp(),
	}
}

func toDomain(dto LocationDTO) (*location.Record, error) {
	coordinates, err := kernel.NewCoordinates(dto.Latitude.InexactFloat64(), dto.Longitude.InexactFloat64())
	if err != nil {
		return nil, err
	}

	return location.RestoreRecord(kernel.ID(dto.ID), kernel.ID(dto.ShipmentID), coordinates, dto.Timestamp.UTC())
}
