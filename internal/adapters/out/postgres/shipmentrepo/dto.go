// Package shipmentrepo persists shipment aggregates and runs the bulk status
// transitions of the lifecycle scheduler.
package shipmentrepo

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentDTO is a row of the shipments table. Timestamps are owned by the
// domain, so GORM must not fill them in.
type ShipmentDTO struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	TrackingCode    string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	SenderID        int64           `gorm:"not null;index"`
	ReceiverName    string          `gorm:"type:varchar(255);not null"`
	ReceiverAddress string          `gorm:"type:text;not null"`
	SenderAddress   string          `gorm:"type:text;not null"`
	SenderLatitude  decimal.Decimal `gorm:"type:numeric(10,8);not null"`
	SenderLongitude decimal.Decimal `gorm:"type:numeric(11,8);not null"`
	Status          string          `gorm:"type:varchar(20);not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime:false;not null"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:              s.ID().Int64(),
		TrackingCode:    s.TrackingCode().String(),
		SenderID:        s.SenderID().Int64(),
		ReceiverName:    s.ReceiverName(),
		ReceiverAddress: s.ReceiverAddress(),
		SenderAddress:   s.SenderAddress(),
		SenderLatitude:  decimal.NewFromFloat(s.SenderCoordinates().Latitude()),
		SenderLongitude: decimal.NewFromFloat(s.SenderCoordinates().Longitude()),
		Status:          s.Status().String(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	code, codeErr := shipment.ParseTrackingCode(dto.TrackingCode)
	coordinates, coordinatesErr := kernel.NewCoordinates(
		dto.SenderLatitude.InexactFloat64(),
		dto.SenderLongitude.InexactFloat64(),
	)
	status, statusErr := shipment.ParseStatus(dto.Status)
	if err := errors.Join(codeErr, coordinatesErr, statusErr); err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		kernel.ID(dto.ID),
		code,
		kernel.ID(dto.SenderID),
		dto.ReceiverName,
		dto.ReceiverAddress,
		dto.SenderAddress,
		coordinates,
		status,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
