// Package queries contains read operations. Handlers query the database
// directly and return flat views instead of domain aggregates.
package queries

import (
	"database/sql"
	"time"

	"shipping/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentView is the read model of a shipment joined with its sender's username.
type ShipmentView struct {
	ID              int64
	TrackingCode    string
	SenderID        int64
	SenderUsername  string
	ReceiverName    string
	ReceiverAddress string
	SenderAddress   string
	SenderLatitude  float64
	SenderLongitude float64
	Status          shipment.Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const shipmentViewColumns = `
	s.id,
	s.tracking_code,
	s.sender_id,
	COALESCE(u.username, ''),
	s.receiver_name,
	s.receiver_address,
	s.sender_address,
	s.sender_latitude,
	s.sender_longitude,
	s.status,
	s.created_at,
	s.updated_at`

func scanShipmentView(rows *sql.Rows) (ShipmentView, error) {
	var (
		view     ShipmentView
		lat, lon decimal.Decimal
		status   string
	)

	if err := rows.Scan(
		&view.ID,
		&view.TrackingCode,
		&view.SenderID,
		&view.SenderUsername,
		&view.ReceiverName,
		&view.ReceiverAddress,
		&view.SenderAddress,
		&lat,
		&lon,
		&status,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return ShipmentView{}, err
	}

	parsed, err := shipment.ParseStatus(status)
	if err != nil {
		return ShipmentView{}, err
	}

	view.Status = parsed
	view.SenderLatitude = lat.InexactFloat64()
	view.SenderLongitude = lon.InexactFloat64()
	view.CreatedAt = view.CreatedAt.UTC()
	view.UpdatedAt = view.UpdatedAt.UTC()
	return view, nil
}
