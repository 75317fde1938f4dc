package queries

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentByTrackingCodeQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingCodeQuery must be created via NewGetShipmentByTrackingCodeQuery constructor",
)

// GetShipmentByTrackingCodeQuery looks a shipment up by its public code. A code
// in the wrong format is simply not found.
type GetShipmentByTrackingCodeQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

func NewGetShipmentByTrackingCodeQuery(trackingCode string) (GetShipmentByTrackingCodeQuery, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return GetShipmentByTrackingCodeQuery{}, errs.NewValueIsRequiredError("tracking_id")
	}

	return GetShipmentByTrackingCodeQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentByTrackingCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingCodeQueryIsNotConstructed)
}

func (q GetShipmentByTrackingCodeQuery) TrackingCode() string {
	return q.trackingCode
}

// LocationView is one position of a shipment.
type LocationView struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// GetShipmentByTrackingCodeQueryResponse is the shipment with its positions,
// oldest first.
type GetShipmentByTrackingCodeQueryResponse struct {
	Shipment  ShipmentView
	Locations []LocationView
}
