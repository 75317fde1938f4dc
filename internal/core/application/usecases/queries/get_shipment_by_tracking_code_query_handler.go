package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentByTrackingCodeQueryHandler reads a shipment and its location
// records. Returns errs.ObjectNotFoundError for an unknown code.
type GetShipmentByTrackingCodeQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentByTrackingCodeQueryHandler(db *gorm.DB) GetShipmentByTrackingCodeQueryHandler {
	return GetShipmentByTrackingCodeQueryHandler{db: db}
}

func (h GetShipmentByTrackingCodeQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingCodeQuery,
) (GetShipmentByTrackingCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`SELECT`+shipmentViewColumns+`
		FROM shipments s
		LEFT JOIN users u ON u.id = s.sender_id
		WHERE s.tracking_code = ?`, query.TrackingCode()).Rows()
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	var (
		view  ShipmentView
		found bool
	)
	if rows.Next() {
		view, err = scanShipmentView(rows)
		found = err == nil
	}
	if err == nil {
		err = rows.Err()
	}
	_ = rows.Close()
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}
	if !found {
		return GetShipmentByTrackingCodeQueryResponse{}, errs.NewObjectNotFoundError("tracking_id", query.TrackingCode())
	}

	locations, err := h.locations(ctx, view.ID)
	if err != nil {
		return GetShipmentByTrackingCodeQueryResponse{}, err
	}

	return GetShipmentByTrackingCodeQueryResponse{Shipment: view, Locations: locations}, nil
}

func (h GetShipmentByTrackingCodeQueryHandler) locations(ctx context.Context, shipmentID int64) ([]LocationView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			latitude,
			longitude,
			"timestamp"
		FROM shipment_locations
		WHERE shipment_id = ?
		ORDER BY "timestamp", id
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]LocationView, 0, 1)
	for rows.Next() {
		var (
			lat, lon decimal.Decimal
			view     LocationView
		)
		if err = rows.Scan(&lat, &lon, &view.Timestamp); err != nil {
			return nil, err
		}
		view.Latitude = lat.InexactFloat64()
		view.Longitude = lon.InexactFloat64()
		view.Timestamp = view.Timestamp.UTC()
		locations = append(locations, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
