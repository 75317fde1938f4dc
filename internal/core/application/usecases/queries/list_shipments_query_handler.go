package queries

import (
	"context"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads shipments joined with the sender's username,
// ordered by id.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	requester := query.Requester()
	if !requester.IsAdmin() && query.SenderID() != 0 && query.SenderID() != requester.UserID {
		return ListShipmentsQueryResponse{}, errs.NewAccessDeniedError("you can only view your own shipments")
	}

	db := h.db.WithContext(ctx)
	stmt := `SELECT` + shipmentViewColumns + `
		FROM shipments s
		LEFT JOIN users u ON u.id = s.sender_id`
	args := make([]any, 0, 1)
	if !requester.IsAdmin() {
		stmt += ` WHERE s.sender_id = ?`
		args = append(args, requester.UserID.Int64())
	}
	stmt += ` ORDER BY s.id`

	rows, err := db.Raw(stmt, args...).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	shipments := make([]ShipmentView, 0)
	for rows.Next() {
		view, scanErr := scanShipmentView(rows)
		if scanErr != nil {
			return ListShipmentsQueryResponse{}, scanErr
		}
		shipments = append(shipments, view)
	}

	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	return ListShipmentsQueryResponse{
		Shipments:    shipments,
		NotFoundHint: !requester.IsAdmin() && len(shipments) == 0,
	}, nil
}
