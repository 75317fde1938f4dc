package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const (
	msgShipmentCreated       = "Shipment created successfully"
	msgShipmentStatusUpdated = "Shipment status updated successfully"
	msgShipmentDeleted       = "Shipment deleted successfully"
	msgShipmentNotFound      = "Shipment not found"
	msgWrongTrackingCode     = "Kindly Enter Correct Shipping Id"
	msgNoShipments           = "No shipments found. Please create a shipment!"
)

// CreateShipment handles POST /api/shipping.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bindBody(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		*req.SenderID,
		req.ReceiverName,
		req.ReceiverAddress,
		req.SenderAddress,
		*req.SenderLatitude,
		*req.SenderLongitude,
		*req.ReceiverLatitude,
		*req.ReceiverLongitude,
	)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateShipmentResponse{
		Message:          msgShipmentCreated,
		Shipment:         toShipmentResponse(result.Shipment),
		ReceiverLocation: toLocationResponse(result.ReceiverLocation),
	})
}

// ListShipments handles GET /api/shipping?sender_id=.
func (s *Server) ListShipments(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNoToken})
	}

	senderID, err := bindQueryID(c, "sender_id")
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewListShipmentsQuery(principal, senderID)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.ListShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	if result.NotFoundHint {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: msgNoShipments})
	}

	shipments := make([]ShipmentResponse, len(result.Shipments))
	for i, v := range result.Shipments {
		shipments[i] = toShipmentViewResponse(v)
	}
	return c.JSON(http.StatusOK, ShipmentListResponse{Shipments: shipments})
}

// GetShipmentByTrackingCode handles GET /api/shipping/:tracking_id.
func (s *Server) GetShipmentByTrackingCode(c echo.Context) error {
	code, err := bindPathString(c, "tracking_id")
	if err != nil {
		return s.respondError(c, err)
	}

	query, err := queries.NewGetShipmentByTrackingCodeQuery(code)
	if err != nil {
		return s.respondErrorAs(c, err, msgWrongTrackingCode)
	}

	result, err := s.handlers.GetShipmentByTrackingCode.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondErrorAs(c, err, msgWrongTrackingCode)
	}

	return c.JSON(http.StatusOK, toTrackingResponse(result))
}

// UpdateShipmentStatus handles PUT /api/shipping/:id/status. Admin only.
func (s *Server) UpdateShipmentStatus(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNoToken})
	}

	id, err := bindPathID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpdateShipmentStatusRequest
	if err := bindBody(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(principal, id, req.Status)
	if err != nil {
		return s.respondError(c, err)
	}

	updated, err := s.handlers.UpdateShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondErrorAs(c, err, msgShipmentNotFound)
	}

	return c.JSON(http.StatusOK, StatusUpdatedResponse{
		Message:  msgShipmentStatusUpdated,
		Shipment: toShipmentResponse(updated),
	})
}

// DeleteShipment handles DELETE /api/shipping/:id. Admin only.
func (s *Server) DeleteShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNoToken})
	}

	id, err := bindPathID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(principal, id)
	if err != nil {
		return s.respondError(c, err)
	}

	if err := s.handlers.DeleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondErrorAs(c, err, msgShipmentNotFound)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: msgShipmentDeleted})
}
