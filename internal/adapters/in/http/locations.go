package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

const (
	msgLocationAdded   = "Shipment location added successfully"
	msgLocationUpdated = "Shipment location updated successfully"
)

// UpsertShipmentLocation handles POST /api/shipping/:id/location. The first
// report answers 201, later ones 200.
func (s *Server) UpsertShipmentLocation(c echo.Context) error {
	id, err := bindPathID(c, "id")
	if err != nil {
		return s.respondError(c, err)
	}

	var req UpsertLocationRequest
	if err := bindBody(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewUpsertShipmentLocationCommand(id, *req.Latitude, *req.Longitude)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.UpsertShipmentLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondErrorAs(c, err, msgShipmentNotFound)
	}

	if result.Created {
		return c.JSON(http.StatusCreated, LocationUpsertedResponse{
			Message:  msgLocationAdded,
			Location: toLocationResponse(result.Record),
		})
	}
	return c.JSON(http.StatusOK, LocationUpsertedResponse{
		Message:  msgLocationUpdated,
		Location: toLocationResponse(result.Record),
	})
}
