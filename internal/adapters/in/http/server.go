// Package http is the echo-based REST adapter. It decodes requests into
// commands and queries, runs them and encodes the results in the JSON shapes
// the web client already consumes.
package http

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/domain/model/shipment"

	"go.uber.org/zap"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy
// them; tests substitute mocks.
type (
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (commands.CreateShipmentResult, error)
	}

	UpdateShipmentStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateShipmentStatusCommand) (*shipment.Shipment, error)
	}

	DeleteShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error
	}

	UpsertShipmentLocationHandler interface {
		Handle(ctx context.Context, cmd commands.UpsertShipmentLocationCommand) (commands.UpsertShipmentLocationResult, error)
	}

	SignUpUserHandler interface {
		Handle(ctx context.Context, cmd commands.SignUpUserCommand) (*identity.User, error)
	}

	SignInUserHandler interface {
		Handle(ctx context.Context, cmd commands.SignInUserCommand) (commands.SignInResult, error)
	}

	ListShipmentsHandler interface {
		Handle(ctx context.Context, query queries.ListShipmentsQuery) (queries.ListShipmentsQueryResponse, error)
	}

	GetShipmentByTrackingCodeHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentByTrackingCodeQuery) (queries.GetShipmentByTrackingCodeQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateShipment            CreateShipmentHandler
	UpdateShipmentStatus      UpdateShipmentStatusHandler
	DeleteShipment            DeleteShipmentHandler
	UpsertShipmentLocation    UpsertShipmentLocationHandler
	SignUpUser                SignUpUserHandler
	SignInUser                SignInUserHandler
	ListShipments             ListShipmentsHandler
	GetShipmentByTrackingCode GetShipmentByTrackingCodeHandler
}

// Server implements the REST endpoints on top of the use case handlers.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http")),
	}
}
