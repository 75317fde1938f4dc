package cmd

import (
	"context"
	"fmt"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/auth"
	"shipping/internal/adapters/out/metrics"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg           Config
	gormDB        *gorm.DB
	uowFactory    *postgres.GormUnitOfWorkFactory
	clock         kernel.Clock
	trackingCodes *shipment.TrackingCodeGenerator
	policy        services.LifecyclePolicy
	hasher        auth.BcryptHasher
	tokens        *auth.JWTService
	registry      *prometheus.Registry
	logger        *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	clock := kernel.SystemClock{}

	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	policy, err := services.NewLifecyclePolicy(cfg.StatusTransitDelay, cfg.StatusDeliveryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle policy: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &CompositionRoot{
		cfg:           cfg,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:         clock,
		trackingCodes: shipment.NewTrackingCodeGenerator(),
		policy:        policy,
		hasher:        auth.NewBcryptHasher(bcrypt.DefaultCost),
		tokens:        tokens,
		registry:      registry,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoW() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.uow(), c.clock, c.trackingCodes)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoW(), c.clock, c.cfg.StatusForwardOnly)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoW())
}

func (c *CompositionRoot) CreateUpsertShipmentLocationCommandHandler() commands.UpsertShipmentLocationCommandHandler {
	return commands.NewUpsertShipmentLocationCommandHandler(c.shipmentUoW(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusesCommandHandler() commands.AdvanceShipmentStatusesCommandHandler {
	return commands.NewAdvanceShipmentStatusesCommandHandler(c.shipmentUoW(), c.policy)
}

func (c *CompositionRoot) CreateSignUpUserCommandHandler() commands.SignUpUserCommandHandler {
	return commands.NewSignUpUserCommandHandler(c.userUoW(), c.hasher)
}

func (c *CompositionRoot) CreateSignInUserCommandHandler() commands.SignInUserCommandHandler {
	return commands.NewSignInUserCommandHandler(c.userUoW(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingCodeQueryHandler() queries.GetShipmentByTrackingCodeQueryHandler {
	return queries.NewGetShipmentByTrackingCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	advance := c.CreateAdvanceShipmentStatusesCommandHandler()
	lifecycle := jobs.NewShipmentLifecycleJob(
		&advance,
		c.clock,
		metrics.NewLifecycleMetrics(c.registry),
		c.cfg.StatusTickInterval,
		c.logger,
	)
	return jobs.NewJobManager(c.logger, lifecycle)
}

// CreateRouter wires every use case into the echo router.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	createShipment := c.CreateCreateShipmentCommandHandler()
	updateStatus := c.CreateUpdateShipmentStatusCommandHandler()
	deleteShipment := c.CreateDeleteShipmentCommandHandler()
	upsertLocation := c.CreateUpsertShipmentLocationCommandHandler()
	signUp := c.CreateSignUpUserCommandHandler()
	signIn := c.CreateSignInUserCommandHandler()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateShipment:            &createShipment,
		UpdateShipmentStatus:      &updateStatus,
		DeleteShipment:            &deleteShipment,
		UpsertShipmentLocation:    &upsertLocation,
		SignUpUser:                &signUp,
		SignInUser:                &signIn,
		ListShipments:             c.CreateListShipmentsQueryHandler(),
		GetShipmentByTrackingCode: c.CreateGetShipmentByTrackingCodeQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Verifier:       c.tokens,
		Gatherer:       c.registry,
		OpenAPI:        doc,
		AllowedOrigins: []string{c.cfg.CORSAllowedOrigin},
	}), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
