package http

import (
	"net/http"

	"shipping/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the collaborators NewRouter needs besides the Server.
type RouterConfig struct {
	Verifier       ports.TokenVerifier
	Gatherer       prometheus.Gatherer
	OpenAPI        *openapi3.T
	AllowedOrigins []string
}

// NewRouter builds the echo instance with middleware and all routes.
func NewRouter(server *Server, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = server.HTTPErrorHandler

	e.Use(requestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(server.logger))
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(cors(cfg.AllowedOrigins))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	if cfg.OpenAPI != nil {
		doc := cfg.OpenAPI
		e.GET("/api-docs/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, doc)
		})
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api")
	api.POST("/signup", server.SignUp)
	api.POST("/login", server.SignIn)

	shipping := api.Group("/shipping", BearerAuth(cfg.Verifier, server.logger))
	shipping.POST("", server.CreateShipment)
	shipping.GET("", server.ListShipments)
	shipping.GET("/:tracking_id", server.GetShipmentByTrackingCode)
	shipping.PUT("/:id/status", server.UpdateShipmentStatus, AdminOnly)
	shipping.DELETE("/:id", server.DeleteShipment, AdminOnly)
	shipping.POST("/:id/location", server.UpsertShipmentLocation)

	return e
}
