package http

import (
	"net/http"
	"strings"
	"time"

	"shipping/internal/core/domain/model/identity"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const principalContextKey = "principal"

const (
	msgNoToken      = "Access denied, no token provided"
	msgInvalidToken = "Invalid token"
	msgAdminOnly    = "Access denied, admin only"
)

// BearerAuth verifies the Authorization bearer token and stores the caller's
// principal in the request context.
func BearerAuth(verifier ports.TokenVerifier, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNoToken})
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("token rejected", zap.Error(err), zap.String("path", c.Path()))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgInvalidToken})
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// AdminOnly must run after BearerAuth.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := principalFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgNoToken})
		}
		if !principal.IsAdmin() {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: msgAdminOnly})
		}
		return next(c)
	}
}

func principalFrom(c echo.Context) (identity.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(identity.Principal)
	return principal, ok
}

func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

func cors(allowedOrigins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}
