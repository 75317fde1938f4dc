package http

import (
	"errors"
	"net/http"

	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalServerError = "Internal Server Error"

// statusFor maps the error taxonomy to a response status. Validation is
// checked first because a validation error may carry a not-found cause.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c echo.Context, err error) error {
	return s.respondErrorAs(c, err, "")
}

// respondErrorAs writes err as {"error": ...}. A non-empty notFound replaces
// the body of a 404. Internal errors are logged and never leak detail.
func (s *Server) respondErrorAs(c echo.Context, err error, notFound string) error {
	status := statusFor(err)

	switch status {
	case http.StatusInternalServerError:
		s.logger.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
		return c.JSON(status, ErrorResponse{Error: internalServerError})
	case http.StatusNotFound:
		if notFound != "" {
			return c.JSON(status, ErrorResponse{Error: notFound})
		}
	}

	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

// HTTPErrorHandler answers errors that never reached a handler (unknown
// route, wrong method, recovered panic) with the same envelope.
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		if httpErr.Code >= http.StatusInternalServerError {
			s.logger.Error("request failed", zap.Error(err))
			message = internalServerError
		}
		_ = c.JSON(httpErr.Code, ErrorResponse{Error: message})
		return
	}

	_ = s.respondError(c, err)
}
