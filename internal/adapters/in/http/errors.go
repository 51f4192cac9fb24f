package http

import (
	"errors"
	"net/http"

	"littlelemon/internal/adapters/out/credentials"
	"littlelemon/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, credentials.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as {message}. Internal errors are logged and their detail
// is not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		message = http.StatusText(status)
	}
	return c.JSON(status, errorResponse{Message: message})
}

func badRequest(message string, cause error) error {
	return echo.NewHTTPError(http.StatusBadRequest, message).SetInternal(cause)
}
