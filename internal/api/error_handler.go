package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/service"
)

// errorResponse is the canonical error envelope for all API errors. Detail
// carries internal error text and is only populated when the handler was
// built with exposeDetail (non-production hardening flag).
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, exposeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, detail := resolveError(err, log, c)
		resp := errorResponse{Message: msg}
		if exposeDetail {
			resp.Detail = detail
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg, detail string) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "email already registered", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	case errors.Is(err, domain.ErrIncorrectPassword):
		return http.StatusBadRequest, "incorrect password", ""
	case errors.Is(err, domain.ErrLaptopNotFound):
		return http.StatusNotFound, "laptop not found", ""
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid credential", ""
	case errors.Is(err, domain.ErrIncompleteRegistration):
		// Blunt failure path: structurally incomplete input is not reported
		// field by field.
		return http.StatusInternalServerError, "registration failed", err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", err.Error()
}
