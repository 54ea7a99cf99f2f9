package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techstore/inventory-api/internal/api/middleware"
	"github.com/techstore/inventory-api/internal/core/ports"
)

// ctxActor extracts the claim injected by the Auth middleware and performs a
// fast-fail check before any service call: both fields must be present,
// their presence proves the middleware ran.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return ports.Actor{ID: userID, Role: role}, nil
}
