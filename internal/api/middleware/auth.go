package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techstore/inventory-api/internal/api/metrics"
	"github.com/techstore/inventory-api/internal/core/service"
)

// Context keys under which the authenticated claim is stored.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// TokenVerifier decodes and validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth is the authentication half of the access guard. It extracts the
// bearer credential, verifies it, and injects the decoded claim into the
// request context. A missing credential and an invalid one are reported
// with distinct messages; expired and tampered tokens share one signal.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no credential provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid credential")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
