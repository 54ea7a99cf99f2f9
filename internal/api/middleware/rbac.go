package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techstore/inventory-api/internal/api/metrics"
)

// forbiddenResponse reports the role mismatch for diagnosability.
type forbiddenResponse struct {
	Message  string   `json:"message"`
	Required []string `json:"required"`
	Actual   string   `json:"actual"`
}

// RequireRole is the authorization half of the access guard. It must run
// after Auth: an absent role means authentication was skipped or failed.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if _, ok := allowed[role]; !ok {
				metrics.TokenRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				return c.JSON(http.StatusForbidden, forbiddenResponse{
					Message:  "insufficient role",
					Required: allowedRoles,
					Actual:   role,
				})
			}
			return next(c)
		}
	}
}
