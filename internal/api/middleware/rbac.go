package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handypro/connect-api/internal/core/domain"
)

// RBAC gates a route on the central capability table. It expects Auth
// to have run first; a missing identity fails closed with 401.
func RBAC(resource domain.Resource, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !domain.CanAccess(user, resource, action) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
