package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/core/domain"
)

// RBAC lets the request through when the caller holds at least one of
// allowedRoles. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get("roles").([]string)
			if !domain.HasAnyRole(roles, allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
