package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a coarse role gate at the route level. Office-scoped role
// checks happen in the service layer against memberships; this only rejects
// callers whose staff role can never perform the operation.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
