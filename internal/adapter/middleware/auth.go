package middleware

import (
	"net/http"
	"strings"

	"warehouse-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Identity trusts the authentication collaborator in front of this
// service: it reads the forwarded identity headers and puts the
// Principal on the request context. No credential checks happen here.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := strings.TrimSpace(c.Request().Header.Get("X-Auth-User"))
			if name == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing X-Auth-User"})
			}
			role := strings.ToLower(strings.TrimSpace(c.Request().Header.Get("X-Auth-Role")))
			if role != workflow.RoleAdmin {
				role = workflow.RoleUser
			}
			c.Set(principalKey, workflow.Principal{Name: name, Role: role})
			return next(c)
		}
	}
}

// RequireAdmin gates admin-only routes; Identity must run first.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := CurrentPrincipal(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			if !p.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}
			return next(c)
		}
	}
}

func CurrentPrincipal(c echo.Context) (workflow.Principal, bool) {
	p, ok := c.Get(principalKey).(workflow.Principal)
	return p, ok
}
