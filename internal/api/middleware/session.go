package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// Session resolves the bearer session token against the session manager
// and injects the restored identity into context. Restoration fails open:
// a missing or unresolvable token is a plain 401, never a 500.
func Session(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess := sessions.Restore(c.Request().Context(), parts[1])
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set("session", sess)
			c.Set("user_id", sess.User.ID)
			c.Set("email", sess.User.Email)
			c.Set("name", sess.User.Name)
			c.Set("role", sess.User.Role)

			return next(c)
		}
	}
}
