package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"clinic-scheduling-api/internal/auth"
)

const (
	subjectKey = "auth.subject"
	roleKey    = "auth.role"
)

// Subject returns the token subject set by Auth, "" when unauthenticated.
func Subject(c echo.Context) string {
	s, _ := c.Get(subjectKey).(string)
	return s
}

// Role returns the token role set by Auth, "" when unauthenticated.
func Role(c echo.Context) string {
	r, _ := c.Get(roleKey).(string)
	return r
}

// Auth parses the bearer token and stashes subject and role on the context.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// token from Authorization: Bearer <jwt>
			raw := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token")
			}

			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "bad token")
			}

			c.Set(subjectKey, claims.Subject)
			c.Set(roleKey, claims.Role)
			return next(c)
		}
	}
}

// RequireRole admits exactly the named role. There is no hierarchy: an admin
// token does not pass a doctor or patient gate.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != role {
				return echo.NewHTTPError(http.StatusForbidden, "required role: "+role)
			}
			return next(c)
		}
	}
}

// RequireAnyRole admits any of the named roles, still by exact match.
func RequireAnyRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			have := Role(c)
			for _, r := range roles {
				if have == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "required role: "+strings.Join(roles, " or "))
		}
	}
}
