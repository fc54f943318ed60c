package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	userUC "huskify-backend/internal/usecase/user"
)

// Context keys populated by the middleware below. Handlers read these
// instead of re-parsing headers.
const (
	CtxUserID     = "userID"
	CtxRoleID     = "roleID"
	CtxPlatformID = "platformID"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser func(raw string) (*userUC.Claims, error)

// BearerAuth rejects requests without a valid Authorization bearer token and
// stores the session's user, role and platform ids on the echo context.
func BearerAuth(parse TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			token, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization must be a bearer token"})
			}

			claims, err := parse(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoleID, claims.RoleID)
			c.Set(CtxPlatformID, claims.PlatformID)
			return next(c)
		}
	}
}
