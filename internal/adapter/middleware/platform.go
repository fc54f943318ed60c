package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domainPlatform "huskify-backend/internal/domain/platform"
)

// PlatformHeader names the platform a pre-login request acts on. After login
// the platform comes from the token claims instead.
const PlatformHeader = "X-Platform"

// ResolvePlatform turns the platform name header into a numeric id on the
// context. Used on registration, which happens before any token exists.
func ResolvePlatform(repo domainPlatform.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := strings.TrimSpace(c.Request().Header.Get(PlatformHeader))
			if name == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + PlatformHeader + " header"})
			}

			p, err := repo.GetByName(c.Request().Context(), name)
			if err != nil {
				if errors.Is(err, domainPlatform.ErrNotFound) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown platform " + name})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "platform lookup failed"})
			}

			c.Set(CtxPlatformID, p.ID)
			return next(c)
		}
	}
}
