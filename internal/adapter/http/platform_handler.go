package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	domainOrgunit "huskify-backend/internal/domain/orgunit"
	domainPlatform "huskify-backend/internal/domain/platform"
)

// PlatformHandler serves the pre-login platform list plus the org-unit
// reference data used to populate form dropdowns. The platform list is
// guarded by a static API key instead of a session token because it is
// fetched before any user exists.
type PlatformHandler struct {
	platforms domainPlatform.Repository
	orgunits  domainOrgunit.Repository
	apiKey    string
}

func NewPlatformHandler(platforms domainPlatform.Repository, orgunits domainOrgunit.Repository, apiKey string) *PlatformHandler {
	return &PlatformHandler{platforms: platforms, orgunits: orgunits, apiKey: apiKey}
}

func (h *PlatformHandler) List(c echo.Context) error {
	key := c.Request().Header.Get("X-Api-Key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid api key"})
	}
	platforms, err := h.platforms.ListAll(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": platforms})
}

func (h *PlatformHandler) JobFamilies(c echo.Context) error {
	items, err := h.orgunits.ListJobFamilies(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *PlatformHandler) Labs(c echo.Context) error {
	items, err := h.orgunits.ListLabs(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *PlatformHandler) FeatureTeams(c echo.Context) error {
	items, err := h.orgunits.ListFeatureTeams(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}
