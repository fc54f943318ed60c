package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dashboardUC "huskify-backend/internal/usecase/dashboard"
)

type DashboardHandler struct {
	uc *dashboardUC.Usecase
}

func NewDashboardHandler(uc *dashboardUC.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Each widget gets its own route; all of them come off the same cached
// aggregate so a dashboard render costs at most one recompute.

func (h *DashboardHandler) stats(c echo.Context) (*dashboardUC.StatsDTO, error) {
	return h.uc.Stats(c.Request().Context(), actingPlatformID(c))
}

func (h *DashboardHandler) TotalHusky(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"data": s.TotalHusky})
}

func (h *DashboardHandler) PendingApproval(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"data": s.PendingApproval})
}

func (h *DashboardHandler) Approved(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"data": s.Approved})
}

func (h *DashboardHandler) Rejected(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"data": s.Rejected})
}

func (h *DashboardHandler) RequestsByDepartment(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": s.RequestsByDepartment})
}

func (h *DashboardHandler) RequestStatusCounts(c echo.Context) error {
	s, err := h.stats(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": s.RequestStatusCounts})
}
