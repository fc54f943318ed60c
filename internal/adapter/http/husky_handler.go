package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	huskyUC "huskify-backend/internal/usecase/husky"
)

type HuskyHandler struct {
	uc *huskyUC.Usecase
}

func NewHuskyHandler(uc *huskyUC.Usecase) *HuskyHandler { return &HuskyHandler{uc: uc} }

func (h *HuskyHandler) Create(c echo.Context) error {
	var req huskyUC.CreateHuskyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	req.PlatformID = actingPlatformID(c)
	req.CreatedByUserID = actingUserID(c)

	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *HuskyHandler) List(c echo.Context) error {
	in := huskyUC.ListInput{
		PlatformID: actingPlatformID(c),
		Search:     c.QueryParam("search"),
	}
	if v := c.QueryParam("job_family_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid job_family_id"})
		}
		in.JobFamilyID = n
	}
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListByUser returns the requests created by one user, newest first.
func (h *HuskyHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id path param"})
	}

	in := huskyUC.ListInput{
		PlatformID:      actingPlatformID(c),
		CreatedByUserID: userID,
	}
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HuskyHandler) Get(c echo.Context) error {
	huskyID := c.Param("husky_id")
	if !reHex32.MatchString(huskyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid husky_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), huskyID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *HuskyHandler) Update(c echo.Context) error {
	huskyID := c.Param("husky_id")
	if !reHex32.MatchString(huskyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid husky_id path param"})
	}
	var req huskyUC.UpdateHuskyInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Update(c.Request().Context(), huskyID, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *HuskyHandler) Delete(c echo.Context) error {
	huskyID := c.Param("husky_id")
	if !reHex32.MatchString(huskyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid husky_id path param"})
	}
	if err := h.uc.Delete(c.Request().Context(), huskyID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type duplicateCheckReq struct {
	Title          string `json:"title"          validate:"required"`
	Grade          string `json:"grade"`
	JobFamilyID    uint64 `json:"job_family_id"`
	ExcludeHuskyID string `json:"exclude_husky_id"`
}

// DuplicateCheck scores the draft against the platform's existing requests
// so the front end can warn before submit.
func (h *HuskyHandler) DuplicateCheck(c echo.Context) error {
	var req duplicateCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	matches, err := h.uc.CheckDuplicates(c.Request().Context(), huskyUC.DuplicateCheckInput{
		Title:          req.Title,
		Grade:          req.Grade,
		JobFamilyID:    req.JobFamilyID,
		PlatformID:     actingPlatformID(c),
		ExcludeHuskyID: req.ExcludeHuskyID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": matches})
}
