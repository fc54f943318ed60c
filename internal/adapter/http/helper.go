package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domainApproval "huskify-backend/internal/domain/approval"
	domainHusky "huskify-backend/internal/domain/husky"
	domainPlatform "huskify-backend/internal/domain/platform"
	domainUser "huskify-backend/internal/domain/user"
	approvalUC "huskify-backend/internal/usecase/approval"
)

// writeDomainError maps domain errors to HTTP codes. Batch validation errors
// come back as 422 with the exact rule that broke; anything unrecognized is a
// 500 with a generic message so internals never leak.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainHusky.ErrNotFound),
		errors.Is(err, domainApproval.ErrNotFound),
		errors.Is(err, domainUser.ErrNotFound),
		errors.Is(err, domainPlatform.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainUser.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, approvalUC.ErrNotAssignedApprover):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainApproval.ErrInvalidTransition),
		errors.Is(err, domainUser.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainApproval.ErrEmptyBatch),
		errors.Is(err, domainApproval.ErrReasonRequired),
		errors.Is(err, domainApproval.ErrReasonTooLong),
		errors.Is(err, domainApproval.ErrUnknownStatus),
		errors.Is(err, domainHusky.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	var (
		incomplete *domainApproval.IncompleteEntryError
		dupApr     *domainApproval.DuplicateApproverError
		dupLvl     *domainApproval.DuplicateLevelError
		conflict   *domainApproval.LevelConflictError
		capErr     *domainApproval.CapExceededError
	)
	if errors.As(err, &incomplete) || errors.As(err, &dupApr) ||
		errors.As(err, &dupLvl) || errors.As(err, &conflict) || errors.As(err, &capErr) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// actingUserID reads the authenticated user id set by the auth middleware.
// Zero when the route is unauthenticated.
func actingUserID(c echo.Context) uint64 {
	if v, ok := c.Get("userID").(uint64); ok {
		return v
	}
	return 0
}

func actingPlatformID(c echo.Context) uint64 {
	if v, ok := c.Get("platformID").(uint64); ok {
		return v
	}
	return 0
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
