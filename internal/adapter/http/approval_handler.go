package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainApproval "huskify-backend/internal/domain/approval"
	approvalUC "huskify-backend/internal/usecase/approval"
)

type ApprovalHandler struct {
	uc *approvalUC.Usecase
}

func NewApprovalHandler(uc *approvalUC.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type approvalEntryReq struct {
	// Left without a required tag: entries missing an approver must reach
	// the batch validator so the incomplete-entry rule reports them.
	ApproverID uint64 `json:"approver_id"`
	Level      int    `json:"level" validate:"required,gte=1,lte=5"`
}

type createBatchReq struct {
	HuskyID   string             `json:"husky_id"  validate:"required,hex32"`
	// Cap and emptiness are batch rules owned by the domain validator, so
	// the slice itself has no size tags here.
	Approvals []approvalEntryReq `json:"approvals" validate:"dive"`
}

// CreateBatch attaches a set of approval entries to one husky in a single
// transaction. All entries land or none do.
func (h *ApprovalHandler) CreateBatch(c echo.Context) error {
	var req createBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := approvalUC.CreateBatchInput{HuskyID: req.HuskyID}
	for _, e := range req.Approvals {
		in.Candidates = append(in.Candidates, approvalUC.CandidateInput{
			ApproverID: e.ApproverID,
			Level:      e.Level,
		})
	}

	dtos, err := h.uc.CreateBatch(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": dtos})
}

type decideReq struct {
	// Canonical "Approved"/"Rejected", or the legacy codes "1"/"-1".
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// Decide applies one approver's verdict to a pending record.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	approvalID := c.Param("approval_id")
	if !reHex32.MatchString(approvalID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid approval_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	status, err := domainApproval.ParseStatus(req.Status)
	if err != nil {
		return writeDomainError(c, err)
	}

	dto, err := h.uc.Decide(c.Request().Context(), approvalUC.DecideInput{
		ApprovalID:   approvalID,
		ActingUserID: actingUserID(c),
		Status:       status,
		Reason:       req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Workflow returns the derived progress view for one husky.
func (h *ApprovalHandler) Workflow(c echo.Context) error {
	huskyID := c.Param("husky_id")
	if !reHex32.MatchString(huskyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid husky_id path param"})
	}
	dto, err := h.uc.WorkflowForHusky(c.Request().Context(), huskyID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListByUser returns every record waiting on (or decided by) one approver.
func (h *ApprovalHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id path param"})
	}
	dtos, err := h.uc.ListByApprover(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": dtos})
}

func (h *ApprovalHandler) ListAll(c echo.Context) error {
	dtos, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": dtos})
}
