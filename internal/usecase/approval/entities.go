package approval

import (
	"time"

	domainApproval "huskify-backend/internal/domain/approval"
)

type CandidateInput struct {
	ApproverID uint64 `json:"approver_id"`
	Level      int    `json:"level"`
}

type CreateBatchInput struct {
	HuskyID    string
	Candidates []CandidateInput
}

type DecideInput struct {
	ApprovalID   string
	ActingUserID uint64
	Status       domainApproval.Status
	Reason       string
}

type RecordDTO struct {
	ApprovalID string                `json:"approval_id"`
	HuskyID    string                `json:"husky_id"`
	ApproverID uint64                `json:"approver_id"`
	Level      int                   `json:"level"`
	Status     domainApproval.Status `json:"status"`
	Reason     string                `json:"reason,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// WorkflowDTO is the display-ready view of one husky's approval workflow:
// the records plus everything derived from them.
type WorkflowDTO struct {
	HuskyID      string                `json:"husky_id"`
	Status       domainApproval.Status `json:"status"`
	Completed    int                   `json:"completed"`
	Total        int                   `json:"total"`
	CurrentLevel int                   `json:"current_level"`
	Steps        []domainApproval.Step `json:"steps"`
	Records      []RecordDTO           `json:"records"`
}
