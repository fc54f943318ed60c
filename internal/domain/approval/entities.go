package approval

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("approval not found")
	ErrInvalidTransition = errors.New("approval already decided")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrReasonTooLong     = errors.New("rejection reason exceeds 500 characters")
	ErrUnknownStatus     = errors.New("unknown approval status")
)

// Status of a single approval record. String form is the wire contract;
// legacy numeric codes are accepted on input only (see ParseStatus).
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

const (
	// MaxApprovals is the hard cap on approval records per husky request,
	// counting existing and newly proposed together.
	MaxApprovals = 5

	MinLevel = 1
	MaxLevel = 5

	// MaxReasonLen caps the rejection reason by policy.
	MaxReasonLen = 500
)

// ParseStatus normalizes a transported status value. Besides the canonical
// strings it accepts the legacy numeric codes some old read paths still emit:
// 1 = Approved, -1 = Rejected, 0 = Pending.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case string(StatusPending), "0":
		return StatusPending, nil
	case string(StatusApproved), "1":
		return StatusApproved, nil
	case string(StatusRejected), "-1":
		return StatusRejected, nil
	}
	return "", ErrUnknownStatus
}

// Table: husky_approvals
type Record struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ApprovalID string `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_husky_approvals_approval_id"`
	// FK to huskies.id (numeric); level is unique per husky
	HuskyID    uint64    `gorm:"column:husky_id;not null;index;uniqueIndex:ux_husky_approvals_husky_level,priority:1"`
	ApproverID uint64    `gorm:"column:approver_id;not null;index"`
	Level      int       `gorm:"column:level;not null;uniqueIndex:ux_husky_approvals_husky_level,priority:2"`
	Status     Status    `gorm:"column:status;type:enum('Pending','Approved','Rejected');default:'Pending'"`
	Reason     string    `gorm:"column:reason;type:varchar(500)"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Record) TableName() string { return "husky_approvals" }

// Candidate is a not-yet-submitted approval entry composed by a requester.
// A zero ApproverID means the entry is still unset.
type Candidate struct {
	ApproverID uint64
	Level      int
}

// Decide applies the one permitted transition, Pending -> Approved|Rejected.
// Both outcomes are terminal; a second decision on the same record is a
// caller defect (stale data) and fails with ErrInvalidTransition.
func (r *Record) Decide(to Status, reason string) error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	switch to {
	case StatusApproved:
		r.Status = StatusApproved
	case StatusRejected:
		if reason == "" {
			return ErrReasonRequired
		}
		if len(reason) > MaxReasonLen {
			return ErrReasonTooLong
		}
		r.Status = StatusRejected
		r.Reason = reason
	default:
		return ErrUnknownStatus
	}
	return nil
}
