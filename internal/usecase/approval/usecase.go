package approval

import (
	"context"
	"errors"

	domainApproval "huskify-backend/internal/domain/approval"
	domainHusky "huskify-backend/internal/domain/husky"
	"huskify-backend/internal/domain/uow"
	"huskify-backend/pkg/id"

	"gorm.io/gorm"
)

var (
	ErrNoUnitOfWork = errors.New("approval usecase misconfigured: no unit of work")
	// The acting user tried to decide a record assigned to someone else.
	ErrNotAssignedApprover = errors.New("acting user is not the assigned approver")
)

type Usecase struct {
	huskyRepo    domainHusky.Repository
	approvalRepo domainApproval.Repository
	uow          uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for tx flows.
func NewUsecase(huskies domainHusky.Repository, approvals domainApproval.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{huskyRepo: huskies, approvalRepo: approvals, uow: tx}
}

// CreateBatch attaches a batch of pending approval records to a husky. The
// husky row is locked for the duration of the tx so a concurrent batch cannot
// slip past the cap or reuse a level between validation and insert.
func (u *Usecase) CreateBatch(ctx context.Context, in CreateBatchInput) ([]RecordDTO, error) {
	if u.uow == nil {
		return nil, ErrNoUnitOfWork
	}

	candidates := make([]domainApproval.Candidate, len(in.Candidates))
	for i, c := range in.Candidates {
		candidates[i] = domainApproval.Candidate{ApproverID: c.ApproverID, Level: c.Level}
	}

	var out []RecordDTO
	err := u.uow.WithinHuskyTx(ctx, in.HuskyID, func(r uow.Repos, h *domainHusky.Husky) error {
		existing, err := r.Approvals.ListByHuskyID(ctx, h.ID)
		if err != nil {
			return err
		}
		if err := domainApproval.ValidateBatch(existing, candidates); err != nil {
			return err
		}

		records := make([]*domainApproval.Record, len(candidates))
		for i, c := range candidates {
			records[i] = &domainApproval.Record{
				ApprovalID: id.NewID32(),
				HuskyID:    h.ID,
				ApproverID: c.ApproverID,
				Level:      c.Level,
				Status:     domainApproval.StatusPending,
			}
		}
		if err := r.Approvals.CreateBatch(ctx, records); err != nil {
			return err
		}

		out = make([]RecordDTO, len(records))
		for i, rec := range records {
			out[i] = toRecordDTO(rec, h.HuskyID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainHusky.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Decide applies one approver's decision to a pending record. The terminal
// transition guard lives on the domain record; a decision on stale data
// surfaces as ErrInvalidTransition for the caller to refetch.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*RecordDTO, error) {
	if u.uow == nil {
		return nil, ErrNoUnitOfWork
	}

	var out *RecordDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rec, err := r.Approvals.GetByApprovalID(ctx, in.ApprovalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainApproval.ErrNotFound
			}
			return err
		}
		if in.ActingUserID != 0 && rec.ApproverID != in.ActingUserID {
			return ErrNotAssignedApprover
		}
		if err := rec.Decide(in.Status, in.Reason); err != nil {
			return err
		}
		if err := r.Approvals.Save(ctx, rec); err != nil {
			return err
		}
		dto := toRecordDTO(rec, "")
		out = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WorkflowForHusky loads one husky's records and derives the rollup view.
func (u *Usecase) WorkflowForHusky(ctx context.Context, huskyID string) (*WorkflowDTO, error) {
	h, err := u.huskyRepo.GetByHuskyID(ctx, huskyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainHusky.ErrNotFound
		}
		return nil, err
	}
	records, err := u.approvalRepo.ListByHuskyID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	return buildWorkflow(h.HuskyID, records), nil
}

// ListByApprover returns every record assigned to one approver.
func (u *Usecase) ListByApprover(ctx context.Context, approverID uint64) ([]RecordDTO, error) {
	records, err := u.approvalRepo.ListByApproverID(ctx, approverID)
	if err != nil {
		return nil, err
	}
	out := make([]RecordDTO, len(records))
	for i := range records {
		out[i] = toRecordDTO(&records[i], "")
	}
	return out, nil
}

// ListAll returns every approval record, ordered by husky and level.
func (u *Usecase) ListAll(ctx context.Context) ([]RecordDTO, error) {
	records, err := u.approvalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RecordDTO, len(records))
	for i := range records {
		out[i] = toRecordDTO(&records[i], "")
	}
	return out, nil
}

func buildWorkflow(publicHuskyID string, records []domainApproval.Record) *WorkflowDTO {
	completed, total := domainApproval.CompletionCount(records)
	ordered := domainApproval.OrderedProgress(records)
	dtos := make([]RecordDTO, len(ordered))
	for i := range ordered {
		dtos[i] = toRecordDTO(&ordered[i], publicHuskyID)
	}
	return &WorkflowDTO{
		HuskyID:      publicHuskyID,
		Status:       domainApproval.RollupStatus(records),
		Completed:    completed,
		Total:        total,
		CurrentLevel: domainApproval.CurrentLevel(records),
		Steps:        domainApproval.ProgressBarState(records),
		Records:      dtos,
	}
}

func toRecordDTO(r *domainApproval.Record, publicHuskyID string) RecordDTO {
	return RecordDTO{
		ApprovalID: r.ApprovalID,
		HuskyID:    publicHuskyID,
		ApproverID: r.ApproverID,
		Level:      r.Level,
		Status:     r.Status,
		Reason:     r.Reason,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
