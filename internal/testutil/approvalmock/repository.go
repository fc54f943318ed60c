package approvalmock

import (
	"context"

	domain "huskify-backend/internal/domain/approval"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateBatchFn      func(ctx context.Context, records []*domain.Record) error
	ListByHuskyIDFn    func(ctx context.Context, huskyID uint64) ([]domain.Record, error)
	ListByHuskyIDsFn   func(ctx context.Context, huskyIDs []uint64) ([]domain.Record, error)
	ListByApproverIDFn func(ctx context.Context, approverID uint64) ([]domain.Record, error)
	ListAllFn          func(ctx context.Context) ([]domain.Record, error)
	GetByApprovalIDFn  func(ctx context.Context, approvalID string) (*domain.Record, error)
	SaveFn             func(ctx context.Context, r *domain.Record) error
}

func (m *Repo) CreateBatch(ctx context.Context, records []*domain.Record) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, records)
	}
	return nil
}

func (m *Repo) ListByHuskyID(ctx context.Context, huskyID uint64) ([]domain.Record, error) {
	if m.ListByHuskyIDFn != nil {
		return m.ListByHuskyIDFn(ctx, huskyID)
	}
	return nil, nil
}

func (m *Repo) ListByHuskyIDs(ctx context.Context, huskyIDs []uint64) ([]domain.Record, error) {
	if m.ListByHuskyIDsFn != nil {
		return m.ListByHuskyIDsFn(ctx, huskyIDs)
	}
	return nil, nil
}

func (m *Repo) ListByApproverID(ctx context.Context, approverID uint64) ([]domain.Record, error) {
	if m.ListByApproverIDFn != nil {
		return m.ListByApproverIDFn(ctx, approverID)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Record, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByApprovalID(ctx context.Context, approvalID string) (*domain.Record, error) {
	if m.GetByApprovalIDFn != nil {
		return m.GetByApprovalIDFn(ctx, approvalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
