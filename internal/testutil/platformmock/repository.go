package platformmock

import (
	"context"

	domain "huskify-backend/internal/domain/platform"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByNameFn func(ctx context.Context, name string) (*domain.Platform, error)
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Platform, error)
	ListAllFn   func(ctx context.Context) ([]domain.Platform, error)
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Platform, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Platform, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Platform, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
