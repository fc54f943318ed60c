package huskymock

import (
	"context"

	domain "huskify-backend/internal/domain/husky"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateFn                func(ctx context.Context, h *domain.Husky) error
	SaveFn                  func(ctx context.Context, h *domain.Husky) error
	DeleteFn                func(ctx context.Context, h *domain.Husky) error
	GetByHuskyIDFn          func(ctx context.Context, huskyID string) (*domain.Husky, error)
	GetByHuskyIDForUpdateFn func(ctx context.Context, huskyID string) (*domain.Husky, error)
	ListFn                  func(ctx context.Context, f domain.ListFilter) ([]domain.Husky, int64, error)
	ListByPlatformIDFn      func(ctx context.Context, platformID uint64) ([]domain.Husky, error)
	CountByPlatformIDFn     func(ctx context.Context, platformID uint64) (int64, error)
	CountByJobFamilyFn      func(ctx context.Context, platformID uint64) (map[string]int64, error)
}

func (m *Repo) Create(ctx context.Context, h *domain.Husky) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, h)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, h *domain.Husky) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, h)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, h *domain.Husky) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, h)
	}
	return nil
}

func (m *Repo) GetByHuskyID(ctx context.Context, huskyID string) (*domain.Husky, error) {
	if m.GetByHuskyIDFn != nil {
		return m.GetByHuskyIDFn(ctx, huskyID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByHuskyIDForUpdate(ctx context.Context, huskyID string) (*domain.Husky, error) {
	if m.GetByHuskyIDForUpdateFn != nil {
		return m.GetByHuskyIDForUpdateFn(ctx, huskyID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Husky, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) ListByPlatformID(ctx context.Context, platformID uint64) ([]domain.Husky, error) {
	if m.ListByPlatformIDFn != nil {
		return m.ListByPlatformIDFn(ctx, platformID)
	}
	return nil, nil
}

func (m *Repo) CountByPlatformID(ctx context.Context, platformID uint64) (int64, error) {
	if m.CountByPlatformIDFn != nil {
		return m.CountByPlatformIDFn(ctx, platformID)
	}
	return 0, nil
}

func (m *Repo) CountByJobFamily(ctx context.Context, platformID uint64) (map[string]int64, error) {
	if m.CountByJobFamilyFn != nil {
		return m.CountByJobFamilyFn(ctx, platformID)
	}
	return nil, nil
}
