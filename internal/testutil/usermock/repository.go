package usermock

import (
	"context"

	domain "huskify-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, u *domain.User) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn       func(ctx context.Context, email string) (*domain.User, error)
	ListByPlatformIDFn func(ctx context.Context, platformID uint64) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByPlatformID(ctx context.Context, platformID uint64) ([]domain.User, error) {
	if m.ListByPlatformIDFn != nil {
		return m.ListByPlatformIDFn(ctx, platformID)
	}
	return nil, nil
}
