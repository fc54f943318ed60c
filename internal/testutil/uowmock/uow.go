package uowmock

import (
	"context"
	"errors"

	"huskify-backend/internal/domain/husky"
	"huskify-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinHuskyTxFn func(ctx context.Context, huskyID string, fn func(r uow.Repos, h *husky.Husky) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinHuskyTx(ctx context.Context, huskyID string, fn func(r uow.Repos, h *husky.Husky) error) error {
	if m.WithinHuskyTxFn != nil {
		return m.WithinHuskyTxFn(ctx, huskyID, fn)
	}
	return errUnimplemented
}
