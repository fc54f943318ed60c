package uow

import (
	"context"

	"huskify-backend/internal/domain/approval"
	"huskify-backend/internal/domain/husky"
)

type Repos struct {
	Huskies   husky.Repository
	Approvals approval.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the husky row first, then pass it in. Batch creation
	// uses this so two concurrent submissions cannot jointly exceed the cap.
	WithinHuskyTx(ctx context.Context, huskyID string, fn func(r Repos, h *husky.Husky) error) error
}
