package mysql

import (
	"context"

	"huskify-backend/internal/domain/husky"
	"huskify-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Huskies:   &HuskyRepository{db: tx},
			Approvals: &ApprovalRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinHuskyTx(ctx context.Context, huskyID string, fn func(r uow.Repos, h *husky.Husky) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Huskies:   &HuskyRepository{db: tx},
			Approvals: &ApprovalRepository{db: tx},
		}
		// lock the husky row up-front to prevent races on the approval set
		h, err := r.Huskies.GetByHuskyIDForUpdate(ctx, huskyID)
		if err != nil {
			return err
		}
		return fn(r, h)
	})
}
