package mysql

import (
	"context"

	approvalDomain "huskify-backend/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

// CreateBatch inserts the whole batch in one statement; the composite unique
// index on (husky_id, level) rejects a level collision that raced past the
// validator.
func (r *ApprovalRepository) CreateBatch(ctx context.Context, records []*approvalDomain.Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(records).Error
}

func (r *ApprovalRepository) ListByHuskyID(ctx context.Context, huskyID uint64) ([]approvalDomain.Record, error) {
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("husky_id = ?", huskyID).
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) ListByHuskyIDs(ctx context.Context, huskyIDs []uint64) ([]approvalDomain.Record, error) {
	if len(huskyIDs) == 0 {
		return nil, nil
	}
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("husky_id IN ?", huskyIDs).
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) ListByApproverID(ctx context.Context, approverID uint64) ([]approvalDomain.Record, error) {
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("approver_id = ?", approverID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) ListAll(ctx context.Context) ([]approvalDomain.Record, error) {
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).Order("husky_id, level").Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) GetByApprovalID(ctx context.Context, approvalID string) (*approvalDomain.Record, error) {
	var out approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("approval_id = ?", approvalID).
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) Save(ctx context.Context, rec *approvalDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}
