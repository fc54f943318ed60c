package approval

import "context"

type Repository interface {
	// CreateBatch inserts all records or none (DB uniqueness backs the
	// one-level-per-husky invariant)
	CreateBatch(ctx context.Context, records []*Record) error

	// All records owned by one husky, any order
	ListByHuskyID(ctx context.Context, huskyID uint64) ([]Record, error)

	// Records of many huskies at once, for list views deriving rollups
	ListByHuskyIDs(ctx context.Context, huskyIDs []uint64) ([]Record, error)

	// All records assigned to one approver
	ListByApproverID(ctx context.Context, approverID uint64) ([]Record, error)

	ListAll(ctx context.Context) ([]Record, error)

	// Get by public approval_id
	GetByApprovalID(ctx context.Context, approvalID string) (*Record, error)

	Save(ctx context.Context, r *Record) error
}
