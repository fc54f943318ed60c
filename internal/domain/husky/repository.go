package husky

import "context"

// ListFilter narrows and pages the platform-scoped listing.
type ListFilter struct {
	PlatformID      uint64
	Search          string
	JobFamilyID     uint64
	CreatedByUserID uint64
	Page            int
	PageSize        int
}

type Repository interface {
	Create(ctx context.Context, h *Husky) error
	Save(ctx context.Context, h *Husky) error
	Delete(ctx context.Context, h *Husky) error

	GetByHuskyID(ctx context.Context, huskyID string) (*Husky, error)
	// Same lookup with a row lock, for flows that mutate the approval set
	GetByHuskyIDForUpdate(ctx context.Context, huskyID string) (*Husky, error)

	List(ctx context.Context, f ListFilter) ([]Husky, int64, error)
	// All active huskies of one platform, for duplicate scoring
	ListByPlatformID(ctx context.Context, platformID uint64) ([]Husky, error)

	CountByPlatformID(ctx context.Context, platformID uint64) (int64, error)
	// Distribution of requests per job family name for the dashboard
	CountByJobFamily(ctx context.Context, platformID uint64) (map[string]int64, error)
}
