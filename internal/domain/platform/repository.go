package platform

import "context"

type Repository interface {
	GetByName(ctx context.Context, name string) (*Platform, error)
	GetByID(ctx context.Context, id uint64) (*Platform, error)
	ListAll(ctx context.Context) ([]Platform, error)
}
