package mysql

import (
	"context"
	"errors"

	platformDomain "huskify-backend/internal/domain/platform"

	"gorm.io/gorm"
)

type PlatformRepository struct{ db *gorm.DB }

func NewPlatformRepository(db *gorm.DB) *PlatformRepository { return &PlatformRepository{db: db} }

// Lookups translate the gorm sentinel here because the platform resolver
// middleware consumes this repository directly, without a usecase in between.
func (r *PlatformRepository) GetByName(ctx context.Context, name string) (*platformDomain.Platform, error) {
	var out platformDomain.Platform
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, platformDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PlatformRepository) GetByID(ctx context.Context, id uint64) (*platformDomain.Platform, error) {
	var out platformDomain.Platform
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, platformDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *PlatformRepository) ListAll(ctx context.Context) ([]platformDomain.Platform, error) {
	var out []platformDomain.Platform
	res := r.db.WithContext(ctx).Order("name").Find(&out)
	return out, res.Error
}
