package mysql

import (
	"context"

	huskyDomain "huskify-backend/internal/domain/husky"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HuskyRepository struct{ db *gorm.DB }

func NewHuskyRepository(db *gorm.DB) *HuskyRepository { return &HuskyRepository{db: db} }

func (r *HuskyRepository) Create(ctx context.Context, h *huskyDomain.Husky) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HuskyRepository) Save(ctx context.Context, h *huskyDomain.Husky) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HuskyRepository) Delete(ctx context.Context, h *huskyDomain.Husky) error {
	return r.db.WithContext(ctx).Delete(h).Error
}

func (r *HuskyRepository) GetByHuskyID(ctx context.Context, huskyID string) (*huskyDomain.Husky, error) {
	var out huskyDomain.Husky
	res := r.db.WithContext(ctx).Where("husky_id = ?", huskyID).First(&out)
	return &out, res.Error
}

func (r *HuskyRepository) GetByHuskyIDForUpdate(ctx context.Context, huskyID string) (*huskyDomain.Husky, error) {
	var out huskyDomain.Husky
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("husky_id = ?", huskyID).
		First(&out)
	return &out, res.Error
}

func (r *HuskyRepository) List(ctx context.Context, f huskyDomain.ListFilter) ([]huskyDomain.Husky, int64, error) {
	q := r.db.WithContext(ctx).Model(&huskyDomain.Husky{}).
		Where("platform_id = ?", f.PlatformID)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR business_description LIKE ?", like, like)
	}
	if f.JobFamilyID != 0 {
		q = q.Where("job_family_id = ?", f.JobFamilyID)
	}
	if f.CreatedByUserID != 0 {
		q = q.Where("created_by_user_id = ?", f.CreatedByUserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	size := f.PageSize
	if size < 1 {
		size = 20
	}

	var out []huskyDomain.Husky
	res := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&out)
	return out, total, res.Error
}

func (r *HuskyRepository) ListByPlatformID(ctx context.Context, platformID uint64) ([]huskyDomain.Husky, error) {
	var out []huskyDomain.Husky
	res := r.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Find(&out)
	return out, res.Error
}

func (r *HuskyRepository) CountByPlatformID(ctx context.Context, platformID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&huskyDomain.Husky{}).
		Where("platform_id = ?", platformID).
		Count(&n)
	return n, res.Error
}

func (r *HuskyRepository) CountByJobFamily(ctx context.Context, platformID uint64) (map[string]int64, error) {
	type row struct {
		Name  string
		Count int64
	}
	var rows []row
	res := r.db.WithContext(ctx).Model(&huskyDomain.Husky{}).
		Select("job_families.name AS name, COUNT(huskies.id) AS count").
		Joins("JOIN job_families ON job_families.id = huskies.job_family_id").
		Where("huskies.platform_id = ? AND huskies.deleted_at IS NULL", platformID).
		Group("job_families.name").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Count
	}
	return out, nil
}
