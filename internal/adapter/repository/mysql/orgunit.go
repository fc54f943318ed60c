package mysql

import (
	"context"

	"huskify-backend/internal/domain/orgunit"

	"gorm.io/gorm"
)

type OrgUnitRepository struct{ db *gorm.DB }

func NewOrgUnitRepository(db *gorm.DB) *OrgUnitRepository { return &OrgUnitRepository{db: db} }

func (r *OrgUnitRepository) ListJobFamilies(ctx context.Context) ([]orgunit.JobFamily, error) {
	var out []orgunit.JobFamily
	res := r.db.WithContext(ctx).Order("name").Find(&out)
	return out, res.Error
}

func (r *OrgUnitRepository) ListLabs(ctx context.Context) ([]orgunit.Lab, error) {
	var out []orgunit.Lab
	res := r.db.WithContext(ctx).Order("name").Find(&out)
	return out, res.Error
}

func (r *OrgUnitRepository) ListFeatureTeams(ctx context.Context) ([]orgunit.FeatureTeam, error) {
	var out []orgunit.FeatureTeam
	res := r.db.WithContext(ctx).Order("lab_id, name").Find(&out)
	return out, res.Error
}
