package orgunit

import "context"

type Repository interface {
	ListJobFamilies(ctx context.Context) ([]JobFamily, error)
	ListLabs(ctx context.Context) ([]Lab, error)
	ListFeatureTeams(ctx context.Context) ([]FeatureTeam, error)
}
