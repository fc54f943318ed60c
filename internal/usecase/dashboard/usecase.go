package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	domainApproval "huskify-backend/internal/domain/approval"
	domainHusky "huskify-backend/internal/domain/husky"

	"github.com/redis/go-redis/v9"
)

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StatsDTO aggregates the dashboard counters for one platform. The three
// status counters are rollups derived per husky, not per approval record.
type StatsDTO struct {
	TotalHusky           int64             `json:"totalHusky"`
	PendingApproval      int64             `json:"pendingApproval"`
	Approved             int64             `json:"approved"`
	Rejected             int64             `json:"rejected"`
	RequestsByDepartment []DepartmentCount `json:"requestsByDepartment"`
	RequestStatusCounts  []StatusCount     `json:"requestStatusCounts"`
}

type Usecase struct {
	huskyRepo    domainHusky.Repository
	approvalRepo domainApproval.Repository
	rdb          *redis.Client
	cacheTTL     time.Duration
}

// NewUsecase: rdb may be nil, in which case every call recomputes.
func NewUsecase(huskies domainHusky.Repository, approvals domainApproval.Repository, rdb *redis.Client, cacheTTL time.Duration) *Usecase {
	return &Usecase{huskyRepo: huskies, approvalRepo: approvals, rdb: rdb, cacheTTL: cacheTTL}
}

func cacheKey(platformID uint64) string {
	return fmt.Sprintf("dashboard:stats:%d", platformID)
}

func (u *Usecase) Stats(ctx context.Context, platformID uint64) (*StatsDTO, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, cacheKey(platformID)).Bytes(); err == nil {
			var cached StatsDTO
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := u.compute(ctx, platformID)
	if err != nil {
		return nil, err
	}

	if u.rdb != nil {
		payload, _ := json.Marshal(stats)
		if err := u.rdb.Set(ctx, cacheKey(platformID), payload, u.cacheTTL).Err(); err != nil {
			// stale-cache misses are fine; the stats were computed
			log.Printf("dashboard: cache write failed: %v", err)
		}
	}
	return stats, nil
}

func (u *Usecase) compute(ctx context.Context, platformID uint64) (*StatsDTO, error) {
	huskies, err := u.huskyRepo.ListByPlatformID(ctx, platformID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, len(huskies))
	for i := range huskies {
		ids[i] = huskies[i].ID
	}
	records, err := u.approvalRepo.ListByHuskyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byHusky := make(map[uint64][]domainApproval.Record, len(huskies))
	for _, r := range records {
		byHusky[r.HuskyID] = append(byHusky[r.HuskyID], r)
	}

	stats := &StatsDTO{TotalHusky: int64(len(huskies))}
	for i := range huskies {
		switch domainApproval.RollupStatus(byHusky[huskies[i].ID]) {
		case domainApproval.StatusApproved:
			stats.Approved++
		case domainApproval.StatusRejected:
			stats.Rejected++
		default:
			stats.PendingApproval++
		}
	}

	stats.RequestStatusCounts = []StatusCount{
		{Status: string(domainApproval.StatusPending), Count: stats.PendingApproval},
		{Status: string(domainApproval.StatusApproved), Count: stats.Approved},
		{Status: string(domainApproval.StatusRejected), Count: stats.Rejected},
	}

	byFamily, err := u.huskyRepo.CountByJobFamily(ctx, platformID)
	if err != nil {
		return nil, err
	}
	for name, n := range byFamily {
		stats.RequestsByDepartment = append(stats.RequestsByDepartment, DepartmentCount{Department: name, Count: n})
	}
	sort.Slice(stats.RequestsByDepartment, func(i, j int) bool {
		return stats.RequestsByDepartment[i].Department < stats.RequestsByDepartment[j].Department
	})

	return stats, nil
}
