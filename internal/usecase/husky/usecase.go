package husky

import (
	"context"
	"errors"
	"strings"

	domainApproval "huskify-backend/internal/domain/approval"
	domainHusky "huskify-backend/internal/domain/husky"
	"huskify-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo         domainHusky.Repository
	approvalRepo domainApproval.Repository
}

func NewUsecase(r domainHusky.Repository, approvals domainApproval.Repository) *Usecase {
	return &Usecase{repo: r, approvalRepo: approvals}
}

func (u *Usecase) Create(ctx context.Context, in CreateHuskyInput) (*HuskyDTO, error) {
	if strings.TrimSpace(in.Title) == "" || in.PlatformID == 0 || in.CreatedByUserID == 0 {
		return nil, domainHusky.ErrInvalidInput
	}
	if in.Priority == 0 {
		in.Priority = domainHusky.PriorityMedium
	}

	h := &domainHusky.Husky{
		HuskyID:             id.NewID32(),
		Title:               in.Title,
		JDParagraph1:        in.JDParagraph1,
		JDParagraph2:        in.JDParagraph2,
		JDParagraph3:        in.JDParagraph3,
		ExperienceLevel:     in.ExperienceLevel,
		Grade:               in.Grade,
		Priority:            in.Priority,
		JobFamilyID:         in.JobFamilyID,
		LabID:               in.LabID,
		FeatureTeamID:       in.FeatureTeamID,
		BusinessDescription: in.BusinessDescription,
		PlatformID:          in.PlatformID,
		CreatedByUserID:     in.CreatedByUserID,
	}
	if err := u.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	// freshly created, no approvals yet: rollup is Pending by definition
	dto := toHuskyDTO(h, nil)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, huskyID string) (*HuskyDTO, error) {
	h, err := u.repo.GetByHuskyID(ctx, huskyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainHusky.ErrNotFound
		}
		return nil, err
	}
	records, err := u.approvalRepo.ListByHuskyID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	dto := toHuskyDTO(h, records)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	huskies, total, err := u.repo.List(ctx, domainHusky.ListFilter{
		PlatformID:      in.PlatformID,
		Search:          in.Search,
		JobFamilyID:     in.JobFamilyID,
		CreatedByUserID: in.CreatedByUserID,
		Page:            in.Page,
		PageSize:        in.PageSize,
	})
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

	data := make([]HuskyDTO, len(huskies))
	for i := range huskies {
		data[i] = toHuskyDTO(&huskies[i], byHusky[huskies[i].ID])
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = 20
	}
	return &ListOutput{Data: data, Total: total, Page: page, PageSize: size}, nil
}

func (u *Usecase) Update(ctx context.Context, huskyID string, in UpdateHuskyInput) (*HuskyDTO, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domainHusky.ErrInvalidInput
	}
	h, err := u.repo.GetByHuskyID(ctx, huskyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainHusky.ErrNotFound
		}
		return nil, err
	}

	h.Title = in.Title
	h.JDParagraph1 = in.JDParagraph1
	h.JDParagraph2 = in.JDParagraph2
	h.JDParagraph3 = in.JDParagraph3
	h.ExperienceLevel = in.ExperienceLevel
	h.Grade = in.Grade
	if in.Priority != 0 {
		h.Priority = in.Priority
	}
	if in.JobFamilyID != 0 {
		h.JobFamilyID = in.JobFamilyID
	}
	if in.LabID != 0 {
		h.LabID = in.LabID
	}
	if in.FeatureTeamID != 0 {
		h.FeatureTeamID = in.FeatureTeamID
	}
	h.BusinessDescription = in.BusinessDescription

	if err := u.repo.Save(ctx, h); err != nil {
		return nil, err
	}
	records, err := u.approvalRepo.ListByHuskyID(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	dto := toHuskyDTO(h, records)
	return &dto, nil
}

func (u *Usecase) Delete(ctx context.Context, huskyID string) error {
	h, err := u.repo.GetByHuskyID(ctx, huskyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainHusky.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, h)
}

func toHuskyDTO(h *domainHusky.Husky, records []domainApproval.Record) HuskyDTO {
	return HuskyDTO{
		HuskyID:             h.HuskyID,
		Title:               h.Title,
		JDParagraph1:        h.JDParagraph1,
		JDParagraph2:        h.JDParagraph2,
		JDParagraph3:        h.JDParagraph3,
		ExperienceLevel:     h.ExperienceLevel,
		Grade:               h.Grade,
		Priority:            h.Priority,
		JobFamilyID:         h.JobFamilyID,
		LabID:               h.LabID,
		FeatureTeamID:       h.FeatureTeamID,
		BusinessDescription: h.BusinessDescription,
		PlatformID:          h.PlatformID,
		CreatedByUserID:     h.CreatedByUserID,
		Status:              domainApproval.RollupStatus(records),
		CreatedAt:           h.CreatedAt,
		UpdatedAt:           h.UpdatedAt,
	}
}
