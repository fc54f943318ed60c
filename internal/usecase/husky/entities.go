package husky

import (
	"time"

	domainApproval "huskify-backend/internal/domain/approval"
	domainHusky "huskify-backend/internal/domain/husky"
)

type CreateHuskyInput struct {
	Title               string              `json:"title"`
	JDParagraph1        string              `json:"jd_p1"`
	JDParagraph2        string              `json:"jd_p2"`
	JDParagraph3        string              `json:"jd_p3"`
	ExperienceLevel     string              `json:"experience_level"`
	Grade               string              `json:"grade"`
	Priority            domainHusky.Priority `json:"priority"`
	JobFamilyID         uint64              `json:"job_family_id"`
	LabID               uint64              `json:"lab_id"`
	FeatureTeamID       uint64              `json:"feature_team_id"`
	BusinessDescription string              `json:"business_description"`

	// threaded in explicitly by the handler, never read from ambient state
	PlatformID      uint64 `json:"-"`
	CreatedByUserID uint64 `json:"-"`
}

// UpdateHuskyInput carries only the mutable fields; zero values mean "leave
// unchanged" except Title which is required on update.
type UpdateHuskyInput struct {
	Title               string              `json:"title"`
	JDParagraph1        string              `json:"jd_p1"`
	JDParagraph2        string              `json:"jd_p2"`
	JDParagraph3        string              `json:"jd_p3"`
	ExperienceLevel     string              `json:"experience_level"`
	Grade               string              `json:"grade"`
	Priority            domainHusky.Priority `json:"priority"`
	JobFamilyID         uint64              `json:"job_family_id"`
	LabID               uint64              `json:"lab_id"`
	FeatureTeamID       uint64              `json:"feature_team_id"`
	BusinessDescription string              `json:"business_description"`
}

type ListInput struct {
	PlatformID      uint64
	Search          string
	JobFamilyID     uint64
	CreatedByUserID uint64
	Page            int
	PageSize        int
}

type HuskyDTO struct {
	HuskyID             string                `json:"husky_id"`
	Title               string                `json:"title"`
	JDParagraph1        string                `json:"jd_p1,omitempty"`
	JDParagraph2        string                `json:"jd_p2,omitempty"`
	JDParagraph3        string                `json:"jd_p3,omitempty"`
	ExperienceLevel     string                `json:"experience_level,omitempty"`
	Grade               string                `json:"grade,omitempty"`
	Priority            domainHusky.Priority  `json:"priority"`
	JobFamilyID         uint64                `json:"job_family_id"`
	LabID               uint64                `json:"lab_id"`
	FeatureTeamID       uint64                `json:"feature_team_id"`
	BusinessDescription string                `json:"business_description,omitempty"`
	PlatformID          uint64                `json:"platform_id"`
	CreatedByUserID     uint64                `json:"created_by_user_id"`
	Status              domainApproval.Status `json:"status"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

type ListOutput struct {
	Data     []HuskyDTO `json:"data"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}

// DuplicateCheckInput is the subset of fields the similarity scorer inspects.
type DuplicateCheckInput struct {
	Title       string `json:"title"`
	Grade       string `json:"grade"`
	JobFamilyID uint64 `json:"job_family_id"`
	PlatformID  uint64 `json:"-"`
	// HuskyID of the request being edited, excluded from results
	ExcludeHuskyID string `json:"-"`
}

type DuplicateMatch struct {
	Husky HuskyDTO `json:"husky"`
	Score float64  `json:"score"`
}
