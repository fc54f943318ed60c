package husky

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("husky request not found")
	ErrInvalidInput = errors.New("invalid husky request input")
)

// Priority of a husky request; higher means more urgent.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Husky is a staffing/headcount request routed through approval. Its overall
// status is always derived from its approval records, never stored here.
type Husky struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	HuskyID             string         `gorm:"column:husky_id;type:char(32);uniqueIndex:ux_huskies_husky_id_active" json:"husky_id"`
	Title               string         `gorm:"column:title;size:255;not null" json:"title"`
	JDParagraph1        string         `gorm:"column:jd_p1;type:text" json:"jd_p1"`
	JDParagraph2        string         `gorm:"column:jd_p2;type:text" json:"jd_p2"`
	JDParagraph3        string         `gorm:"column:jd_p3;type:text" json:"jd_p3"`
	ExperienceLevel     string         `gorm:"column:experience_level;size:64" json:"experience_level"`
	Grade               string         `gorm:"column:grade;size:32" json:"grade"`
	Priority            Priority       `gorm:"column:priority;not null;default:2" json:"priority"`
	JobFamilyID         uint64         `gorm:"column:job_family_id;index" json:"job_family_id"`
	LabID               uint64         `gorm:"column:lab_id" json:"lab_id"`
	FeatureTeamID       uint64         `gorm:"column:feature_team_id" json:"feature_team_id"`
	BusinessDescription string         `gorm:"column:business_description;type:text" json:"business_description"`
	PlatformID          uint64         `gorm:"column:platform_id;not null;index:idx_huskies_platform_active" json:"platform_id"`
	CreatedByUserID     uint64         `gorm:"column:created_by_user_id;index" json:"created_by_user_id"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Husky) TableName() string { return "huskies" }
