package orgunit

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("org unit not found")

// Reference data the front end offers as dropdowns: job families, labs, and
// the feature teams under a lab.

type JobFamily struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JobFamily) TableName() string { return "job_families" }

type Lab struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Lab) TableName() string { return "labs" }

type FeatureTeam struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null" json:"name"`
	LabID     uint64    `gorm:"column:lab_id;not null;index" json:"lab_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FeatureTeam) TableName() string { return "feature_teams" }
