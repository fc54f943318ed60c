package platform

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("platform not found")

// Platform is an organizational namespace selected before login. Resolution
// happens once at the HTTP boundary; everything below receives the numeric id
// explicitly.
type Platform struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Platform) TableName() string { return "platforms" }
