package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"id"`
	Email        string         `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email_active" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Name         string         `gorm:"column:name;size:255;not null" json:"name"`
	EmpID        uint64         `gorm:"column:emp_id" json:"emp_id"`
	RoleID       uint64         `gorm:"column:role_id;not null;default:1" json:"role_id"`
	PlatformID   uint64         `gorm:"column:platform_id;not null;index" json:"platform_id"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
