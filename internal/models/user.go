package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents application user.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	DisplayName  string    `gorm:"size:64" json:"displayName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `gorm:"index" json:"-"`
	LastLoginAt         *time.Time `json:"-"`
	LastLoginIP         string     `gorm:"size:64" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
