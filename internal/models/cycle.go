package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cycle is a recurring spending/income period (e.g. a monthly budget cycle).
type Cycle struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`
	UserID    string      `gorm:"index;size:36;not null" json:"userId"`
	Label     string      `gorm:"size:64;not null" json:"label"`
	Duration  int         `gorm:"not null" json:"duration"`
	IsActive  bool        `gorm:"not null;default:false" json:"isActive"`
	Items     []CycleItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (c *Cycle) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Cycle) Owner() string { return c.UserID }

// CycleItem is a single line item inside a cycle.
type CycleItem struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CycleID   string    `gorm:"index;size:36;not null" json:"cycleId"`
	Label     string    `gorm:"size:64;not null" json:"label"`
	Amount    int64     `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *CycleItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
