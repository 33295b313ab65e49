package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents income/expense category.
type Category struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"index;size:36;not null" json:"userId"`
	Name            string    `gorm:"size:64;not null" json:"name"`
	Unicode         string    `gorm:"size:32;not null" json:"unicode"`
	TransactionType string    `gorm:"size:16;index;not null" json:"transactionType"` // income / expense
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) Owner() string { return c.UserID }
