package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a single income or expense movement. TransactionType may be
// empty when CategoryID is set; the category then supplies the type.
type Transaction struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	UserID          string    `gorm:"index;size:36;not null" json:"userId"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	Description     string    `gorm:"size:255;not null" json:"description"`
	TransactionType string    `gorm:"size:16;index" json:"transactionType"` // income / expense
	CategoryID      *string   `gorm:"index;size:36" json:"categoryId"`
	Category        *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags            []Tag     `gorm:"many2many:transaction_tags;constraint:OnDelete:CASCADE" json:"tags"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t *Transaction) Owner() string { return t.UserID }
