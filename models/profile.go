package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a customer or lead record. ProfileType is a free-form
// category tag ("customer", "lead", ...), not a closed enum.
type Profile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProfileType string         `gorm:"size:32;index;not null" json:"profile_type"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Email       string         `gorm:"size:255" json:"email"`
	CreatedAt   time.Time      `json:"created_at"`
	Images      []ProfileImage `json:"images,omitempty"`
}

// BeforeCreate hook ensures the creation timestamp is server-assigned.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return nil
}
