package models

import "time"

// ProfileImage stores one base64 encoded image attached to a profile.
// DisplayOrder is assigned once at acceptance time and never renumbered, so
// the sequence may become sparse after deletions.
type ProfileImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"index;not null" json:"profile_id"`
	ImageData    string    `gorm:"type:longtext;not null" json:"image_data"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	ContentType  string    `gorm:"size:64" json:"content_type"`
	UploadedAt   time.Time `gorm:"index" json:"uploaded_at"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsPriority   bool      `gorm:"not null;default:false" json:"is_priority"`
}
