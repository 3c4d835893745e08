package models

import "time"

// Schedule is a staff member's declared working window for one weekday.
// At most one row per (user_id, day); submissions upsert in place.
type Schedule struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_user_day" json:"user_id"`

	Day int `gorm:"uniqueIndex:idx_user_day" json:"day"`

	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`

	// IsValid is advisory: a process outside the submission flow may
	// flip it off; reads surface it as a warning, never a block.
	IsValid bool `gorm:"default:true" json:"is_valid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
