package models

import "time"

// OpeningHour is the store's operating window for one weekday.
// One row per (store_id, day); times are "HH:MM:SS" clock strings.
type OpeningHour struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	StoreID uint `gorm:"uniqueIndex:idx_store_day" json:"store_id"`

	Day int `gorm:"uniqueIndex:idx_store_day" json:"day"`

	OpeningTime string `gorm:"size:8;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:8;not null" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
