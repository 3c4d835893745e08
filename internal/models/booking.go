package models

import "time"

// Booking is a customer appointment assigned to a staff member.
// Rows are written by the customer-facing flow; this API only reads them.
type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `json:"user_id"`

	Day    string `gorm:"size:10" json:"day"`
	Time   string `gorm:"size:8" json:"time"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
