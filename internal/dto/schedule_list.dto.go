package dto

import "time"

type ScheduleListDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	StoreName    string    `json:"store_name"`
	StoreAddress string    `json:"store_address"`
	Day          int       `json:"day"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	IsValid      bool      `json:"is_valid"`
	CreatedAt    time.Time `json:"created_at"`
	Error        string    `json:"error,omitempty"`
}
