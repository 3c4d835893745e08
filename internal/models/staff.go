package models

import "time"

type Staff struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	StoreID uint  `json:"store_id"`
	Store   Store `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"store"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	Image        string `gorm:"size:255" json:"image"`
	Role         string `gorm:"size:20;default:'staff'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staff" }
