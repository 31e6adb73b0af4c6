package models

import "time"

type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:100" json:"location"`
	Type      string    `gorm:"size:100" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
