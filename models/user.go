package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	Email            string    `gorm:"size:100;uniqueIndex" json:"email"`
	Phone            string    `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Role             string    `gorm:"size:20;default:'Sales Exec'" json:"role"`
	Password         string    `gorm:"size:100;not null" json:"-"`
	ActiveLeadsCount int       `gorm:"default:0" json:"active_leads_count"`
	Capacity         int       `gorm:"default:50" json:"capacity"`
	Avatar           string    `gorm:"size:10" json:"avatar"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}
