package models

import "time"

// Interaction types.
const (
	InteractionNote  = "Note"
	InteractionVisit = "Visit"
)

type Interaction struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	LeadID           uint       `gorm:"not null;index" json:"lead_id"`
	Type             string     `gorm:"size:20;default:'Note'" json:"type"`
	Notes            string     `gorm:"type:text" json:"notes"`
	NextFollowupDate *time.Time `json:"next_followup_date"`
	CreatedBy        uint       `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
}
