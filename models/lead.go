package models

import "time"

// Lead pipeline statuses.
const (
	LeadNew         = "NEW"
	LeadInProgress  = "IN_PROGRESS"
	LeadSiteVisit   = "SITE_VISIT"
	LeadNegotiation = "NEGOTIATION"
	LeadBooked      = "BOOKED"
	LeadLost        = "LOST"
)

type Lead struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Phone        string     `gorm:"size:15;not null;index" json:"phone"`
	Email        string     `gorm:"size:100" json:"email"`
	Budget       string     `gorm:"size:50" json:"budget"`
	Source       string     `gorm:"size:20;default:'Walk-in'" json:"source"`
	Status       string     `gorm:"size:20;default:'NEW'" json:"status"`
	OwnerID      *uint      `json:"owner_id"`
	ProjectID    *uint      `json:"project_id"`
	NextFollowup *time.Time `json:"next_followup"`
	LastContact  *time.Time `json:"last_contact"`
	CreatedAt    time.Time  `json:"created_at"`
}
