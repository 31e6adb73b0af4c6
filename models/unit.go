package models

import "time"

// Unit inventory statuses. A unit is Blocked while its booking is pending
// and Booked once that booking is confirmed.
const (
	UnitAvailable = "Available"
	UnitBlocked   = "Blocked"
	UnitBooked    = "Booked"
)

type Unit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null" json:"project_id"`
	Tower       string    `gorm:"size:50" json:"tower"`
	Floor       int       `json:"floor"`
	Number      string    `gorm:"size:20;not null" json:"number"`
	Status      string    `gorm:"size:20;default:'Available'" json:"status"`
	CarpetArea  float64   `json:"carpet_area"`
	RatePerSqft float64   `json:"rate_per_sqft"`
	BookingID   *uint     `json:"booking_id"`
	CreatedAt   time.Time `json:"created_at"`
}
