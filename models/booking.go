package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Booking statuses.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

// Charge is one line item on top of the base cost, e.g. parking or club
// membership. The order the client sends is preserved.
type Charge struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ChargeList stores the charges as a JSON text column so the same model
// works on postgres and the sqlite test driver.
type ChargeList []Charge

func (c ChargeList) Value() (driver.Value, error) {
	if c == nil {
		c = ChargeList{}
	}
	return json.Marshal(c)
}

func (c *ChargeList) Scan(value interface{}) error {
	if value == nil {
		*c = ChargeList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for charges", value)
	}
	return json.Unmarshal(data, c)
}

type Booking struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	LeadID      uint       `gorm:"not null" json:"lead_id"`
	ProjectID   uint       `gorm:"not null" json:"project_id"`
	UnitID      uint       `gorm:"not null" json:"unit_id"`
	UnitNumber  string     `gorm:"size:50;not null" json:"unit_number"`
	DealAmount  float64    `gorm:"not null" json:"deal_amount"`
	BaseCost    float64    `gorm:"not null" json:"base_cost"`
	Charges     ChargeList `gorm:"type:text" json:"charges"`
	ParkingType string     `gorm:"size:20;default:'None'" json:"parking_type"`

	// Applicant details
	ApplicantName       string `gorm:"size:100;not null" json:"applicant_name"`
	ApplicantPhone      string `gorm:"size:15;not null" json:"applicant_phone"`
	ApplicantEmail      string `gorm:"size:100" json:"applicant_email"`
	ApplicantPAN        string `gorm:"column:applicant_pan;size:20" json:"applicant_pan"`
	ApplicantAadhar     string `gorm:"size:20" json:"applicant_aadhar"`
	ApplicantAddress    string `gorm:"type:text" json:"applicant_address"`
	ApplicantOccupation string `gorm:"size:50" json:"applicant_occupation"`

	// Co-applicant
	CoApplicantName   string `gorm:"size:100" json:"co_applicant_name"`
	CoApplicantPhone  string `gorm:"size:15" json:"co_applicant_phone"`
	CoApplicantPAN    string `gorm:"column:co_applicant_pan;size:20" json:"co_applicant_pan"`
	CoApplicantAadhar string `gorm:"size:20" json:"co_applicant_aadhar"`

	// Token payment details
	PaymentMode   string     `gorm:"size:20;default:'Cheque'" json:"payment_mode"`
	PaymentBank   string     `gorm:"size:100" json:"payment_bank"`
	PaymentRef    string     `gorm:"size:100" json:"payment_ref"`
	PaymentDate   *time.Time `json:"payment_date"`
	BookingAmount float64    `json:"booking_amount"`

	Status     string    `gorm:"size:20;default:'PENDING'" json:"status"`
	Remarks    string    `gorm:"type:text" json:"remarks"`
	AgreeTerms bool      `gorm:"default:false" json:"agree_terms"`
	CreatedBy  uint      `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
