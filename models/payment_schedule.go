package models

import "time"

// Payment schedule row statuses and payers.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"

	PayerCustomer = "Customer"
	PayerBank     = "Bank Loan"
)

type PaymentSchedule struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	BookingID   uint       `gorm:"not null;index" json:"booking_id"`
	Milestone   string     `gorm:"size:100;not null" json:"milestone"`
	DueDate     *time.Time `json:"due_date"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Payer       string     `gorm:"size:20;default:'Customer'" json:"payer"`
	Status      string     `gorm:"size:20;default:'Pending'" json:"status"`
	PaymentDate *time.Time `json:"payment_date"`
	PaymentRef  string     `gorm:"size:100" json:"payment_ref"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Milestone is one entry of the standard payment plan.
type Milestone struct {
	Name         string
	Fraction     float64
	Payer        string
	DueAfterDays int
}

// ScheduleTemplate is the fixed five-milestone plan applied to every new
// booking. The fractions intentionally sum to 110% of the deal amount when
// no explicit token amount is supplied; that is how the business runs its
// plan and it must not be rebalanced.
var ScheduleTemplate = []Milestone{
	{Name: "Booking Token", Fraction: 0.10, Payer: PayerCustomer, DueAfterDays: 0},
	{Name: "Allotment", Fraction: 0.25, Payer: PayerCustomer, DueAfterDays: 30},
	{Name: "Agreement Signing", Fraction: 0.10, Payer: PayerCustomer, DueAfterDays: 45},
	{Name: "Bank Disbursement", Fraction: 0.60, Payer: PayerBank, DueAfterDays: 60},
	{Name: "Possession", Fraction: 0.05, Payer: PayerCustomer, DueAfterDays: 180},
}

// BuildSchedule materializes the template for one booking. When a non-zero
// token amount is given it replaces the first milestone's computed amount
// and that row starts out Paid.
func BuildSchedule(bookingID uint, dealAmount, bookingAmount float64, now time.Time) []PaymentSchedule {
	rows := make([]PaymentSchedule, 0, len(ScheduleTemplate))
	for i, m := range ScheduleTemplate {
		due := now.AddDate(0, 0, m.DueAfterDays)
		row := PaymentSchedule{
			BookingID: bookingID,
			Milestone: m.Name,
			DueDate:   &due,
			Amount:    dealAmount * m.Fraction,
			Payer:     m.Payer,
			Status:    PaymentPending,
		}
		if i == 0 && bookingAmount > 0 {
			row.Amount = bookingAmount
			row.Status = PaymentPaid
		}
		rows = append(rows, row)
	}
	return rows
}
