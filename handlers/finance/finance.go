package finance

import (
	"net/http"
	"time"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

func scheduleTotals(schedules []models.PaymentSchedule) (total, paid float64) {
	for _, s := range schedules {
		total += s.Amount
		if s.Status == models.PaymentPaid {
			paid += s.Amount
		}
	}
	return total, paid
}

func parsePaymentDate(value string) time.Time {
	if value != "" {
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed
		}
	}
	return time.Now()
}

// GetPaymentSchedule returns a booking's schedule rows with a paid/pending
// summary the client renders as the ledger view.
func GetPaymentSchedule(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("booking_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var schedules []models.PaymentSchedule
	if err := utils.DB.Where("booking_id = ?", booking.ID).
		Order("due_date").
		Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment schedule"})
		return
	}

	if len(schedules) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"schedules": []gin.H{},
			"summary": gin.H{
				"total_amount":          0,
				"formatted_total":       "₹0",
				"paid_amount":           0,
				"formatted_paid":        "₹0",
				"pending_amount":        0,
				"formatted_pending":     "₹0",
				"progress_percentage":   0,
				"booking_status":        booking.Status,
				"deal_amount":           booking.DealAmount,
				"formatted_deal_amount": utils.FormatAmount(booking.DealAmount),
			},
		})
		return
	}

	total, paid := scheduleTotals(schedules)
	pending := total - paid

	progress := 0.0
	if total > 0 {
		progress = paid / total * 100
	}

	ledgerStatus := "Ledger Closed"
	if pending > 0 {
		ledgerStatus = "Ledger Active"
	}

	rows := make([]gin.H, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, gin.H{
			"id":               s.ID,
			"milestone":        s.Milestone,
			"due_date":         s.DueDate,
			"amount":           s.Amount,
			"formatted_amount": utils.FormatAmount(s.Amount),
			"payer":            s.Payer,
			"status":           s.Status,
			"payment_date":     s.PaymentDate,
			"payment_ref":      s.PaymentRef,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"schedules": rows,
		"summary": gin.H{
			"total_amount":          total,
			"formatted_total":       utils.FormatAmount(total),
			"paid_amount":           paid,
			"formatted_paid":        utils.FormatAmount(paid),
			"pending_amount":        pending,
			"formatted_pending":     utils.FormatAmount(pending),
			"progress_percentage":   progress,
			"booking_status":        booking.Status,
			"deal_amount":           booking.DealAmount,
			"formatted_deal_amount": utils.FormatAmount(booking.DealAmount),
			"ledger_status":         ledgerStatus,
		},
	})
}

// GetFinanceSummary reports totals against the deal amount with a payer
// breakdown.
func GetFinanceSummary(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("booking_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var schedules []models.PaymentSchedule
	if err := utils.DB.Where("booking_id = ?", booking.ID).Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment schedule"})
		return
	}

	_, paid := scheduleTotals(schedules)
	pending := booking.DealAmount - paid

	breakdown := gin.H{
		"customer_paid":    0.0,
		"bank_paid":        0.0,
		"customer_pending": 0.0,
		"bank_pending":     0.0,
	}
	var lastPaymentDate *time.Time
	for _, s := range schedules {
		switch {
		case s.Status == models.PaymentPaid && s.Payer == models.PayerCustomer:
			breakdown["customer_paid"] = breakdown["customer_paid"].(float64) + s.Amount
		case s.Status == models.PaymentPaid && s.Payer == models.PayerBank:
			breakdown["bank_paid"] = breakdown["bank_paid"].(float64) + s.Amount
		case s.Status == models.PaymentPending && s.Payer == models.PayerCustomer:
			breakdown["customer_pending"] = breakdown["customer_pending"].(float64) + s.Amount
		case s.Status == models.PaymentPending && s.Payer == models.PayerBank:
			breakdown["bank_pending"] = breakdown["bank_pending"].(float64) + s.Amount
		}
		if s.PaymentDate != nil && (lastPaymentDate == nil || s.PaymentDate.After(*lastPaymentDate)) {
			lastPaymentDate = s.PaymentDate
		}
	}

	status := "Ledger Closed"
	if pending > 0 {
		status = "Ledger Active"
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":            booking.ID,
		"unit_number":           booking.UnitNumber,
		"applicant_name":        booking.ApplicantName,
		"deal_amount":           booking.DealAmount,
		"formatted_deal_amount": utils.FormatAmount(booking.DealAmount),
		"paid_amount":           paid,
		"formatted_paid":        utils.FormatAmount(paid),
		"pending_amount":        pending,
		"formatted_pending":     utils.FormatAmount(pending),
		"payment_breakdown":     breakdown,
		"status":                status,
		"last_payment_date":     lastPaymentDate,
	})
}

// RecordPayment marks the named milestone as paid, creating an ad-hoc Paid
// row when the schedule has no such milestone.
func RecordPayment(c *gin.Context) {
	var input struct {
		BookingID   uint    `json:"booking_id" binding:"required"`
		Milestone   string  `json:"milestone" binding:"required"`
		Amount      float64 `json:"amount"`
		PaymentRef  string  `json:"payment_ref"`
		PaymentDate string  `json:"payment_date"`
		Payer       string  `json:"payer"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payer := input.Payer
	if payer == "" {
		payer = models.PayerCustomer
	}
	paymentDate := parsePaymentDate(input.PaymentDate)

	var schedule models.PaymentSchedule
	err := utils.DB.Where("booking_id = ? AND milestone = ?", input.BookingID, input.Milestone).
		First(&schedule).Error
	if err != nil {
		schedule = models.PaymentSchedule{
			BookingID:   input.BookingID,
			Milestone:   input.Milestone,
			Amount:      input.Amount,
			Payer:       payer,
			Status:      models.PaymentPaid,
			PaymentRef:  input.PaymentRef,
			PaymentDate: &paymentDate,
		}
		if err := utils.DB.Create(&schedule).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment: " + err.Error()})
			return
		}
	} else {
		updates := map[string]interface{}{
			"status":       models.PaymentPaid,
			"payment_date": paymentDate,
			"payment_ref":  input.PaymentRef,
		}
		if input.Amount > 0 {
			updates["amount"] = input.Amount
		}
		if err := utils.DB.Model(&schedule).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment recorded for " + input.Milestone})
}

// MarkPaymentPaid flips a single schedule row to Paid; unlike RecordPayment
// it refuses rows that are already settled.
func MarkPaymentPaid(c *gin.Context) {
	milestone := c.Query("milestone")
	if milestone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Milestone is required"})
		return
	}

	var schedule models.PaymentSchedule
	if err := utils.DB.Where("booking_id = ? AND milestone = ?", c.Param("booking_id"), milestone).
		First(&schedule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment schedule not found"})
		return
	}

	if schedule.Status == models.PaymentPaid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment already marked as paid"})
		return
	}

	if err := utils.DB.Model(&schedule).Updates(map[string]interface{}{
		"status":       models.PaymentPaid,
		"payment_date": time.Now(),
		"payment_ref":  c.Query("payment_ref"),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark payment as paid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  models.PaymentPaid,
		"message": "Payment for " + milestone + " marked as paid",
	})
}

// GetLedgerStatus reports whether a booking still has money outstanding.
func GetLedgerStatus(c *gin.Context) {
	var schedules []models.PaymentSchedule
	if err := utils.DB.Where("booking_id = ?", c.Param("booking_id")).Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment schedule"})
		return
	}

	if len(schedules) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "No Schedule", "message": "No payment schedule found"})
		return
	}

	total, paid := scheduleTotals(schedules)
	pending := total - paid

	if pending > 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":            "Ledger Active",
			"message":           utils.FormatAmount(pending) + " pending payment",
			"total_amount":      total,
			"formatted_total":   utils.FormatAmount(total),
			"paid_amount":       paid,
			"formatted_paid":    utils.FormatAmount(paid),
			"pending_amount":    pending,
			"formatted_pending": utils.FormatAmount(pending),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "Ledger Closed",
		"message":           "All payments received",
		"total_amount":      total,
		"formatted_total":   utils.FormatAmount(total),
		"paid_amount":       paid,
		"formatted_paid":    utils.FormatAmount(paid),
		"pending_amount":    0,
		"formatted_pending": "₹0",
	})
}
