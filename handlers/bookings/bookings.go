package bookings

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"property-crm-server/handlers/auth"
	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingInput struct {
	LeadID      uint              `json:"lead_id" binding:"required"`
	ProjectID   uint              `json:"project_id" binding:"required"`
	UnitID      uint              `json:"unit_id" binding:"required"`
	UnitNumber  string            `json:"unit_number" binding:"required"`
	DealAmount  float64           `json:"deal_amount" binding:"required"`
	BaseCost    float64           `json:"base_cost" binding:"required"`
	Charges     models.ChargeList `json:"charges"`
	ParkingType string            `json:"parking_type"`

	ApplicantName       string `json:"applicant_name" binding:"required"`
	ApplicantPhone      string `json:"applicant_phone" binding:"required"`
	ApplicantEmail      string `json:"applicant_email"`
	ApplicantPAN        string `json:"applicant_pan"`
	ApplicantAadhar     string `json:"applicant_aadhar"`
	ApplicantAddress    string `json:"applicant_address"`
	ApplicantOccupation string `json:"applicant_occupation"`

	CoApplicantName   string `json:"co_applicant_name"`
	CoApplicantPhone  string `json:"co_applicant_phone"`
	CoApplicantPAN    string `json:"co_applicant_pan"`
	CoApplicantAadhar string `json:"co_applicant_aadhar"`

	PaymentMode   string  `json:"payment_mode"`
	PaymentBank   string  `json:"payment_bank"`
	PaymentRef    string  `json:"payment_ref"`
	PaymentDate   string  `json:"payment_date"`
	BookingAmount float64 `json:"booking_amount"`
	Remarks       string  `json:"remarks"`
	AgreeTerms    bool    `json:"agree_terms"`
}

// createBooking runs the whole booking workflow in one transaction: insert
// the PENDING booking, block the unit, mark the lead BOOKED and materialize
// the five-milestone payment schedule. Either all of it lands or none of it.
func createBooking(input BookingInput, createdBy uint) (*models.Booking, error) {
	var paymentDate *time.Time
	if input.PaymentDate != "" {
		if parsed, err := time.Parse(time.RFC3339, input.PaymentDate); err == nil {
			paymentDate = &parsed
		} else {
			now := time.Now()
			paymentDate = &now
		}
	}

	parkingType := input.ParkingType
	if parkingType == "" {
		parkingType = "None"
	}
	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = "Cheque"
	}

	booking := models.Booking{
		LeadID:              input.LeadID,
		ProjectID:           input.ProjectID,
		UnitID:              input.UnitID,
		UnitNumber:          input.UnitNumber,
		DealAmount:          input.DealAmount,
		BaseCost:            input.BaseCost,
		Charges:             input.Charges,
		ParkingType:         parkingType,
		ApplicantName:       input.ApplicantName,
		ApplicantPhone:      input.ApplicantPhone,
		ApplicantEmail:      input.ApplicantEmail,
		ApplicantPAN:        input.ApplicantPAN,
		ApplicantAadhar:     input.ApplicantAadhar,
		ApplicantAddress:    input.ApplicantAddress,
		ApplicantOccupation: input.ApplicantOccupation,
		CoApplicantName:     input.CoApplicantName,
		CoApplicantPhone:    input.CoApplicantPhone,
		CoApplicantPAN:      input.CoApplicantPAN,
		CoApplicantAadhar:   input.CoApplicantAadhar,
		PaymentMode:         paymentMode,
		PaymentBank:         input.PaymentBank,
		PaymentRef:          input.PaymentRef,
		PaymentDate:         paymentDate,
		BookingAmount:       input.BookingAmount,
		Status:              models.BookingPending,
		Remarks:             input.Remarks,
		AgreeTerms:          input.AgreeTerms,
		CreatedBy:           createdBy,
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// Last writer wins: the unit is blocked regardless of its prior state.
		if err := tx.Model(&models.Unit{}).Where("id = ?", input.UnitID).Updates(map[string]interface{}{
			"status":     models.UnitBlocked,
			"booking_id": booking.ID,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Lead{}).Where("id = ?", input.LeadID).Updates(map[string]interface{}{
			"status":        models.LeadBooked,
			"next_followup": nil,
		}).Error; err != nil {
			return err
		}

		schedule := models.BuildSchedule(booking.ID, input.DealAmount, input.BookingAmount, time.Now())
		return tx.Create(&schedule).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := createBooking(input, auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking creation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      booking.ID,
		"message": "Booking created successfully",
		"booking": gin.H{
			"id":          booking.ID,
			"unit_number": booking.UnitNumber,
			"status":      booking.Status,
		},
	})
}

// CreateBookingWithUpload accepts multipart form data: a booking_data field
// holding the booking JSON plus an optional cheque scan. The cheque is only
// attached after the booking itself has been committed.
func CreateBookingWithUpload(c *gin.Context) {
	var input BookingInput
	if err := json.Unmarshal([]byte(c.PostForm("booking_data")), &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data"})
		return
	}
	if err := binding.Validator.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := createBooking(input, auth.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking creation failed: " + err.Error()})
		return
	}

	if file, err := c.FormFile("cheque"); err == nil {
		filename := uuid.NewString() + "_" + filepath.Base(file.Filename)
		path := filepath.Join(utils.UploadDir(), utils.CategoryCheques, filename)

		if err := c.SaveUploadedFile(file, path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cheque file"})
			return
		}

		document := models.Document{
			BookingID:  &booking.ID,
			Type:       "Cheque",
			FileName:   file.Filename,
			FilePath:   path,
			FileSize:   file.Size,
			MimeType:   file.Header.Get("Content-Type"),
			UploadedBy: auth.CurrentUserID(c),
		}
		if err := utils.DB.Create(&document).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cheque document"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      booking.ID,
		"message": "Booking created successfully",
		"booking": gin.H{
			"id":          booking.ID,
			"unit_number": booking.UnitNumber,
			"status":      booking.Status,
		},
	})
}

func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := utils.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	var projects []models.Project
	utils.DB.Find(&projects)
	projectNames := make(map[uint]string, len(projects))
	for _, project := range projects {
		projectNames[project.ID] = project.Name
	}

	result := make([]gin.H, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, gin.H{
			"id":           booking.ID,
			"lead_name":    booking.ApplicantName,
			"project_name": projectNames[booking.ProjectID],
			"unit_number":  booking.UnitNumber,
			"deal_amount":  booking.DealAmount,
			"status":       booking.Status,
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetBookingByLead(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.Where("lead_id = ?", c.Param("lead_id")).First(&booking).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ConfirmBooking moves a PENDING booking to CONFIRMED and books its unit.
func ConfirmBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if booking.Status != models.BookingPending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking is not in pending state"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Update("status", models.BookingConfirmed).Error; err != nil {
			return err
		}
		return tx.Model(&models.Unit{}).Where("id = ?", booking.UnitID).
			Update("status", models.UnitBooked).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking"})
		return
	}

	if booking.ApplicantEmail != "" {
		go utils.SendBookingConfirmationEmail(booking.ApplicantEmail, booking.ApplicantName, booking.UnitNumber)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking confirmed"})
}

// CancelBooking releases the unit back to inventory and pushes the lead back
// into negotiation. Cancelling twice is rejected.
func CancelBooking(c *gin.Context) {
	var booking models.Booking
	if err := utils.DB.First(&booking, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if booking.Status == models.BookingCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking is already cancelled"})
		return
	}

	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Unit{}).Where("id = ?", booking.UnitID).Updates(map[string]interface{}{
			"status":     models.UnitAvailable,
			"booking_id": nil,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Lead{}).Where("id = ?", booking.LeadID).
			Update("status", models.LeadNegotiation).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
}
