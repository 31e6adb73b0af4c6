package bookings

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Project{},
		&models.Unit{},
		&models.Booking{},
		&models.PaymentSchedule{},
		&models.Document{},
		&models.Interaction{},
	))
	utils.DB = db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/booking", CreateBooking)
	r.PATCH("/api/booking/:id/confirm", ConfirmBooking)
	r.PATCH("/api/booking/:id/cancel", CancelBooking)
	return r
}

func seedLeadAndUnit(t *testing.T) (models.Lead, models.Unit) {
	t.Helper()
	project := models.Project{Name: "Sunrise Apartments", Location: "Nashik"}
	require.NoError(t, utils.DB.Create(&project).Error)

	lead := models.Lead{Name: "Sneha Patil", Phone: "9000000001", Status: models.LeadNegotiation}
	require.NoError(t, utils.DB.Create(&lead).Error)

	unit := models.Unit{ProjectID: project.ID, Tower: "Wing A", Floor: 1, Number: "101", Status: models.UnitAvailable}
	require.NoError(t, utils.DB.Create(&unit).Error)

	return lead, unit
}

func bookingPayload(lead models.Lead, unit models.Unit, bookingAmount float64) string {
	return fmt.Sprintf(`{
		"lead_id": %d,
		"project_id": %d,
		"unit_id": %d,
		"unit_number": "101",
		"deal_amount": 1000000,
		"base_cost": 900000,
		"charges": [{"label": "Parking", "amount": 50000}],
		"applicant_name": "Sneha Patil",
		"applicant_phone": "9000000001",
		"booking_amount": %g
	}`, lead.ID, unit.ProjectID, unit.ID, bookingAmount)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingGeneratesSchedule(t *testing.T) {
	setupTestDB(t)
	r := newRouter()
	lead, unit := seedLeadAndUnit(t)

	w := doRequest(r, http.MethodPost, "/api/booking", bookingPayload(lead, unit, 0))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, utils.DB.First(&booking).Error)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Len(t, booking.Charges, 1)

	var schedules []models.PaymentSchedule
	require.NoError(t, utils.DB.Where("booking_id = ?", booking.ID).Order("due_date").Find(&schedules).Error)
	require.Len(t, schedules, 5)

	wantAmounts := []float64{100000, 250000, 100000, 600000, 50000}
	for i, s := range schedules {
		assert.InDelta(t, wantAmounts[i], s.Amount, 0.001)
	}
	assert.Equal(t, models.PaymentPending, schedules[0].Status)

	var updatedUnit models.Unit
	require.NoError(t, utils.DB.First(&updatedUnit, unit.ID).Error)
	assert.Equal(t, models.UnitBlocked, updatedUnit.Status)
	require.NotNil(t, updatedUnit.BookingID)
	assert.Equal(t, booking.ID, *updatedUnit.BookingID)

	var updatedLead models.Lead
	require.NoError(t, utils.DB.First(&updatedLead, lead.ID).Error)
	assert.Equal(t, models.LeadBooked, updatedLead.Status)
	assert.Nil(t, updatedLead.NextFollowup)
}

func TestCreateBookingWithTokenAmount(t *testing.T) {
	setupTestDB(t)
	r := newRouter()
	lead, unit := seedLeadAndUnit(t)

	w := doRequest(r, http.MethodPost, "/api/booking", bookingPayload(lead, unit, 150000))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token models.PaymentSchedule
	require.NoError(t, utils.DB.Where("milestone = ?", "Booking Token").First(&token).Error)
	assert.InDelta(t, 150000, token.Amount, 0.001)
	assert.Equal(t, models.PaymentPaid, token.Status)
}

func TestCreateBookingMissingFields(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/api/booking", `{"lead_id": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	utils.DB.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestConfirmBooking(t *testing.T) {
	setupTestDB(t)
	r := newRouter()
	lead, unit := seedLeadAndUnit(t)

	doRequest(r, http.MethodPost, "/api/booking", bookingPayload(lead, unit, 0))

	var booking models.Booking
	require.NoError(t, utils.DB.First(&booking).Error)

	w := doRequest(r, http.MethodPatch, fmt.Sprintf("/api/booking/%d/confirm", booking.ID), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, utils.DB.First(&booking, booking.ID).Error)
	assert.Equal(t, models.BookingConfirmed, booking.Status)

	var updatedUnit models.Unit
	require.NoError(t, utils.DB.First(&updatedUnit, unit.ID).Error)
	assert.Equal(t, models.UnitBooked, updatedUnit.Status)

	// Confirming again must fail and leave everything untouched.
	w = doRequest(r, http.MethodPatch, fmt.Sprintf("/api/booking/%d/confirm", booking.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, utils.DB.First(&updatedUnit, unit.ID).Error)
	assert.Equal(t, models.UnitBooked, updatedUnit.Status)
}

func TestCancelBookingReleasesUnit(t *testing.T) {
	setupTestDB(t)
	r := newRouter()
	lead, unit := seedLeadAndUnit(t)

	doRequest(r, http.MethodPost, "/api/booking", bookingPayload(lead, unit, 0))

	var booking models.Booking
	require.NoError(t, utils.DB.First(&booking).Error)

	// Cancel works for confirmed bookings too.
	doRequest(r, http.MethodPatch, fmt.Sprintf("/api/booking/%d/confirm", booking.ID), "")

	w := doRequest(r, http.MethodPatch, fmt.Sprintf("/api/booking/%d/cancel", booking.ID), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updatedUnit models.Unit
	require.NoError(t, utils.DB.First(&updatedUnit, unit.ID).Error)
	assert.Equal(t, models.UnitAvailable, updatedUnit.Status)
	assert.Nil(t, updatedUnit.BookingID)

	var updatedLead models.Lead
	require.NoError(t, utils.DB.First(&updatedLead, lead.ID).Error)
	assert.Equal(t, models.LeadNegotiation, updatedLead.Status)

	// Cancelling twice is rejected.
	w = doRequest(r, http.MethodPatch, fmt.Sprintf("/api/booking/%d/cancel", booking.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmMissingBooking(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doRequest(r, http.MethodPatch, "/api/booking/99/confirm", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
