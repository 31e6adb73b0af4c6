package leads

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Lead{}))
	utils.DB = db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/leads", CreateLead)
	r.POST("/api/leads/:id/assign", AssignLead)
	r.POST("/api/leads/:id/status", UpdateLeadStatus)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateLeadRejectsDuplicatePhone(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/api/leads", `{"name": "Amit", "phone": "9000000001"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodPost, "/api/leads", `{"name": "Amit Again", "phone": "9000000001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	utils.DB.Model(&models.Lead{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAssignLead(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	user := models.User{Name: "Ravi", Phone: "9000000002", Password: "x", Capacity: 2}
	require.NoError(t, utils.DB.Create(&user).Error)
	lead := models.Lead{Name: "Amit", Phone: "9000000001", Status: models.LeadNew}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w := doRequest(r, http.MethodPost, fmt.Sprintf("/api/leads/%d/assign", lead.ID), fmt.Sprintf(`{"user_id": %d}`, user.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updatedLead models.Lead
	require.NoError(t, utils.DB.First(&updatedLead, lead.ID).Error)
	require.NotNil(t, updatedLead.OwnerID)
	assert.Equal(t, user.ID, *updatedLead.OwnerID)
	assert.Equal(t, models.LeadInProgress, updatedLead.Status)
	assert.NotNil(t, updatedLead.LastContact)

	var updatedUser models.User
	require.NoError(t, utils.DB.First(&updatedUser, user.ID).Error)
	assert.Equal(t, 1, updatedUser.ActiveLeadsCount)
}

func TestAssignLeadAtCapacity(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	user := models.User{Name: "Ravi", Phone: "9000000002", Password: "x", Capacity: 1, ActiveLeadsCount: 1}
	require.NoError(t, utils.DB.Create(&user).Error)
	lead := models.Lead{Name: "Amit", Phone: "9000000001", Status: models.LeadNew}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w := doRequest(r, http.MethodPost, fmt.Sprintf("/api/leads/%d/assign", lead.ID), fmt.Sprintf(`{"user_id": %d}`, user.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing may change on a rejected assignment.
	var updatedLead models.Lead
	require.NoError(t, utils.DB.First(&updatedLead, lead.ID).Error)
	assert.Nil(t, updatedLead.OwnerID)
	assert.Equal(t, models.LeadNew, updatedLead.Status)

	var updatedUser models.User
	require.NoError(t, utils.DB.First(&updatedUser, user.ID).Error)
	assert.Equal(t, 1, updatedUser.ActiveLeadsCount)
}

func TestAssignLeadMissingTargets(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doRequest(r, http.MethodPost, "/api/leads/42/assign", `{"user_id": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	lead := models.Lead{Name: "Amit", Phone: "9000000001"}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w = doRequest(r, http.MethodPost, fmt.Sprintf("/api/leads/%d/assign", lead.ID), `{"user_id": 42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLeadStatusBookedClearsFollowup(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	followup := time.Now()
	lead := models.Lead{Name: "Amit", Phone: "9000000001", Status: models.LeadNegotiation, NextFollowup: &followup}
	require.NoError(t, utils.DB.Create(&lead).Error)

	w := doRequest(r, http.MethodPost, fmt.Sprintf("/api/leads/%d/status", lead.ID), `{"status": "BOOKED"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Lead
	require.NoError(t, utils.DB.First(&updated, lead.ID).Error)
	assert.Equal(t, models.LeadBooked, updated.Status)
	assert.Nil(t, updated.NextFollowup)
	assert.NotNil(t, updated.LastContact)
}
