package leads

import (
	"net/http"
	"time"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLeads lists leads newest first, optionally filtered by status and owner.
func GetLeads(c *gin.Context) {
	query := utils.DB.Model(&models.Lead{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if ownerID := c.Query("owner_id"); ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, leads)
}

func GetUnassignedLeads(c *gin.Context) {
	var leads []models.Lead
	if err := utils.DB.Where("owner_id IS NULL").Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, leads)
}

func CreateLead(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
		Email     string `json:"email"`
		Budget    string `json:"budget"`
		Source    string `json:"source"`
		ProjectID *uint  `json:"project_id"`
		OwnerID   *uint  `json:"owner_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Duplicate phone numbers mean duplicate prospects; reject outright.
	var existing models.Lead
	if err := utils.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already exists"})
		return
	}

	source := input.Source
	if source == "" {
		source = "Walk-in"
	}

	lead := models.Lead{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Budget:    input.Budget,
		Source:    source,
		Status:    models.LeadNew,
		ProjectID: input.ProjectID,
		OwnerID:   input.OwnerID,
	}

	if err := utils.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// AssignLead hands a lead to a sales user, guarded by the user's capacity.
func AssignLead(c *gin.Context) {
	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var user models.User
	if err := utils.DB.First(&user, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.ActiveLeadsCount >= user.Capacity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User has reached capacity"})
		return
	}

	now := time.Now()
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&lead).Updates(map[string]interface{}{
			"owner_id":     input.UserID,
			"status":       models.LeadInProgress,
			"last_contact": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("active_leads_count", gorm.Expr("active_leads_count + ?", 1)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Lead assigned"})
}

func UpdateLeadStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lead models.Lead
	if err := utils.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	updates := map[string]interface{}{
		"status":       input.Status,
		"last_contact": time.Now(),
	}
	// A booked lead no longer needs a follow-up reminder.
	if input.Status == models.LeadBooked {
		updates["next_followup"] = nil
	}

	if err := utils.DB.Model(&lead).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}
