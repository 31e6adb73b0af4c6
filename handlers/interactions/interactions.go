package interactions

import (
	"net/http"
	"time"

	"property-crm-server/handlers/auth"
	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

type interactionInput struct {
	LeadID           uint   `json:"lead_id" binding:"required"`
	Type             string `json:"type"`
	Notes            string `json:"notes" binding:"required"`
	NextFollowupDate string `json:"next_followup_date"`
}

func parseFollowup(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &parsed
}

func GetLeadInteractions(c *gin.Context) {
	var interactions []models.Interaction
	if err := utils.DB.Where("lead_id = ?", c.Param("lead_id")).
		Order("created_at DESC").
		Find(&interactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	c.JSON(http.StatusOK, interactions)
}

// CreateInteraction stores a note or visit and refreshes the lead's
// last-contact and follow-up stamps.
func CreateInteraction(c *gin.Context) {
	var input interactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interactionType := input.Type
	if interactionType == "" {
		interactionType = models.InteractionNote
	}

	followup := parseFollowup(input.NextFollowupDate)
	interaction := models.Interaction{
		LeadID:           input.LeadID,
		Type:             interactionType,
		Notes:            input.Notes,
		NextFollowupDate: followup,
		CreatedBy:        auth.CurrentUserID(c),
	}

	if err := utils.DB.Create(&interaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interaction"})
		return
	}

	var lead models.Lead
	if err := utils.DB.First(&lead, input.LeadID).Error; err == nil {
		updates := map[string]interface{}{"last_contact": time.Now()}
		if followup != nil {
			updates["next_followup"] = followup
		}
		utils.DB.Model(&lead).Updates(updates)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Interaction created"})
}

func GetLeadVisits(c *gin.Context) {
	var visits []models.Interaction
	if err := utils.DB.Where("lead_id = ? AND type = ?", c.Param("lead_id"), models.InteractionVisit).
		Order("created_at DESC").
		Find(&visits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visits"})
		return
	}

	result := make([]gin.H, 0, len(visits))
	for _, visit := range visits {
		result = append(result, gin.H{
			"id":      visit.ID,
			"lead_id": visit.LeadID,
			"date":    visit.CreatedAt.Format("2006-01-02"),
			"time":    visit.CreatedAt.Format("15:04:05"),
			"type":    visit.Type,
			"status":  "Scheduled",
			"notes":   visit.Notes,
		})
	}

	c.JSON(http.StatusOK, result)
}

func CreateVisit(c *gin.Context) {
	var input interactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visit := models.Interaction{
		LeadID:           input.LeadID,
		Type:             models.InteractionVisit,
		Notes:            input.Notes,
		NextFollowupDate: parseFollowup(input.NextFollowupDate),
		CreatedBy:        auth.CurrentUserID(c),
	}

	if err := utils.DB.Create(&visit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule visit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Visit scheduled"})
}
