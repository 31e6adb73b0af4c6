package dashboard

import (
	"net/http"
	"time"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

var pipelineStatuses = []string{
	models.LeadNew,
	models.LeadInProgress,
	models.LeadSiteVisit,
	models.LeadNegotiation,
	models.LeadBooked,
	models.LeadLost,
}

// GetStats aggregates the numbers the dashboard landing page shows.
func GetStats(c *gin.Context) {
	var totalLeads, visitsCount, convertedCount int64
	utils.DB.Model(&models.Lead{}).Count(&totalLeads)
	utils.DB.Model(&models.Interaction{}).Where("type = ?", models.InteractionVisit).Count(&visitsCount)
	utils.DB.Model(&models.Lead{}).Where("status = ?", models.LeadBooked).Count(&convertedCount)

	var revenue float64
	utils.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingConfirmed).
		Select("COALESCE(SUM(deal_amount), 0)").
		Scan(&revenue)

	pipeline := make([]gin.H, 0, len(pipelineStatuses))
	for _, status := range pipelineStatuses {
		var count int64
		utils.DB.Model(&models.Lead{}).Where("status = ?", status).Count(&count)
		pipeline = append(pipeline, gin.H{"status": status, "count": count})
	}

	var recentLeads []models.Lead
	utils.DB.Order("created_at DESC").Limit(5).Find(&recentLeads)

	userNames := make(map[uint]string)
	var users []models.User
	utils.DB.Find(&users)
	for _, user := range users {
		userNames[user.ID] = user.Name
	}

	var interactions []models.Interaction
	utils.DB.Order("created_at DESC").Limit(10).Find(&interactions)

	recentActivity := make([]gin.H, 0, len(interactions))
	for _, interaction := range interactions {
		actor := userNames[interaction.CreatedBy]
		if actor == "" {
			actor = "System"
		}
		recentActivity = append(recentActivity, gin.H{
			"id":     interaction.ID,
			"user":   actor,
			"action": interaction.Type + " added",
			"time":   interaction.CreatedAt.Format("02 Jan 15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_leads":        totalLeads,
		"visits_count":       visitsCount,
		"converted_count":    convertedCount,
		"revenue":            revenue,
		"formatted_revenue":  utils.FormatAmount(revenue),
		"pipeline_breakdown": pipeline,
		"recent_leads":       recentLeads,
		"recent_activity":    recentActivity,
		"upcoming_visits":    upcomingVisits(),
	})
}

// upcomingVisits lists future-dated visit follow-ups with the lead and
// project they belong to.
func upcomingVisits() []gin.H {
	var visits []models.Interaction
	utils.DB.Where("type = ? AND next_followup_date >= ?", models.InteractionVisit, time.Now()).
		Order("next_followup_date").
		Limit(5).
		Find(&visits)

	result := make([]gin.H, 0, len(visits))
	for _, visit := range visits {
		var lead models.Lead
		if err := utils.DB.First(&lead, visit.LeadID).Error; err != nil {
			continue
		}

		projectName := ""
		if lead.ProjectID != nil {
			var project models.Project
			if err := utils.DB.First(&project, *lead.ProjectID).Error; err == nil {
				projectName = project.Name
			}
		}

		result = append(result, gin.H{
			"id":      visit.ID,
			"client":  lead.Name,
			"time":    visit.NextFollowupDate.Format("03:04 PM"),
			"project": projectName,
		})
	}

	return result
}
