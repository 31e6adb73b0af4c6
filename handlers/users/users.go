package users

import (
	"net/http"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := utils.DB.Where("is_active = ?", true).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	result := make([]gin.H, 0, len(users))
	for _, user := range users {
		result = append(result, gin.H{
			"id":                 user.ID,
			"name":               user.Name,
			"role":               user.Role,
			"active_leads_count": user.ActiveLeadsCount,
			"capacity":           user.Capacity,
			"avatar":             user.Avatar,
		})
	}

	c.JSON(http.StatusOK, result)
}
