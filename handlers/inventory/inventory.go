package inventory

import (
	"net/http"
	"sort"

	"property-crm-server/models"
	"property-crm-server/utils"

	"github.com/gin-gonic/gin"
)

func GetProjects(c *gin.Context) {
	var projects []models.Project
	if err := utils.DB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	result := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		result = append(result, gin.H{
			"id":       project.ID,
			"name":     project.Name,
			"location": project.Location,
			"type":     project.Type,
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetTowers(c *gin.Context) {
	var towers []string
	if err := utils.DB.Model(&models.Unit{}).
		Where("project_id = ? AND tower <> ''", c.Param("project_id")).
		Distinct().
		Pluck("tower", &towers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch towers"})
		return
	}

	result := make([]gin.H, 0, len(towers))
	for i, tower := range towers {
		result = append(result, gin.H{"id": i + 1, "name": tower})
	}

	c.JSON(http.StatusOK, result)
}

// GetFloors returns a tower's units grouped by floor, top floor first.
func GetFloors(c *gin.Context) {
	var units []models.Unit
	if err := utils.DB.Where("tower = ?", c.Param("tower_name")).
		Order("floor DESC").
		Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch floors"})
		return
	}

	floorMap := make(map[int][]gin.H)
	for _, unit := range units {
		floorMap[unit.Floor] = append(floorMap[unit.Floor], gin.H{
			"id":     unit.ID,
			"number": unit.Number,
			"status": unit.Status,
		})
	}

	floors := make([]int, 0, len(floorMap))
	for floor := range floorMap {
		floors = append(floors, floor)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(floors)))

	result := make([]gin.H, 0, len(floors))
	for _, floor := range floors {
		result = append(result, gin.H{
			"id":     floor,
			"number": floor,
			"units":  floorMap[floor],
		})
	}

	c.JSON(http.StatusOK, result)
}
