// seed/seed.go
package seed

import (
	"fmt"
	"log"

	"property-crm-server/models"
	"property-crm-server/utils"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultData creates the admin user and a demo project with units the
// first time the server runs against an empty database.
func SeedDefaultData() error {
	var userCount int64
	if err := utils.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		log.Println("Database already seeded. Skipping.")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Admin",
		Email:    "admin@realty.com",
		Phone:    "9876543210",
		Role:     "Manager",
		Password: string(hashed),
		Capacity: 50,
		Avatar:   "A",
		IsActive: true,
	}
	if err := utils.DB.Create(&admin).Error; err != nil {
		return err
	}

	project := models.Project{
		Name:     "Sunrise Apartments",
		Location: "Nashik",
		Type:     "12 Floors • 4 Units/Floor",
	}
	if err := utils.DB.Create(&project).Error; err != nil {
		return err
	}

	units := make([]models.Unit, 0, 20)
	for floor := 1; floor <= 5; floor++ {
		for unitNum := 1; unitNum <= 4; unitNum++ {
			units = append(units, models.Unit{
				ProjectID:   project.ID,
				Tower:       "Wing A",
				Floor:       floor,
				Number:      fmt.Sprintf("%d0%d", floor, unitNum),
				Status:      models.UnitAvailable,
				CarpetArea:  1000,
				RatePerSqft: 6500,
			})
		}
	}
	if err := utils.DB.Create(&units).Error; err != nil {
		return err
	}

	log.Println("Default admin, project and units seeded successfully.")
	return nil
}
