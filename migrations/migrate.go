package migrations

import (
	"log"

	"property-crm-server/models"
	"property-crm-server/utils"
)

// MigrateAll keeps the schema in sync with the model definitions.
func MigrateAll() {
	err := utils.DB.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Project{},
		&models.Unit{},
		&models.Booking{},
		&models.PaymentSchedule{},
		&models.Document{},
		&models.Interaction{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}
