package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"property-crm-server/handlers/auth"
	"property-crm-server/handlers/bookings"
	"property-crm-server/handlers/dashboard"
	"property-crm-server/handlers/documents"
	"property-crm-server/handlers/finance"
	"property-crm-server/handlers/interactions"
	"property-crm-server/handlers/inventory"
	"property-crm-server/handlers/leads"
	"property-crm-server/handlers/users"
	"property-crm-server/migrations"
	"property-crm-server/seed"
	"property-crm-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()
	migrations.MigrateAll()

	if err := seed.SeedDefaultData(); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}
	if err := utils.EnsureUploadDirs(); err != nil {
		log.Fatalf("Failed to create upload directories: %v", err)
	}

	r.GET("/", index)
	r.GET("/health", health)

	api := r.Group("/api")
	api.POST("/auth/login", auth.Login)

	protected := api.Group("")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/auth/me", auth.Me)

		protected.GET("/leads", leads.GetLeads)
		protected.GET("/leads/unassigned", leads.GetUnassignedLeads)
		protected.POST("/leads", leads.CreateLead)
		protected.POST("/leads/:id/assign", leads.AssignLead)
		protected.POST("/leads/:id/status", leads.UpdateLeadStatus)

		protected.GET("/users", users.GetUsers)

		protected.GET("/inventory/projects", inventory.GetProjects)
		protected.GET("/inventory/project/:project_id/towers", inventory.GetTowers)
		protected.GET("/inventory/tower/:tower_name/floors", inventory.GetFloors)

		protected.GET("/booking", bookings.GetBookings)
		protected.GET("/booking/lead/:lead_id", bookings.GetBookingByLead)
		protected.POST("/booking", bookings.CreateBooking)
		protected.POST("/booking/upload", bookings.CreateBookingWithUpload)
		protected.PATCH("/booking/:id/confirm", bookings.ConfirmBooking)
		protected.PATCH("/booking/:id/cancel", bookings.CancelBooking)

		protected.GET("/finance/schedule/:booking_id", finance.GetPaymentSchedule)
		protected.GET("/finance/summary/:booking_id", finance.GetFinanceSummary)
		protected.POST("/finance/payment", finance.RecordPayment)
		protected.POST("/finance/schedule/:booking_id/pay", finance.MarkPaymentPaid)
		protected.GET("/finance/ledger-status/:booking_id", finance.GetLedgerStatus)

		protected.POST("/documents/upload/kyc", documents.UploadKYC)
		protected.POST("/documents/upload/cheque", documents.UploadCheque)
		protected.GET("/docs/templates", documents.GetDocumentTemplates)

		protected.GET("/interactions/lead/:lead_id", interactions.GetLeadInteractions)
		protected.POST("/interactions", interactions.CreateInteraction)
		protected.GET("/visits/lead/:lead_id", interactions.GetLeadVisits)
		protected.POST("/visits", interactions.CreateVisit)

		protected.GET("/dashboard/stats", dashboard.GetStats)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Property CRM Backend API",
		"version": "1.0.0",
		"endpoints": []string{
			"/api/auth/login",
			"/api/leads",
			"/api/booking",
			"/api/dashboard/stats",
		},
	})
}

func health(c *gin.Context) {
	sqlDB, err := utils.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
