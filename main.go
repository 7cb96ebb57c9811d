package main

import (
	"fmt"
	"log"
	"os"

	"salonbul-backend/config"
	"salonbul-backend/models"
	"salonbul-backend/routes"
	"salonbul-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.SalonType{},
		&models.Salon{},
		&models.Staff{},
		&models.ServiceCategory{},
		&models.GlobalService{},
		&models.SalonService{},
		&models.City{},
		&models.District{},
		&models.Appointment{},
		&models.PhoneVerification{},
		&models.SmsTemplate{},
		&models.SmsLog{},
	)

	if err := services.EnsureDefaultTemplates(config.DB); err != nil {
		log.Printf("Failed to seed SMS templates: %v", err)
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	smsService := services.NewSmsService(config.DB)
	verificationService := services.NewVerificationService(config.DB, smsService)
	reminderService := services.NewReminderService(config.DB, smsService, verificationService)
	reminderService.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
