package routes

import (
	"os"
	"strings"

	"salonbul-backend/config"
	"salonbul-backend/controllers"
	"salonbul-backend/services"
	"salonbul-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	smsService := services.NewSmsService(config.DB)
	verificationService := services.NewVerificationService(config.DB, smsService)
	catalogService := services.NewCatalogService(services.NewGormCatalogSource(config.DB))

	discover := controllers.NewDiscoverController(catalogService)
	booking := controllers.NewBookingController(verificationService)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Discovery routes
		api.GET("/discover", discover.Discover)
		api.GET("/suggest", discover.Suggest)
		api.GET("/districts", discover.GetDistrictsByCity)

		// Salon routes
		salons := api.Group("/salons")
		{
			salons.GET("", controllers.GetSalons)
			salons.GET("/:id", controllers.GetSalon)
			salons.GET("/:id/staff", controllers.GetSalonStaff)
		}

		// Reference data routes
		api.GET("/salon-types", controllers.GetSalonTypes)
		api.GET("/service-categories", controllers.GetServiceCategories)
		api.GET("/cities", controllers.GetCities)
		api.GET("/cities/:id/districts", controllers.GetCityDistricts)

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", booking.CreateBooking)
			bookings.POST("/:id/verify", booking.VerifyBooking)
			bookings.POST("/:id/resend-code", booking.ResendCode)
		}
	}

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		// Salon management
		salons := admin.Group("/salons")
		{
			salons.POST("", controllers.CreateSalon)
			salons.PUT("/:id", controllers.UpdateSalon)
			salons.DELETE("/:id", controllers.DeleteSalon)
			salons.POST("/:id/staff", controllers.AddSalonStaff)
			salons.DELETE("/:id/staff/:staffId", controllers.RemoveSalonStaff)
		}

		// Salon type management
		types := admin.Group("/salon-types")
		{
			types.POST("", controllers.CreateSalonType)
			types.PUT("/:id", controllers.UpdateSalonType)
			types.DELETE("/:id", controllers.DeleteSalonType)
		}

		// Service category management
		categories := admin.Group("/service-categories")
		{
			categories.POST("", controllers.CreateServiceCategory)
			categories.PUT("/:id", controllers.UpdateServiceCategory)
			categories.DELETE("/:id", controllers.DeleteServiceCategory)
		}
		admin.POST("/global-services", controllers.CreateGlobalService)
		admin.DELETE("/global-services/:id", controllers.DeleteGlobalService)

		// SMS back-office
		admin.GET("/sms-logs", controllers.GetSmsLogs)
		admin.GET("/sms-templates", controllers.GetSmsTemplates)
		admin.PUT("/sms-templates/:purpose", controllers.UpdateSmsTemplate)
	}

	return r
}
