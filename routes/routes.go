package routes

import (
	"venuepro-backend/config"
	"venuepro-backend/controllers"
	"venuepro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://venuepro.zenithive.digital",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return origin == "https://venuepro.zenithive.digital" ||
				origin == "http://localhost:3000"
		},
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Hall routes
		halls := api.Group("/halls")
		{
			halls.POST("", controllers.CreateHall)
			halls.GET("", controllers.GetHalls)
			halls.GET("/:id", controllers.GetHall)
			halls.PUT("/:id", controllers.UpdateHall)
			halls.DELETE("/:id", controllers.DeleteHall)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Slot and event type routes
		slots := api.Group("/slots")
		{
			slots.POST("", controllers.CreateSlot)
			slots.GET("", controllers.GetSlots)
			slots.DELETE("/:id", controllers.DeleteSlot)
		}
		eventTypes := api.Group("/event-types")
		{
			eventTypes.POST("", controllers.CreateEventType)
			eventTypes.GET("", controllers.GetEventTypes)
		}

		// Tax master routes
		taxRecords := api.Group("/tax-records")
		{
			taxRecords.POST("", controllers.CreateTaxRecord)
			taxRecords.GET("", controllers.GetTaxRecords)
		}
		hsnCodes := api.Group("/hsn-codes")
		{
			hsnCodes.POST("", controllers.CreateHsnCode)
			hsnCodes.GET("", controllers.GetHsnCodes)
		}
		api.POST("/import/masters", controllers.ImportMasters)

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("/check-availability", controllers.CheckAvailability)
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.POST("/:id/cancel", controllers.CancelBooking)
			bookings.POST("/:id/payments", controllers.RecordPayment)
		}

		//Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)
		api.GET("/reports/gst-summary", reportController.GetGSTSummary)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("/templates", controllers.CreateReminderTemplate)
			reminders.GET("/templates", controllers.GetReminderTemplates)
			reminders.PUT("/templates/:id", controllers.UpdateReminderTemplate)
			reminders.GET("/logs", controllers.GetReminderLogs)
		}

		// Settings routes
		profile := auth.Group("/profile", utils.AuthMiddleware())
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-venue", controllers.UpdateVenueProfile)
			profile.PUT("/update-settings", controllers.UpdateSettings)
			profile.PUT("/update-notifications", controllers.UpdateNotificationSettings)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)          // GET /api/employees
			employees.POST("", controllers.AddEmployee)          // POST /api/employees
			employees.PUT("/:id", controllers.UpdateEmployee)    // PUT /api/employees/:id
			employees.DELETE("/:id", controllers.DeleteEmployee) // DELETE /api/employees/:id
		}

	}

	return r
}
