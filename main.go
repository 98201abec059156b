package main

import (
	"fmt"
	"log"
	"os"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/routes"
	"venuepro-backend/services"

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
		&models.Venue{},
		&models.User{},
		&models.Customer{},
		&models.Hall{},
		&models.Slot{},
		&models.EventType{},
		&models.Service{},
		&models.TaxRecord{},
		&models.HsnCode{},
		&models.Booking{},
		&models.BookingSlot{},
		&models.BookingService{},
		&models.Payment{},
		&models.ReminderTemplate{},
		&models.ReminderLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewReminderService(config.DB).StartScheduler()

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
