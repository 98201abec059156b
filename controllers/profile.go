package controllers

import (
	"net/http"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateVenueProfileInput struct {
	VenueName    string `json:"venueName"`
	VenueAddress string `json:"venueAddress"`
	GSTIN        string `json:"gstin"`
}

func GetProfile(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var venue models.Venue
	if err := config.DB.First(&venue, "id = ?", venueUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Venue not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venueName":             venue.Name,
		"venueAddress":          venue.Address,
		"gstin":                 venue.GSTIN,
		"settings":              venue.Settings,
		"eventReminders":        venue.EventReminders,
		"paymentReminders":      venue.PaymentReminders,
		"whatsAppNotifications": venue.WhatsAppNotifications,
		"smsNotifications":      venue.SMSNotifications,
	})
}

func UpdateVenueProfile(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input UpdateVenueProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var venue models.Venue
	if err := config.DB.First(&venue, "id = ?", venueUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Venue not found")
		return
	}

	// Update fields
	venue.Name = input.VenueName
	venue.Address = input.VenueAddress
	venue.GSTIN = input.GSTIN

	if err := config.DB.Save(&venue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateSettings(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input struct {
		Settings models.JSONB `json:"settings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.Venue{}).Where("id = ?", venueUUID).
		Update("settings", input.Settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input struct {
		EventReminders        bool `json:"eventReminders"`
		PaymentReminders      bool `json:"paymentReminders"`
		WhatsAppNotifications bool `json:"whatsAppNotifications"`
		SMSNotifications      bool `json:"smsNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.Venue{}).Where("id = ?", venueUUID).
		Updates(map[string]interface{}{
			"event_reminders":         input.EventReminders,
			"payment_reminders":       input.PaymentReminders,
			"whats_app_notifications": input.WhatsAppNotifications,
			"sms_notifications":       input.SMSNotifications,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
