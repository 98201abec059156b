// controllers/slot.go
package controllers

import (
	"net/http"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateSlotInput struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SortOrder int    `json:"sortOrder"`
}

type CreateEventTypeInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateSlot adds a bookable time window (e.g. Morning, Evening)
func CreateSlot(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CreateSlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slot := models.Slot{
		ID:        uuid.New(),
		VenueID:   venueUUID,
		Name:      input.Name,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}

	if err := config.DB.Create(&slot).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create slot")
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// GetSlots lists the venue's bookable time windows
func GetSlots(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var slots []models.Slot
	if err := config.DB.Where("venue_id = ? AND is_active = true", venueUUID).
		Order("sort_order, name").Find(&slots).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve slots")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// DeleteSlot deactivates a time window
func DeleteSlot(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	slotUUID, ok := parseIDParam(c, "slot")
	if !ok {
		return
	}

	result := config.DB.Model(&models.Slot{}).
		Where("venue_id = ? AND id = ?", venueUUID, slotUUID).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate slot")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Slot not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot deactivated successfully"})
}

// CreateEventType adds an event type (e.g. Wedding, Reception)
func CreateEventType(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CreateEventTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	eventType := models.EventType{
		ID:       uuid.New(),
		VenueID:  venueUUID,
		Name:     input.Name,
		IsActive: true,
	}

	if err := config.DB.Create(&eventType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create event type")
		return
	}

	c.JSON(http.StatusCreated, eventType)
}

// GetEventTypes lists the venue's event types
func GetEventTypes(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var eventTypes []models.EventType
	if err := config.DB.Where("venue_id = ? AND is_active = true", venueUUID).
		Order("name").Find(&eventTypes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve event types")
		return
	}

	c.JSON(http.StatusOK, eventTypes)
}
