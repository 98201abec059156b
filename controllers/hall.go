package controllers

import (
	"errors"
	"net/http"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateHallInput defines the expected JSON structure for creating a hall
type CreateHallInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity" binding:"min=0"`
	SlotRate    float64  `json:"slotRate" binding:"required,min=0"`
	FullDayRate *float64 `json:"fullDayRate"`
	HSNCode     string   `json:"hsnCode"`
}

// UpdateHallInput defines the expected JSON structure for updating a hall
type UpdateHallInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Capacity    *int     `json:"capacity"`
	SlotRate    *float64 `json:"slotRate"`
	FullDayRate *float64 `json:"fullDayRate"`
	HSNCode     *string  `json:"hsnCode"`
	IsActive    *bool    `json:"isActive"`
}

// CreateHall creates a new hall for the venue
func CreateHall(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CreateHallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.FullDayRate != nil && *input.FullDayRate < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Full day rate cannot be negative")
		return
	}

	hall := models.Hall{
		ID:          uuid.New(),
		VenueID:     venueUUID,
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		SlotRate:    input.SlotRate,
		FullDayRate: input.FullDayRate,
		HSNCode:     input.HSNCode,
		IsActive:    true,
	}

	if err := config.DB.Create(&hall).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create hall")
		return
	}

	c.JSON(http.StatusCreated, hall)
}

// GetHalls retrieves all halls for the venue
func GetHalls(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var halls []models.Hall
	if err := config.DB.Where("venue_id = ?", venueUUID).Order("name").Find(&halls).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve halls")
		return
	}

	c.JSON(http.StatusOK, halls)
}

// GetHall retrieves a specific hall by ID
func GetHall(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	hallUUID, ok := parseIDParam(c, "hall")
	if !ok {
		return
	}

	var hall models.Hall
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, hallUUID).
		First(&hall).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hall not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, hall)
}

// UpdateHall updates an existing hall
func UpdateHall(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	hallUUID, ok := parseIDParam(c, "hall")
	if !ok {
		return
	}

	var input UpdateHallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var hall models.Hall
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, hallUUID).
		First(&hall).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hall not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Description != nil {
		hall.Description = *input.Description
	}
	if input.Capacity != nil {
		hall.Capacity = *input.Capacity
	}
	if input.SlotRate != nil {
		hall.SlotRate = *input.SlotRate
	}
	if input.FullDayRate != nil {
		hall.FullDayRate = input.FullDayRate
	}
	if input.HSNCode != nil {
		hall.HSNCode = *input.HSNCode
	}
	if input.IsActive != nil {
		hall.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&hall).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update hall")
		return
	}

	c.JSON(http.StatusOK, hall)
}

// DeleteHall deactivates a hall. Halls with bookings are never hard-deleted.
func DeleteHall(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	hallUUID, ok := parseIDParam(c, "hall")
	if !ok {
		return
	}

	var hall models.Hall
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, hallUUID).
		First(&hall).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hall not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&hall).Update("is_active", false).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate hall")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hall deactivated successfully"})
}
