// controllers/employee.go
package controllers

import (
	"errors"
	"net/http"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddEmployeeInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateEmployeeInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

// GetEmployees lists the venue's staff accounts
func GetEmployees(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var employees []models.User
	if err := config.DB.Select("id, email, name, phone, role, is_active, last_login").
		Where("venue_id = ?", venueUUID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	c.JSON(http.StatusOK, employees)
}

// AddEmployee creates a staff account for the venue
func AddEmployee(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input AddEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	employee := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Phone:    input.Phone,
		Password: input.Password, // Will be hashed in BeforeCreate hook
		Role:     "employee",
		VenueID:  venueUUID,
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    employee.ID,
		"email": employee.Email,
		"name":  employee.Name,
		"role":  employee.Role,
	})
}

// UpdateEmployee updates a staff account
func UpdateEmployee(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	employeeUUID, ok := parseIDParam(c, "employee")
	if !ok {
		return
	}

	var input UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var employee models.User
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, employeeUUID).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// DeleteEmployee soft deletes a staff account
func DeleteEmployee(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	employeeUUID, ok := parseIDParam(c, "employee")
	if !ok {
		return
	}

	result := config.DB.Where("venue_id = ? AND id = ? AND role = 'employee'", venueUUID, employeeUUID).
		Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
