// controllers/tax.go
package controllers

import (
	"net/http"
	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/services"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTaxRecordInput defines the expected JSON structure for a tax record.
// Either a combined rate or the CGST/SGST pair should be supplied; values may
// be percentages or fractions, the resolver normalizes on read.
type CreateTaxRecordInput struct {
	Code        string   `json:"code" binding:"required"`
	Description string   `json:"description"`
	Rate        *float64 `json:"rate"`
	CGSTRate    *float64 `json:"cgstRate"`
	SGSTRate    *float64 `json:"sgstRate"`
}

type CreateHsnCodeInput struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	TaxCode     string `json:"taxCode"`
}

// CreateTaxRecord creates a tax code for the venue
func CreateTaxRecord(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CreateTaxRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record := models.TaxRecord{
		ID:          uuid.New(),
		VenueID:     venueUUID,
		Code:        input.Code,
		Description: input.Description,
		Rate:        input.Rate,
		CGSTRate:    input.CGSTRate,
		SGSTRate:    input.SGSTRate,
		IsActive:    true,
	}

	if services.ResolveTaxRate(&record) == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Tax record has no derivable rate")
		return
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tax record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetTaxRecords retrieves all tax codes for the venue
func GetTaxRecords(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var records []models.TaxRecord
	if err := config.DB.Where("venue_id = ?", venueUUID).Order("code").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tax records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateHsnCode creates an HSN code mapping for the venue
func CreateHsnCode(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CreateHsnCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hsn := models.HsnCode{
		ID:          uuid.New(),
		VenueID:     venueUUID,
		Code:        input.Code,
		Description: input.Description,
		TaxCode:     input.TaxCode,
		IsActive:    true,
	}

	if err := config.DB.Create(&hsn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create HSN code")
		return
	}

	c.JSON(http.StatusCreated, hsn)
}

// GetHsnCodes retrieves all HSN codes for the venue
func GetHsnCodes(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var codes []models.HsnCode
	if err := config.DB.Where("venue_id = ?", venueUUID).Order("code").Find(&codes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve HSN codes")
		return
	}

	c.JSON(http.StatusOK, codes)
}

// ImportMastersInput carries loosely-shaped legacy master rows. Field names
// vary per export source; services/masterdata.go normalizes them.
type ImportMastersInput struct {
	TaxRecords []services.MasterRow `json:"taxRecords"`
	HsnCodes   []services.MasterRow `json:"hsnCodes"`
	Halls      []services.MasterRow `json:"halls"`
	Services   []services.MasterRow `json:"services"`
}

// ImportMasters bulk-imports legacy master data dumps
func ImportMasters(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input ImportMastersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	imported := gin.H{"taxRecords": 0, "hsnCodes": 0, "halls": 0, "services": 0}
	skipped := 0

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, row := range input.TaxRecords {
		rec := services.MapTaxRow(row)
		if rec == nil {
			skipped++
			continue
		}
		rec.ID = uuid.New()
		rec.VenueID = venueUUID
		if err := tx.Create(rec).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import tax record "+rec.Code)
			return
		}
		imported["taxRecords"] = imported["taxRecords"].(int) + 1
	}

	for _, row := range input.HsnCodes {
		rec := services.MapHsnRow(row)
		if rec == nil {
			skipped++
			continue
		}
		rec.ID = uuid.New()
		rec.VenueID = venueUUID
		if err := tx.Create(rec).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import HSN code "+rec.Code)
			return
		}
		imported["hsnCodes"] = imported["hsnCodes"].(int) + 1
	}

	for _, row := range input.Halls {
		rec := services.MapHallRow(row)
		if rec == nil {
			skipped++
			continue
		}
		rec.ID = uuid.New()
		rec.VenueID = venueUUID
		if err := tx.Create(rec).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import hall "+rec.Name)
			return
		}
		imported["halls"] = imported["halls"].(int) + 1
	}

	for _, row := range input.Services {
		rec := services.MapServiceRow(row)
		if rec == nil {
			skipped++
			continue
		}
		rec.ID = uuid.New()
		rec.VenueID = venueUUID
		if err := tx.Create(rec).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to import service "+rec.Name)
			return
		}
		imported["services"] = imported["services"].(int) + 1
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"imported": imported, "skipped": skipped})
}
