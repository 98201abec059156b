// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"venuepro-backend/config"
	"venuepro-backend/models"
	"venuepro-backend/services"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SlotSelectionInput is one requested (date, slot) pair. A nil slotId books
// the full day and blocks every slot of that date.
type SlotSelectionInput struct {
	Date        string     `json:"date" binding:"required"` // "2006-01-02"
	SlotID      *uuid.UUID `json:"slotId"`
	EventTypeID uuid.UUID  `json:"eventTypeId"`
	Guests      int        `json:"guests"`
}

// BookingServiceInput selects an add-on service. UnitPrice overrides the
// catalog price for this line only.
type BookingServiceInput struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	UnitPrice *float64  `json:"unitPrice"`
	TaxExempt bool      `json:"taxExempt"`
}

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	CustomerID  uuid.UUID             `json:"customerId"`
	HallID      uuid.UUID             `json:"hallId"`
	Slots       []SlotSelectionInput  `json:"slots"`
	Services    []BookingServiceInput `json:"services"`
	ManualRent  *float64              `json:"manualRent"`
	Discount    float64               `json:"discount" binding:"min=0"`
	TaxExempt   bool                  `json:"taxExempt"`
	Advance     float64               `json:"advance" binding:"min=0"`
	PaymentMode string                `json:"paymentMode"`
	Notes       string                `json:"notes"`
}

// UpdateBookingInput defines the expected JSON structure for updating a booking
type UpdateBookingInput struct {
	HallID      *uuid.UUID             `json:"hallId"`
	Slots       *[]SlotSelectionInput  `json:"slots"`
	Services    *[]BookingServiceInput `json:"services"`
	ManualRent  *float64               `json:"manualRent"`
	Discount    *float64               `json:"discount"`
	TaxExempt   *bool                  `json:"taxExempt"`
	PaymentMode *string                `json:"paymentMode"`
	Notes       *string                `json:"notes"`
}

// CheckAvailabilityInput asks whether a hall is free for the given pairs.
type CheckAvailabilityInput struct {
	HallID           uuid.UUID            `json:"hallId" binding:"required"`
	Slots            []SlotSelectionInput `json:"slots" binding:"required,min=1"`
	ExcludeBookingID *uuid.UUID           `json:"excludeBookingId"`
}

// validateBookingFields reports missing required booking fields as a
// field-level error map, keyed the way the booking form names them.
func validateBookingFields(input *CreateBookingInput) map[string]string {
	fields := map[string]string{}
	if input.CustomerID == uuid.Nil {
		fields["customerId"] = "Customer is required"
	}
	if input.HallID == uuid.Nil {
		fields["hallId"] = "Hall is required"
	}
	if len(input.Slots) == 0 {
		fields["slots"] = "At least one date and slot is required"
	}
	for _, s := range input.Slots {
		if _, err := utils.ParseDateOnly(s.Date); err != nil {
			fields["slots"] = "Invalid date: " + s.Date
			break
		}
		if s.EventTypeID == uuid.Nil {
			fields["slots"] = "Event type is required"
			break
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func slotRequests(selections []SlotSelectionInput) []services.SlotRequest {
	reqs := make([]services.SlotRequest, 0, len(selections))
	for _, s := range selections {
		d, err := utils.ParseDateOnly(s.Date)
		if err != nil {
			continue
		}
		reqs = append(reqs, services.SlotRequest{Date: d, SlotID: s.SlotID})
	}
	return reqs
}

func slotPairs(selections []SlotSelectionInput) []services.SlotPair {
	pairs := make([]services.SlotPair, 0, len(selections))
	for _, s := range selections {
		slotKey := ""
		if s.SlotID != nil {
			slotKey = s.SlotID.String()
		}
		pairs = append(pairs, services.SlotPair{Date: s.Date, SlotID: slotKey})
	}
	return pairs
}

func serviceLineInputs(inputs []BookingServiceInput) []services.ServiceLineInput {
	lines := make([]services.ServiceLineInput, 0, len(inputs))
	for _, in := range inputs {
		lines = append(lines, services.ServiceLineInput{
			ServiceID: in.ServiceID,
			UnitPrice: in.UnitPrice,
			TaxExempt: in.TaxExempt,
		})
	}
	return lines
}

func paymentStatusFor(total, paid float64) string {
	switch {
	case total > 0 && paid >= total:
		return "paid"
	case paid > 0:
		return "partial"
	default:
		return "unpaid"
	}
}

// loadServiceCatalog fetches the venue's services referenced by the inputs.
func loadServiceCatalog(venueID uuid.UUID, inputs []BookingServiceInput) (map[uuid.UUID]models.Service, error) {
	catalog := make(map[uuid.UUID]models.Service)
	if len(inputs) == 0 {
		return catalog, nil
	}
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ServiceID)
	}
	var svcs []models.Service
	if err := config.DB.Where("venue_id = ? AND id IN ?", venueID, ids).Find(&svcs).Error; err != nil {
		return nil, err
	}
	for _, s := range svcs {
		catalog[s.ID] = s
	}
	return catalog, nil
}

// loadMasters builds the tax lookup index. Master data problems never block
// a booking; a failed load degrades to "no tax" and is logged.
func loadMasters(c *gin.Context, venueID uuid.UUID) *services.MasterIndex {
	reader := &services.GormMasterReader{DB: config.DB}
	masters, err := services.LoadMasterIndex(c.Request.Context(), reader, venueID)
	if err != nil {
		log.Printf("[MASTERS] venue %s: load failed, pricing without tax: %v", venueID, err)
		return services.NewMasterIndex(nil, nil)
	}
	return masters
}

// checkAvailabilityOrWarn runs the advisory pre-flight check. On a reader
// failure the check fails open: the booking proceeds and the fault is logged
// for the operator audit trail.
func checkAvailabilityOrWarn(c *gin.Context, venueID, hallID uuid.UUID, pairs []services.SlotRequest, excludeBookingID uuid.UUID) services.AvailabilityResult {
	checker := services.NewAvailabilityChecker(&services.GormBookingRangeReader{DB: config.DB})
	result, err := checker.Check(c.Request.Context(), venueID, hallID, pairs, excludeBookingID)
	if err != nil {
		log.Printf("[AVAILABILITY] venue %s hall %s: range query failed, failing open: %v", venueID, hallID, err)
	}
	return result
}

// recheckConflictsTx re-runs conflict detection inside the save transaction.
// The HTTP-time check is advisory only; this query under the transaction is
// what actually prevents a double-booking racing through two requests.
func recheckConflictsTx(c *gin.Context, tx *gorm.DB, venueID, hallID uuid.UUID, pairs []services.SlotRequest, excludeBookingID uuid.UUID) (*services.AvailabilityResult, error) {
	checker := services.NewAvailabilityChecker(&services.GormBookingRangeReader{DB: tx})
	result, err := checker.Check(c.Request.Context(), venueID, hallID, pairs, excludeBookingID)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func conflictResponse(c *gin.Context, result services.AvailabilityResult) {
	payload := gin.H{"error": "Hall is not available for the selected date and slot"}
	if result.ConflictDate != nil {
		payload["conflictDate"] = utils.FormatDateOnly(*result.ConflictDate)
	}
	if result.ConflictSlotID != nil {
		payload["conflictSlotId"] = *result.ConflictSlotID
	}
	c.AbortWithStatusJSON(http.StatusConflict, payload)
}

// CheckAvailability is the pre-flight endpoint the booking form calls on
// every hall/date/slot change.
func CheckAvailability(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	var input CheckAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	exclude := uuid.Nil
	if input.ExcludeBookingID != nil {
		exclude = *input.ExcludeBookingID
	}

	checker := services.NewAvailabilityChecker(&services.GormBookingRangeReader{DB: config.DB})
	result, err := checker.Check(c.Request.Context(), venueUUID, input.HallID, slotRequests(input.Slots), exclude)
	response := gin.H{"available": result.Available}
	if err != nil {
		log.Printf("[AVAILABILITY] venue %s hall %s: range query failed, failing open: %v", venueUUID, input.HallID, err)
		response["warning"] = "Availability could not be verified"
	}
	if result.ConflictDate != nil {
		response["conflictDate"] = utils.FormatDateOnly(*result.ConflictDate)
	}
	if result.ConflictSlotID != nil {
		response["conflictSlotId"] = *result.ConflictSlotID
	}

	c.JSON(http.StatusOK, response)
}

// CreateBooking creates a booking with priced services and an advance payment
func CreateBooking(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	userUUID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if fields := validateBookingFields(&input); fields != nil {
		utils.RespondWithValidationErrors(c, fields)
		return
	}

	// Validate customer exists in the same venue
	var customer models.Customer
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, input.CustomerID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var hall models.Hall
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, input.HallID).
		First(&hall).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Hall not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	requests := slotRequests(input.Slots)
	if result := checkAvailabilityOrWarn(c, venueUUID, hall.ID, requests, uuid.Nil); !result.Available {
		conflictResponse(c, result)
		return
	}

	catalog, err := loadServiceCatalog(venueUUID, input.Services)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	masters := loadMasters(c, venueUUID)

	totals := services.AssembleTotals(services.BookingDraft{
		Hall:             &hall,
		Slots:            slotPairs(input.Slots),
		ServiceLines:     serviceLineInputs(input.Services),
		ManualRent:       input.ManualRent,
		Discount:         input.Discount,
		TaxExempt:        input.TaxExempt,
		RequestedAdvance: input.Advance,
		ExistingPaid:     0,
	}, catalog, masters)

	booking := models.Booking{
		ID:              uuid.New(),
		VenueID:         venueUUID,
		CreatedByUserID: userUUID,
		BookingNumber:   "BKG-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
		CustomerID:      customer.ID,
		HallID:          hall.ID,
		BookingDate:     time.Now(),
		HallRent:        totals.HallRent,
		ServicesCost:    totals.ServicesCost,
		CGST:            totals.CGST,
		SGST:            totals.SGST,
		Discount:        totals.Discount,
		TaxExempt:       input.TaxExempt,
		TotalAmount:     totals.TotalAmount,
		PaidAmount:      totals.Advance,
		BalanceDue:      totals.BalanceDue,
		Status:          "confirmed",
		PaymentMode:     input.PaymentMode,
		PaymentStatus:   paymentStatusFor(totals.TotalAmount, totals.Advance),
		Notes:           input.Notes,
	}

	for _, s := range input.Slots {
		d, err := utils.ParseDateOnly(s.Date)
		if err != nil {
			continue
		}
		booking.Slots = append(booking.Slots, models.BookingSlot{
			HallID:      hall.ID,
			EventDate:   d,
			SlotID:      s.SlotID,
			EventTypeID: s.EventTypeID,
			Guests:      s.Guests,
		})
	}
	for i := range totals.Lines {
		totals.Lines[i].ID = uuid.New()
		totals.Lines[i].BookingID = booking.ID
	}
	booking.Services = totals.Lines

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Conflict re-check under the transaction; this one is authoritative
	recheck, err := recheckConflictsTx(c, tx, venueUUID, hall.ID, requests, uuid.Nil)
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to verify availability")
		return
	}
	if !recheck.Available {
		tx.Rollback()
		conflictResponse(c, *recheck)
		return
	}

	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	if totals.Advance > 0 {
		payment := models.Payment{
			VenueID:   venueUUID,
			BookingID: booking.ID,
			Amount:    totals.Advance,
			Mode:      input.PaymentMode,
			PaidAt:    time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record advance payment")
			return
		}
	}

	// Update customer stats
	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"total_bookings": gorm.Expr("total_bookings + ?", 1),
			"total_spent":    gorm.Expr("total_spent + ?", totals.TotalAmount),
			"last_booking":   booking.BookingDate,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, gin.H{"booking": booking, "totals": totals})
}

// GetBookings retrieves bookings for the venue, optionally filtered by hall,
// status and event date range
func GetBookings(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Slots").Preload("Services").Where("venue_id = ?", venueUUID)

	if hallID := c.Query("hallId"); hallID != "" {
		hallUUID, err := uuid.Parse(hallID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid hall ID format")
			return
		}
		query = query.Where("hall_id = ?", hallUUID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		fromDate, err := utils.ParseDateOnly(from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		query = query.Where("id IN (?)", config.DB.Table("booking_slots").
			Select("booking_id").Where("event_date >= ?", fromDate))
	}
	if to := c.Query("to"); to != "" {
		toDate, err := utils.ParseDateOnly(to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		query = query.Where("id IN (?)", config.DB.Table("booking_slots").
			Select("booking_id").Where("event_date <= ?", toDate))
	}

	var bookings []models.Booking
	if err := query.Order("booking_date DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "booking")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Slots").Preload("Services").
		Where("venue_id = ? AND id = ?", venueUUID, bookingUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking reprices and reschedules an existing booking. Hall or
// date/slot changes go through the availability pre-flight with the booking
// itself excluded, so a reschedule does not collide with its own slots.
func UpdateBooking(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "booking")
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Slots").Preload("Services").
		Where("venue_id = ? AND id = ?", venueUUID, bookingUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if services.IsCancelledStatus(booking.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot update a cancelled booking")
		return
	}

	hallID := booking.HallID
	if input.HallID != nil {
		hallID = *input.HallID
	}
	var hall models.Hall
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, hallID).
		First(&hall).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Hall not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Either the new selections or the booking's current ones
	var selections []SlotSelectionInput
	if input.Slots != nil {
		selections = *input.Slots
		if len(selections) == 0 {
			utils.RespondWithValidationErrors(c, map[string]string{"slots": "At least one date and slot is required"})
			return
		}
	} else {
		for _, s := range booking.Slots {
			selections = append(selections, SlotSelectionInput{
				Date:        utils.FormatDateOnly(s.EventDate),
				SlotID:      s.SlotID,
				EventTypeID: s.EventTypeID,
				Guests:      s.Guests,
			})
		}
	}

	requests := slotRequests(selections)
	hallOrSlotsChanged := input.HallID != nil || input.Slots != nil
	if hallOrSlotsChanged {
		if result := checkAvailabilityOrWarn(c, venueUUID, hall.ID, requests, booking.ID); !result.Available {
			conflictResponse(c, result)
			return
		}
	}

	var serviceInputs []BookingServiceInput
	if input.Services != nil {
		serviceInputs = *input.Services
	} else {
		for _, line := range booking.Services {
			price := line.UnitPrice
			serviceInputs = append(serviceInputs, BookingServiceInput{
				ServiceID: line.ServiceID,
				UnitPrice: &price,
				TaxExempt: line.TaxExempt,
			})
		}
	}

	discount := booking.Discount
	if input.Discount != nil {
		discount = *input.Discount
	}
	taxExempt := booking.TaxExempt
	if input.TaxExempt != nil {
		taxExempt = *input.TaxExempt
	}

	catalog, err := loadServiceCatalog(venueUUID, serviceInputs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	masters := loadMasters(c, venueUUID)

	totals := services.AssembleTotals(services.BookingDraft{
		Hall:             &hall,
		Slots:            slotPairs(selections),
		ServiceLines:     serviceLineInputs(serviceInputs),
		ManualRent:       input.ManualRent,
		Discount:         discount,
		TaxExempt:        taxExempt,
		RequestedAdvance: 0,
		ExistingPaid:     booking.PaidAmount,
	}, catalog, masters)

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if hallOrSlotsChanged {
		recheck, err := recheckConflictsTx(c, tx, venueUUID, hall.ID, requests, booking.ID)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to verify availability")
			return
		}
		if !recheck.Available {
			tx.Rollback()
			conflictResponse(c, *recheck)
			return
		}
	}

	// Replace slot rows
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingSlot{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing slots")
		return
	}
	newSlots := make([]models.BookingSlot, 0, len(selections))
	for _, s := range selections {
		d, err := utils.ParseDateOnly(s.Date)
		if err != nil {
			continue
		}
		newSlots = append(newSlots, models.BookingSlot{
			BookingID:   booking.ID,
			HallID:      hall.ID,
			EventDate:   d,
			SlotID:      s.SlotID,
			EventTypeID: s.EventTypeID,
			Guests:      s.Guests,
		})
	}
	if len(newSlots) > 0 {
		if err := tx.Create(&newSlots).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save slots")
			return
		}
	}

	// Replace service lines
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingService{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing services")
		return
	}
	for i := range totals.Lines {
		totals.Lines[i].ID = uuid.New()
		totals.Lines[i].BookingID = booking.ID
	}
	if len(totals.Lines) > 0 {
		if err := tx.Create(&totals.Lines).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save services")
			return
		}
	}

	oldTotal := booking.TotalAmount
	booking.HallID = hall.ID
	booking.HallRent = totals.HallRent
	booking.ServicesCost = totals.ServicesCost
	booking.CGST = totals.CGST
	booking.SGST = totals.SGST
	booking.Discount = totals.Discount
	booking.TaxExempt = taxExempt
	booking.TotalAmount = totals.TotalAmount
	booking.BalanceDue = totals.BalanceDue
	booking.PaymentStatus = paymentStatusFor(totals.TotalAmount, booking.PaidAmount)
	if input.PaymentMode != nil {
		booking.PaymentMode = *input.PaymentMode
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	booking.Slots = nil
	booking.Services = nil

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	// Keep customer lifetime-spend in step with the repriced total
	if totals.TotalAmount != oldTotal {
		if err := tx.Model(&models.Customer{}).Where("id = ?", booking.CustomerID).
			Update("total_spent", gorm.Expr("total_spent + ?", totals.TotalAmount-oldTotal)).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
			return
		}
	}

	tx.Commit()

	booking.Slots = newSlots
	booking.Services = totals.Lines
	c.JSON(http.StatusOK, gin.H{"booking": booking, "totals": totals})
}

// CancelBooking cancels a booking, releasing its slots
func CancelBooking(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "booking")
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, bookingUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if services.IsCancelledStatus(booking.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking is already cancelled")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&booking).Update("status", "cancelled").Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	// Update customer stats (decrement)
	if err := tx.Model(&models.Customer{}).Where("id = ?", booking.CustomerID).
		Updates(map[string]interface{}{
			"total_bookings": gorm.Expr("total_bookings - ?", 1),
			"total_spent":    gorm.Expr("total_spent - ?", booking.TotalAmount),
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer stats")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// RecordPaymentInput records an additional payment against a booking
type RecordPaymentInput struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Mode      string  `json:"mode"`
	Reference string  `json:"reference"`
}

// RecordPayment collects a further payment, capped at the balance due
func RecordPayment(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}
	bookingUUID, ok := parseIDParam(c, "booking")
	if !ok {
		return
	}

	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("venue_id = ? AND id = ?", venueUUID, bookingUUID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if services.IsCancelledStatus(booking.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot record payment on a cancelled booking")
		return
	}

	// A payment may never push collections past the booking total
	maxPayable := utils.NonNegative(booking.TotalAmount - booking.PaidAmount)
	amount := utils.Round2(utils.Clamp(input.Amount, 0, maxPayable))
	if amount <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking is already fully paid")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	payment := models.Payment{
		VenueID:   venueUUID,
		BookingID: booking.ID,
		Amount:    amount,
		Mode:      input.Mode,
		Reference: input.Reference,
		PaidAt:    time.Now(),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	booking.PaidAmount = utils.Round2(booking.PaidAmount + amount)
	booking.BalanceDue = utils.Round2(utils.NonNegative(booking.TotalAmount - booking.PaidAmount))
	booking.PaymentStatus = paymentStatusFor(booking.TotalAmount, booking.PaidAmount)

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"booking": booking, "payment": payment})
}
