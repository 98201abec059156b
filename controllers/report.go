// controllers/report.go
package controllers

import (
	"net/http"
	"time"
	"venuepro-backend/config"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64          `json:"currentMonthRevenue"`
	MonthGrowth           float64          `json:"monthGrowth"`
	CurrentQuarterRevenue float64          `json:"currentQuarterRevenue"`
	QuarterGrowth         float64          `json:"quarterGrowth"`
	CurrentYearRevenue    float64          `json:"currentYearRevenue"`
	YearGrowth            float64          `json:"yearGrowth"`
	TopServices           []ServiceSummary `json:"topServices"`
	TopHalls              []HallSummary    `json:"topHalls"`
	QuickStats            QuickStatistics  `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type HallSummary struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type QuickStatistics struct {
	TotalCustomers  int     `json:"totalCustomers"`
	TotalBookings   int     `json:"totalBookings"`
	AvgBookingValue float64 `json:"avgBookingValue"`
	CancelRate      float64 `json:"cancelRate"`
}

// GetReportAnalytics returns the revenue analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	now := time.Now()
	summary := AnalyticsSummary{
		TopServices: []ServiceSummary{},
		TopHalls:    []HallSummary{},
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	quarterMonth := time.Month(((int(now.Month())-1)/3)*3 + 1)
	quarterStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	prevQuarterStart := quarterStart.AddDate(0, -3, 0)

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	prevYearStart := yearStart.AddDate(-1, 0, 0)

	summary.CurrentMonthRevenue = revenueBetween(venueUUID, monthStart, now)
	prevMonth := revenueBetween(venueUUID, prevMonthStart, monthStart)
	summary.MonthGrowth = growthPercent(prevMonth, summary.CurrentMonthRevenue)

	summary.CurrentQuarterRevenue = revenueBetween(venueUUID, quarterStart, now)
	prevQuarter := revenueBetween(venueUUID, prevQuarterStart, quarterStart)
	summary.QuarterGrowth = growthPercent(prevQuarter, summary.CurrentQuarterRevenue)

	summary.CurrentYearRevenue = revenueBetween(venueUUID, yearStart, now)
	prevYear := revenueBetween(venueUUID, prevYearStart, yearStart)
	summary.YearGrowth = growthPercent(prevYear, summary.CurrentYearRevenue)

	config.DB.Raw(`
		SELECT booking_services.service_name AS name,
			COUNT(*) AS count,
			COALESCE(SUM(booking_services.total_price), 0) AS revenue
		FROM booking_services
		JOIN bookings ON bookings.id = booking_services.booking_id
		WHERE bookings.venue_id = ? AND bookings.status != 'cancelled'
		GROUP BY booking_services.service_name
		ORDER BY revenue DESC
		LIMIT 5
	`, venueUUID).Scan(&summary.TopServices)

	config.DB.Raw(`
		SELECT halls.name AS name,
			COUNT(*) AS bookings,
			COALESCE(SUM(bookings.total_amount), 0) AS revenue
		FROM bookings
		JOIN halls ON halls.id = bookings.hall_id
		WHERE bookings.venue_id = ? AND bookings.status != 'cancelled'
		GROUP BY halls.name
		ORDER BY revenue DESC
		LIMIT 5
	`, venueUUID).Scan(&summary.TopHalls)

	var customerCount, bookingCount, cancelledCount int64
	config.DB.Table("customers").Where("venue_id = ? AND deleted_at IS NULL", venueUUID).Count(&customerCount)
	config.DB.Table("bookings").Where("venue_id = ? AND status != 'cancelled'", venueUUID).Count(&bookingCount)
	config.DB.Table("bookings").Where("venue_id = ? AND status = 'cancelled'", venueUUID).Count(&cancelledCount)

	summary.QuickStats.TotalCustomers = int(customerCount)
	summary.QuickStats.TotalBookings = int(bookingCount)
	if bookingCount > 0 {
		summary.QuickStats.AvgBookingValue = utils.Round2(summary.CurrentYearRevenue / float64(bookingCount))
	}
	if total := bookingCount + cancelledCount; total > 0 {
		summary.QuickStats.CancelRate = utils.Round2(float64(cancelledCount) / float64(total) * 100)
	}

	c.JSON(http.StatusOK, summary)
}

func revenueBetween(venueID uuid.UUID, from, to time.Time) float64 {
	var revenue float64
	config.DB.Table("bookings").
		Where("venue_id = ? AND status != 'cancelled' AND booking_date >= ? AND booking_date < ?", venueID, from, to).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)
	return revenue
}

func growthPercent(prev, current float64) float64 {
	if prev <= 0 {
		return 0
	}
	return utils.Round2((current - prev) / prev * 100)
}

// GSTSummaryRow is one HSN/tax group in the statutory summary
type GSTSummaryRow struct {
	HSNCode      string  `json:"hsnCode"`
	TaxableValue float64 `json:"taxableValue"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	Total        float64 `json:"total"`
}

// GetGSTSummary groups booking line items by HSN code for statutory filing.
// Hall rent reports under each hall's HSN code; service lines under their
// own HSN/SAC codes.
func (rc *ReportController) GetGSTSummary(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	from, err := utils.ParseDateOnly(c.DefaultQuery("from", utils.FormatDateOnly(time.Now().AddDate(0, -1, 0))))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
		return
	}
	to, err := utils.ParseDateOnly(c.DefaultQuery("to", utils.FormatDateOnly(time.Now())))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
		return
	}
	toEnd := to.AddDate(0, 0, 1)

	hallRows := []GSTSummaryRow{}
	config.DB.Raw(`
		SELECT COALESCE(halls.hsn_code, '') AS hsn_code,
			COALESCE(SUM(bookings.hall_rent), 0) AS taxable_value,
			COALESCE(SUM(bookings.cgst), 0) AS cgst,
			COALESCE(SUM(bookings.sgst), 0) AS sgst,
			COALESCE(SUM(bookings.hall_rent + bookings.cgst + bookings.sgst), 0) AS total
		FROM bookings
		JOIN halls ON halls.id = bookings.hall_id
		WHERE bookings.venue_id = ?
		AND bookings.status != 'cancelled'
		AND bookings.booking_date >= ? AND bookings.booking_date < ?
		GROUP BY halls.hsn_code
		ORDER BY halls.hsn_code
	`, venueUUID, from, toEnd).Scan(&hallRows)

	serviceRows := []GSTSummaryRow{}
	config.DB.Raw(`
		SELECT COALESCE(booking_services.hsn_code, '') AS hsn_code,
			COALESCE(SUM(booking_services.total_price - booking_services.cgst - booking_services.sgst), 0) AS taxable_value,
			COALESCE(SUM(booking_services.cgst), 0) AS cgst,
			COALESCE(SUM(booking_services.sgst), 0) AS sgst,
			COALESCE(SUM(booking_services.total_price), 0) AS total
		FROM booking_services
		JOIN bookings ON bookings.id = booking_services.booking_id
		WHERE bookings.venue_id = ?
		AND bookings.status != 'cancelled'
		AND bookings.booking_date >= ? AND bookings.booking_date < ?
		GROUP BY booking_services.hsn_code
		ORDER BY booking_services.hsn_code
	`, venueUUID, from, toEnd).Scan(&serviceRows)

	c.JSON(http.StatusOK, gin.H{
		"from":         utils.FormatDateOnly(from),
		"to":           utils.FormatDateOnly(to),
		"hallRent":     hallRows,
		"serviceLines": serviceRows,
	})
}
