package controllers

import (
	"net/http"
	"time"
	"venuepro-backend/config"
	"venuepro-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers int             `json:"totalCustomers"`
	MonthlyRevenue float64         `json:"monthlyRevenue"`
	TotalBookings  int             `json:"totalBookings"`
	PendingBalance float64         `json:"pendingBalance"`
	UpcomingEvents []UpcomingEvent `json:"upcomingEvents"`
	RecentBookings []RecentBooking `json:"recentBookings"`
}

type UpcomingEvent struct {
	BookingNumber string `json:"bookingNumber"`
	CustomerName  string `json:"customerName"`
	HallName      string `json:"hallName"`
	EventDate     string `json:"eventDate"`
	SlotName      string `json:"slotName"` // empty for full-day bookings
}

type RecentBooking struct {
	BookingNumber string  `json:"bookingNumber"`
	CustomerName  string  `json:"customerName"`
	HallName      string  `json:"hallName"`
	TotalAmount   float64 `json:"totalAmount"`
	BalanceDue    float64 `json:"balanceDue"`
	BookedOn      string  `json:"bookedOn"`
}

func GetDashboardOverview(c *gin.Context) {
	venueUUID, ok := requireVenueID(c)
	if !ok {
		return
	}

	overview := DashboardOverview{
		UpcomingEvents: []UpcomingEvent{},
		RecentBookings: []RecentBooking{},
	}

	var customerCount int64
	config.DB.Table("customers").
		Where("venue_id = ? AND is_active = true AND deleted_at IS NULL", venueUUID).
		Count(&customerCount)
	overview.TotalCustomers = int(customerCount)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var monthlyRevenue float64
	config.DB.Table("bookings").
		Where("venue_id = ? AND status != 'cancelled' AND booking_date >= ?", venueUUID, monthStart).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&monthlyRevenue)
	overview.MonthlyRevenue = monthlyRevenue

	var bookingCount int64
	config.DB.Table("bookings").
		Where("venue_id = ? AND status != 'cancelled'", venueUUID).
		Count(&bookingCount)
	overview.TotalBookings = int(bookingCount)

	var pendingBalance float64
	config.DB.Table("bookings").
		Where("venue_id = ? AND status = 'confirmed'", venueUUID).
		Select("COALESCE(SUM(balance_due), 0)").Scan(&pendingBalance)
	overview.PendingBalance = pendingBalance

	// Events in the next 7 days
	weekAhead := utils.BeginningOfDay(now).AddDate(0, 0, 7)
	var upcoming []struct {
		BookingNumber string
		CustomerName  string
		HallName      string
		EventDate     time.Time
		SlotName      string
	}
	config.DB.Raw(`
		SELECT bookings.booking_number,
			customers.name AS customer_name,
			halls.name AS hall_name,
			booking_slots.event_date,
			COALESCE(slots.name, '') AS slot_name
		FROM booking_slots
		JOIN bookings ON bookings.id = booking_slots.booking_id
		JOIN customers ON customers.id = bookings.customer_id
		JOIN halls ON halls.id = booking_slots.hall_id
		LEFT JOIN slots ON slots.id = booking_slots.slot_id
		WHERE bookings.venue_id = ?
		AND bookings.status = 'confirmed'
		AND booking_slots.event_date BETWEEN ? AND ?
		ORDER BY booking_slots.event_date
		LIMIT 10
	`, venueUUID, utils.BeginningOfDay(now), weekAhead).Scan(&upcoming)

	for _, u := range upcoming {
		overview.UpcomingEvents = append(overview.UpcomingEvents, UpcomingEvent{
			BookingNumber: u.BookingNumber,
			CustomerName:  u.CustomerName,
			HallName:      u.HallName,
			EventDate:     utils.FormatDateOnly(u.EventDate),
			SlotName:      u.SlotName,
		})
	}

	var recent []struct {
		BookingNumber string
		CustomerName  string
		HallName      string
		TotalAmount   float64
		BalanceDue    float64
		BookingDate   time.Time
	}
	config.DB.Raw(`
		SELECT bookings.booking_number,
			customers.name AS customer_name,
			halls.name AS hall_name,
			bookings.total_amount,
			bookings.balance_due,
			bookings.booking_date
		FROM bookings
		JOIN customers ON customers.id = bookings.customer_id
		JOIN halls ON halls.id = bookings.hall_id
		WHERE bookings.venue_id = ?
		ORDER BY bookings.booking_date DESC
		LIMIT 10
	`, venueUUID).Scan(&recent)

	for _, r := range recent {
		overview.RecentBookings = append(overview.RecentBookings, RecentBooking{
			BookingNumber: r.BookingNumber,
			CustomerName:  r.CustomerName,
			HallName:      r.HallName,
			TotalAmount:   r.TotalAmount,
			BalanceDue:    r.BalanceDue,
			BookedOn:      utils.FormatDateOnly(r.BookingDate),
		})
	}

	c.JSON(http.StatusOK, overview)
}
