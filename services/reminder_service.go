// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"venuepro-backend/models"
	"venuepro-backend/utils"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var venues []models.Venue
	if err := s.db.Find(&venues).Error; err != nil {
		log.Printf("Failed to fetch venues: %v", err)
		return
	}

	for _, venue := range venues {
		if !venue.EventReminders && !venue.PaymentReminders {
			continue
		}
		s.ProcessVenueReminders(venue.ID, venue.EventReminders, venue.PaymentReminders)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessVenueReminders(venueID uuid.UUID, eventOn, paymentOn bool) {
	// Bookings with an event in the next 3 days
	if eventOn {
		bookings, err := s.getUpcomingBookings(venueID, 3)
		if err != nil {
			log.Printf("Venue %s: Failed to get upcoming bookings: %v", venueID, err)
		} else {
			s.sendReminders(venueID, bookings, "event")
		}
	}

	// Bookings with an outstanding balance and an event in the next 7 days
	if paymentOn {
		bookings, err := s.getDueBookings(venueID, 7)
		if err != nil {
			log.Printf("Venue %s: Failed to get due bookings: %v", venueID, err)
		} else {
			s.sendReminders(venueID, bookings, "payment")
		}
	}
}

type reminderBooking struct {
	models.Booking
	CustomerName  string
	CustomerPhone string
	EventDate     time.Time
}

func (s *ReminderService) getUpcomingBookings(venueID uuid.UUID, days int) ([]reminderBooking, error) {
	now := utils.BeginningOfDay(time.Now())
	until := now.AddDate(0, 0, days)

	var bookings []reminderBooking
	err := s.db.Raw(`
		SELECT DISTINCT ON (bookings.id) bookings.*,
			customers.name AS customer_name,
			customers.phone AS customer_phone,
			booking_slots.event_date AS event_date
		FROM bookings
		JOIN booking_slots ON booking_slots.booking_id = bookings.id
		JOIN customers ON customers.id = bookings.customer_id
		WHERE bookings.venue_id = ?
		AND bookings.status = 'confirmed'
		AND booking_slots.event_date BETWEEN ? AND ?
		ORDER BY bookings.id, booking_slots.event_date
	`, venueID, now, until).Scan(&bookings).Error
	return bookings, err
}

func (s *ReminderService) getDueBookings(venueID uuid.UUID, days int) ([]reminderBooking, error) {
	now := utils.BeginningOfDay(time.Now())
	until := now.AddDate(0, 0, days)

	var bookings []reminderBooking
	err := s.db.Raw(`
		SELECT DISTINCT ON (bookings.id) bookings.*,
			customers.name AS customer_name,
			customers.phone AS customer_phone,
			booking_slots.event_date AS event_date
		FROM bookings
		JOIN booking_slots ON booking_slots.booking_id = bookings.id
		JOIN customers ON customers.id = bookings.customer_id
		WHERE bookings.venue_id = ?
		AND bookings.status = 'confirmed'
		AND bookings.balance_due > 0
		AND booking_slots.event_date BETWEEN ? AND ?
		ORDER BY bookings.id, booking_slots.event_date
	`, venueID, now, until).Scan(&bookings).Error
	return bookings, err
}

func (s *ReminderService) sendReminders(venueID uuid.UUID, bookings []reminderBooking, reminderType string) {
	// Get active template for this reminder type
	var template models.ReminderTemplate
	if err := s.db.Where("venue_id = ? AND type = ? AND is_active = true", venueID, reminderType).
		First(&template).Error; err != nil {
		log.Printf("Venue %s: No active template for %s: %v", venueID, reminderType, err)
		return
	}

	for _, booking := range bookings {
		// Replace placeholders in the template
		message := strings.ReplaceAll(template.Message, "[CustomerName]", booking.CustomerName)
		message = strings.ReplaceAll(message, "[EventDate]", utils.FormatDateOnly(booking.EventDate))
		message = strings.ReplaceAll(message, "[BookingNumber]", booking.BookingNumber)

		// Determine channel (WhatsApp if available, else SMS)
		channel := "sms"
		var to string

		// Use WhatsApp if phone is in E.164 format and starts with '+'
		if strings.HasPrefix(booking.CustomerPhone, "+") {
			to = "whatsapp:" + booking.CustomerPhone
			channel = "whatsapp"
		} else {
			to = booking.CustomerPhone
		}

		// Send message via Twilio
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)

		// Use WhatsApp sender if available
		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send message to %s: %v", booking.CustomerPhone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Message sent to %s, SID: %s", booking.CustomerPhone, *resp.Sid)
		} else {
			log.Printf("Message sent to %s, but no SID returned", booking.CustomerPhone)
		}

		// Log the reminder
		reminderLog := models.ReminderLog{
			VenueID:      venueID,
			CustomerID:   booking.CustomerID,
			BookingID:    booking.Booking.ID,
			TemplateID:   template.ID,
			Type:         reminderType,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Printf("Failed to log reminder for booking %s: %v", booking.Booking.ID, err)
		}
	}
}
