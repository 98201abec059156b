package models

import (
	"github.com/google/uuid"
)

type Venue struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                  string    `gorm:"not null"`
	Address               string
	GSTIN                 string
	Settings              JSONB `gorm:"type:jsonb;default:'{}'"`
	EventReminders        bool  `gorm:"default:true"`
	PaymentReminders      bool  `gorm:"default:true"`
	WhatsAppNotifications bool  `gorm:"default:false"`
	SMSNotifications      bool  `gorm:"default:false"`

	Users             []User             `gorm:"foreignKey:VenueID"`
	Customers         []Customer         `gorm:"foreignKey:VenueID"`
	Halls             []Hall             `gorm:"foreignKey:VenueID"`
	Services          []Service          `gorm:"foreignKey:VenueID"`
	Bookings          []Booking          `gorm:"foreignKey:VenueID"`
	ReminderTemplates []ReminderTemplate `gorm:"foreignKey:VenueID"`
}
