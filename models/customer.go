package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name          string `gorm:"not null"`
	Phone         string `gorm:"not null;uniqueIndex:idx_venue_phone,priority:2"`
	Email         string
	Address       string
	Notes         string
	TotalBookings int     `gorm:"default:0"`
	TotalSpent    float64 `gorm:"type:decimal(10,2);default:0.0"`
	LastBooking   *time.Time
	IsActive      bool `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:CustomerID"`

	gorm.Model
}
