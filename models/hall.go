package models

import (
	"github.com/google/uuid"
)

type Hall struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Capacity    int     `gorm:"default:0"`
	SlotRate    float64 `gorm:"type:decimal(10,2);not null"`
	// FullDayRate replaces two per-slot charges when configured; nil means
	// the hall is billed per slot only.
	FullDayRate *float64 `gorm:"type:decimal(10,2)"`
	HSNCode     string   `gorm:"type:varchar(20)"`
	IsActive    bool     `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:HallID"`
}

// Slot is a named bookable time window of a venue (e.g. Morning, Evening).
type Slot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	StartTime string    `gorm:"type:varchar(10)"` // "09:00"
	EndTime   string    `gorm:"type:varchar(10)"` // "15:00"
	SortOrder int       `gorm:"default:0"`
	IsActive  bool      `gorm:"default:true"`
}

type EventType struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"not null"`
	IsActive bool      `gorm:"default:true"`
}
