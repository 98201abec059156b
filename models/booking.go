package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID         uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	BookingNumber string    `gorm:"uniqueIndex;not null"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	HallID        uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingDate   time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	HallRent     float64 `gorm:"type:decimal(10,2);not null"`
	ServicesCost float64 `gorm:"type:decimal(10,2);default:0.0"`
	CGST         float64 `gorm:"type:decimal(10,2);default:0.0"`
	SGST         float64 `gorm:"type:decimal(10,2);default:0.0"`
	Discount     float64 `gorm:"type:decimal(10,2);default:0.0"`
	TaxExempt    bool    `gorm:"default:false"`
	TotalAmount  float64 `gorm:"type:decimal(10,2);not null"`
	PaidAmount   float64 `gorm:"type:decimal(10,2);default:0.0"`
	BalanceDue   float64 `gorm:"type:decimal(10,2);default:0.0"`

	Status        string `gorm:"type:varchar(20);default:'confirmed'"` // confirmed, completed, cancelled
	PaymentMode   string `gorm:"type:varchar(20)"`
	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'"` // paid, unpaid, partial
	Notes         string

	Slots    []BookingSlot    `gorm:"foreignKey:BookingID"`
	Services []BookingService `gorm:"foreignKey:BookingID"`
}

// BookingSlot is one booked (date, slot) pair. A nil SlotID records a
// full-day booking and blocks every slot of that date.
type BookingSlot struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BookingID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	HallID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	EventDate   time.Time  `gorm:"type:date;index;not null"`
	SlotID      *uuid.UUID `gorm:"type:uuid"`
	EventTypeID uuid.UUID  `gorm:"type:uuid"`
	Guests      int        `gorm:"default:0"`
}

func (s *BookingSlot) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type BookingService struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceName string    `gorm:"not null"`
	HSNCode     string    `gorm:"type:varchar(20)"`
	Quantity    int       `gorm:"default:1"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null"`
	TaxExempt   bool      `gorm:"default:false"`
	CGST        float64   `gorm:"type:decimal(10,2);default:0.0"`
	SGST        float64   `gorm:"type:decimal(10,2);default:0.0"`
	TotalPrice  float64   `gorm:"type:decimal(10,2);not null"`
}

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID   uuid.UUID `gorm:"type:uuid;index;not null"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Mode      string    `gorm:"type:varchar(20)"`
	Reference string
	PaidAt    time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
