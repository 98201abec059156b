package models

import (
	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Category    string  `gorm:"default:'General'"`
	// TaxCode links to a TaxRecord; empty means the service carries no tax.
	TaxCode string `gorm:"type:varchar(20)"`
	// HSNCode (SAC for services) is carried onto booking lines for the GST
	// summary report; it plays no part in tax resolution.
	HSNCode  string `gorm:"type:varchar(20)"`
	IsActive bool   `gorm:"default:true"`

	BookingServices []BookingService `gorm:"foreignKey:ServiceID"`
}
