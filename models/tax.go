package models

import (
	"github.com/google/uuid"
)

// TaxRecord maps a tax code to either a single combined rate or separate
// CGST/SGST components. Legacy masters store rates as percentages or as
// fractions; services.ResolveTaxRate normalizes them.
type TaxRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Code        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_venue_tax_code,priority:2"`
	Description string
	Rate        *float64 `gorm:"type:decimal(8,4)"`
	CGSTRate    *float64 `gorm:"type:decimal(8,4)"`
	SGSTRate    *float64 `gorm:"type:decimal(8,4)"`
	IsActive    bool     `gorm:"default:true"`
}

func (t *TaxRecord) TableName() string {
	return "tax_records"
}

// HsnCode joins an HSN classification code to a tax code. Halls reference
// tax indirectly through their HSN code.
type HsnCode struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	VenueID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Code        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_venue_hsn_code,priority:2"`
	Description string
	TaxCode     string `gorm:"type:varchar(20)"`
	IsActive    bool   `gorm:"default:true"`
}
