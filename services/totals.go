// services/totals.go
package services

import (
	"github.com/google/uuid"

	"venuepro-backend/models"
	"venuepro-backend/utils"
)

// BookingDraft carries everything the totals computation needs as explicit
// inputs. Nothing is read from ambient state.
type BookingDraft struct {
	Hall         *models.Hall
	Slots        []SlotPair
	ServiceLines []ServiceLineInput
	// ManualRent replaces the computed hall rent when the operator types one.
	ManualRent *float64
	Discount   float64
	// TaxExempt zeroes the hall tax for the whole booking.
	TaxExempt        bool
	RequestedAdvance float64
	// ExistingPaid is the sum of payments already recorded against the
	// booking; zero for a fresh draft.
	ExistingPaid float64
}

// Totals is the assembled, persistable outcome of one recompute.
type Totals struct {
	HallRent     float64 `json:"hallRent"`
	ServicesCost float64 `json:"servicesCost"`
	// HallTaxRate is nil when the hall carries no resolvable tax; the UI
	// hides the % label in that case rather than showing 0%.
	HallTaxRate *float64 `json:"hallTaxRate"`
	CGST        float64  `json:"cgst"`
	SGST        float64  `json:"sgst"`
	Discount    float64  `json:"discount"`
	TotalAmount float64  `json:"totalAmount"`
	// MaxAdditionalPayable caps what can still be collected on the booking.
	MaxAdditionalPayable float64 `json:"maxAdditionalPayable"`
	Advance              float64 `json:"advance"`
	BalanceDue           float64 `json:"balanceDue"`

	Lines []models.BookingService `json:"lines"`
}

// AssembleTotals composes rent, service lines, hall tax, discount and the
// advance clamp into the final booking figures. Service tax is already
// embedded per line; the hall tax is computed on the hall rent alone, split
// into equal CGST/SGST halves. The discount is attributed to the hall line
// only — the invoice never discounts services — which is arithmetically the
// same total but fixes the presentation.
func AssembleTotals(draft BookingDraft, catalog map[uuid.UUID]models.Service, masters *MasterIndex) Totals {
	hallRent := utils.Round2(ComputeRent(draft.Hall, draft.Slots, draft.ManualRent))
	lines, servicesCost := BuildServiceLines(draft.ServiceLines, catalog, masters)

	hallRate := masters.HallTaxRate(draft.Hall)
	hallTax := 0.0
	if !draft.TaxExempt && hallRate != nil {
		hallTax = *hallRate * hallRent
	}
	if draft.TaxExempt {
		hallRate = nil
	}

	discount := utils.NonNegative(draft.Discount)
	total := utils.Round2(utils.NonNegative(hallRent + servicesCost + hallTax - discount))

	existingPaid := utils.NonNegative(draft.ExistingPaid)
	maxPayable := utils.Round2(utils.NonNegative(total - existingPaid))
	advance := utils.Round2(utils.Clamp(draft.RequestedAdvance, 0, maxPayable))
	balance := utils.Round2(utils.NonNegative(total - existingPaid - advance))

	return Totals{
		HallRent:             hallRent,
		ServicesCost:         servicesCost,
		HallTaxRate:          hallRate,
		CGST:                 utils.Round2(hallTax / 2),
		SGST:                 utils.Round2(hallTax / 2),
		Discount:             discount,
		TotalAmount:          total,
		MaxAdditionalPayable: maxPayable,
		Advance:              advance,
		BalanceDue:           balance,
		Lines:                lines,
	}
}
