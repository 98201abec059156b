// services/line_items.go
package services

import (
	"github.com/google/uuid"

	"venuepro-backend/models"
	"venuepro-backend/utils"
)

// ServiceLineInput is one selected add-on service on a booking draft.
// UnitPrice nil means "bill at catalog price"; the operator may type a
// different price per line. Quantity is always 1 in this domain.
type ServiceLineInput struct {
	ServiceID uuid.UUID
	UnitPrice *float64
	TaxExempt bool
}

// BuildServiceLines prices the selected services tax-inclusive. Each line
// resolves its tax through the service's tax code unless the line is marked
// exempt — exemption wins unconditionally, even over a code that resolves to
// a non-zero rate. Unknown service ids contribute nothing rather than
// failing the computation. The returned gross total is the rounded sum of
// the unrounded line amounts.
func BuildServiceLines(inputs []ServiceLineInput, catalog map[uuid.UUID]models.Service, masters *MasterIndex) ([]models.BookingService, float64) {
	lines := make([]models.BookingService, 0, len(inputs))
	var gross float64

	for _, in := range inputs {
		svc, ok := catalog[in.ServiceID]
		if !ok {
			continue
		}

		unit := svc.Price
		if in.UnitPrice != nil {
			unit = utils.NonNegative(*in.UnitPrice)
		}

		rate := 0.0
		if !in.TaxExempt {
			if r := masters.ServiceTaxRate(&svc); r != nil {
				rate = *r
			}
		}

		lineTax := unit * rate
		lineGross := unit + lineTax
		gross += lineGross

		lines = append(lines, models.BookingService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			HSNCode:     svc.HSNCode,
			Quantity:    1,
			UnitPrice:   utils.Round2(unit),
			TaxExempt:   in.TaxExempt,
			CGST:        utils.Round2(lineTax / 2),
			SGST:        utils.Round2(lineTax / 2),
			TotalPrice:  utils.Round2(lineGross),
		})
	}

	return lines, utils.Round2(gross)
}
