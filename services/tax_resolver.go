// services/tax_resolver.go
package services

import (
	"math"
	"strings"

	"venuepro-backend/models"
)

// Legacy tax masters store rates inconsistently: "18" meaning 18% next to
// "0.18" meaning the same thing. Anything above this boundary is read as a
// percentage; at or below it, as an already-normalized fraction. No tax in
// this domain legitimately exceeds 150%.
const percentBoundary = 1.5

// NormalizeRate converts a raw tax value into a fraction. Returns nil for
// non-finite input.
func NormalizeRate(raw float64) *float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return nil
	}
	if raw > percentBoundary {
		raw = raw / 100
	}
	return &raw
}

// ResolveTaxRate derives a normalized tax fraction from a tax record.
// The combined rate wins when set; otherwise the CGST and SGST components
// are summed when both are present and positive. Returns nil when no rate
// can be derived — callers must treat nil as "no tax", not as 0%: the
// amounts match but the invoice hides the % label for untaxed lines.
func ResolveTaxRate(rec *models.TaxRecord) *float64 {
	if rec == nil {
		return nil
	}
	if rec.Rate != nil {
		return NormalizeRate(*rec.Rate)
	}
	if rec.CGSTRate != nil && rec.SGSTRate != nil {
		sum := *rec.CGSTRate + *rec.SGSTRate
		if sum > 0 {
			return NormalizeRate(sum)
		}
	}
	return nil
}

// MasterIndex holds tax and HSN masters keyed by normalized code, built once
// per recompute and handed to the pricing functions.
type MasterIndex struct {
	taxByCode map[string]models.TaxRecord
	hsnByCode map[string]models.HsnCode
}

func NewMasterIndex(taxes []models.TaxRecord, hsns []models.HsnCode) *MasterIndex {
	idx := &MasterIndex{
		taxByCode: make(map[string]models.TaxRecord, len(taxes)),
		hsnByCode: make(map[string]models.HsnCode, len(hsns)),
	}
	for _, t := range taxes {
		if code := normalizeCode(t.Code); code != "" {
			idx.taxByCode[code] = t
		}
	}
	for _, h := range hsns {
		if code := normalizeCode(h.Code); code != "" {
			idx.hsnByCode[code] = h
		}
	}
	return idx
}

// TaxRate resolves a tax code to a fraction, nil when the code is unknown
// or carries no derivable rate.
func (m *MasterIndex) TaxRate(taxCode string) *float64 {
	if m == nil {
		return nil
	}
	rec, ok := m.taxByCode[normalizeCode(taxCode)]
	if !ok {
		return nil
	}
	return ResolveTaxRate(&rec)
}

// HallTaxRate walks the hall → HSN code → tax record chain.
func (m *MasterIndex) HallTaxRate(hall *models.Hall) *float64 {
	if m == nil || hall == nil {
		return nil
	}
	hsn, ok := m.hsnByCode[normalizeCode(hall.HSNCode)]
	if !ok {
		return nil
	}
	return m.TaxRate(hsn.TaxCode)
}

// ServiceTaxRate resolves a service's tax code directly.
func (m *MasterIndex) ServiceTaxRate(svc *models.Service) *float64 {
	if m == nil || svc == nil {
		return nil
	}
	return m.TaxRate(svc.TaxCode)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
