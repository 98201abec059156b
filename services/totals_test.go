package services

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"venuepro-backend/models"
)

func totalsFixture() (*models.Hall, map[uuid.UUID]models.Service, *MasterIndex, uuid.UUID) {
	hall := &models.Hall{SlotRate: 1000, FullDayRate: fptr(1800), HSNCode: "996331"}

	cateringID := uuid.New()
	catalog := map[uuid.UUID]models.Service{
		cateringID: {ID: cateringID, Name: "Catering", Price: 500, TaxCode: "GST18"},
	}
	masters := NewMasterIndex(
		[]models.TaxRecord{{Code: "GST18", Rate: fptr(18)}},
		[]models.HsnCode{{Code: "996331", TaxCode: "GST18"}},
	)
	return hall, catalog, masters, cateringID
}

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAssembleTotals(t *testing.T) {
	hall, catalog, masters, cateringID := totalsFixture()

	t.Run("Rent, service and hall tax compose", func(t *testing.T) {
		draft := BookingDraft{
			Hall: hall,
			Slots: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
			},
			ServiceLines: []ServiceLineInput{{ServiceID: cateringID}},
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.HallRent != 1000 {
			t.Errorf("HallRent = %v, want 1000", got.HallRent)
		}
		if got.ServicesCost != 590 {
			t.Errorf("ServicesCost = %v, want 590", got.ServicesCost)
		}
		// Hall tax applies to the rent only; service tax is already inside
		// the line totals.
		if got.CGST != 90 || got.SGST != 90 {
			t.Errorf("CGST/SGST = %v/%v, want 90/90", got.CGST, got.SGST)
		}
		if got.HallTaxRate == nil || *got.HallTaxRate != 0.18 {
			t.Errorf("HallTaxRate = %v, want 0.18", got.HallTaxRate)
		}
		if !approxEq(got.TotalAmount, 1770) {
			t.Errorf("TotalAmount = %v, want 1770", got.TotalAmount)
		}
		if !approxEq(got.BalanceDue, 1770) {
			t.Errorf("BalanceDue = %v, want 1770", got.BalanceDue)
		}
	})

	t.Run("Tax exemption zeroes hall tax and hides the rate", func(t *testing.T) {
		draft := BookingDraft{
			Hall:      hall,
			Slots:     []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			TaxExempt: true,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.CGST != 0 || got.SGST != 0 {
			t.Errorf("CGST/SGST = %v/%v, want 0/0", got.CGST, got.SGST)
		}
		if got.HallTaxRate != nil {
			t.Errorf("HallTaxRate = %v, want nil", *got.HallTaxRate)
		}
		if got.TotalAmount != 1000 {
			t.Errorf("TotalAmount = %v, want 1000", got.TotalAmount)
		}
	})

	t.Run("Discount exceeding subtotal clamps total at zero", func(t *testing.T) {
		draft := BookingDraft{
			Hall:     hall,
			Slots:    []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			Discount: 5000,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.TotalAmount != 0 {
			t.Errorf("TotalAmount = %v, want 0", got.TotalAmount)
		}
		if got.BalanceDue != 0 {
			t.Errorf("BalanceDue = %v, want 0", got.BalanceDue)
		}
	})

	t.Run("Negative discount is ignored", func(t *testing.T) {
		draft := BookingDraft{
			Hall:     hall,
			Slots:    []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			Discount: -100,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.Discount != 0 {
			t.Errorf("Discount = %v, want 0", got.Discount)
		}
		if !approxEq(got.TotalAmount, 1180) {
			t.Errorf("TotalAmount = %v, want 1180", got.TotalAmount)
		}
	})

	t.Run("Advance clamps to the payable window", func(t *testing.T) {
		draft := BookingDraft{
			Hall:             hall,
			Slots:            []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			TaxExempt:        true,
			RequestedAdvance: 99999,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.Advance != 1000 {
			t.Errorf("Advance = %v, want 1000", got.Advance)
		}
		if got.BalanceDue != 0 {
			t.Errorf("BalanceDue = %v, want 0", got.BalanceDue)
		}
	})

	t.Run("Negative advance clamps to zero", func(t *testing.T) {
		draft := BookingDraft{
			Hall:             hall,
			Slots:            []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			TaxExempt:        true,
			RequestedAdvance: -500,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.Advance != 0 {
			t.Errorf("Advance = %v, want 0", got.Advance)
		}
		if got.BalanceDue != 1000 {
			t.Errorf("BalanceDue = %v, want 1000", got.BalanceDue)
		}
	})

	t.Run("Existing payments shrink the payable window", func(t *testing.T) {
		draft := BookingDraft{
			Hall:             hall,
			Slots:            []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			TaxExempt:        true,
			ExistingPaid:     700,
			RequestedAdvance: 500,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.MaxAdditionalPayable != 300 {
			t.Errorf("MaxAdditionalPayable = %v, want 300", got.MaxAdditionalPayable)
		}
		if got.Advance != 300 {
			t.Errorf("Advance = %v, want 300", got.Advance)
		}
		if got.BalanceDue != 0 {
			t.Errorf("BalanceDue = %v, want 0", got.BalanceDue)
		}
	})

	t.Run("Overpaid booking never goes negative", func(t *testing.T) {
		draft := BookingDraft{
			Hall:             hall,
			Slots:            []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			TaxExempt:        true,
			ExistingPaid:     2000,
			RequestedAdvance: 100,
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.MaxAdditionalPayable != 0 {
			t.Errorf("MaxAdditionalPayable = %v, want 0", got.MaxAdditionalPayable)
		}
		if got.Advance != 0 {
			t.Errorf("Advance = %v, want 0", got.Advance)
		}
		if got.BalanceDue != 0 {
			t.Errorf("BalanceDue = %v, want 0", got.BalanceDue)
		}
	})

	t.Run("Manual rent flows through the hall tax", func(t *testing.T) {
		draft := BookingDraft{
			Hall:       hall,
			Slots:      []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			ManualRent: fptr(2000),
		}
		got := AssembleTotals(draft, catalog, masters)

		if got.HallRent != 2000 {
			t.Errorf("HallRent = %v, want 2000", got.HallRent)
		}
		if got.CGST != 180 || got.SGST != 180 {
			t.Errorf("CGST/SGST = %v/%v, want 180/180", got.CGST, got.SGST)
		}
		if !approxEq(got.TotalAmount, 2360) {
			t.Errorf("TotalAmount = %v, want 2360", got.TotalAmount)
		}
	})
}
