package services

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"venuepro-backend/models"
)

func testCatalogAndMasters() (map[uuid.UUID]models.Service, *MasterIndex, uuid.UUID, uuid.UUID) {
	cateringID := uuid.New()
	decorID := uuid.New()

	catalog := map[uuid.UUID]models.Service{
		cateringID: {ID: cateringID, Name: "Catering", Price: 500, TaxCode: "GST18", HSNCode: "996334"},
		decorID:    {ID: decorID, Name: "Decoration", Price: 200, TaxCode: "", HSNCode: "998596"},
	}
	masters := NewMasterIndex(
		[]models.TaxRecord{{Code: "GST18", Rate: fptr(18)}},
		nil,
	)
	return catalog, masters, cateringID, decorID
}

func TestBuildServiceLines(t *testing.T) {
	catalog, masters, cateringID, decorID := testCatalogAndMasters()

	tests := []struct {
		name      string
		inputs    []ServiceLineInput
		wantGross float64
		wantLines int
	}{
		{
			name:      "Taxed line adds tax on top",
			inputs:    []ServiceLineInput{{ServiceID: cateringID}},
			wantGross: 590,
			wantLines: 1,
		},
		{
			name:      "Exempt line ignores a resolvable tax code",
			inputs:    []ServiceLineInput{{ServiceID: cateringID, TaxExempt: true}},
			wantGross: 500,
			wantLines: 1,
		},
		{
			name:      "Missing tax code means no tax",
			inputs:    []ServiceLineInput{{ServiceID: decorID}},
			wantGross: 200,
			wantLines: 1,
		},
		{
			name:      "Price override replaces catalog price",
			inputs:    []ServiceLineInput{{ServiceID: cateringID, UnitPrice: fptr(1000)}},
			wantGross: 1180,
			wantLines: 1,
		},
		{
			name:      "Negative override floors at zero",
			inputs:    []ServiceLineInput{{ServiceID: cateringID, UnitPrice: fptr(-10)}},
			wantGross: 0,
			wantLines: 1,
		},
		{
			name:      "Unknown service contributes nothing",
			inputs:    []ServiceLineInput{{ServiceID: uuid.New()}},
			wantGross: 0,
			wantLines: 0,
		},
		{
			name: "Mixed basket sums line gross amounts",
			inputs: []ServiceLineInput{
				{ServiceID: cateringID},
				{ServiceID: decorID},
				{ServiceID: uuid.New()},
			},
			wantGross: 790,
			wantLines: 2,
		},
		{
			name:      "Empty basket",
			inputs:    nil,
			wantGross: 0,
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, gross := BuildServiceLines(tt.inputs, catalog, masters)
			if len(lines) != tt.wantLines {
				t.Fatalf("BuildServiceLines() returned %d lines, want %d", len(lines), tt.wantLines)
			}
			if math.Abs(gross-tt.wantGross) > 1e-9 {
				t.Errorf("BuildServiceLines() gross = %v, want %v", gross, tt.wantGross)
			}
		})
	}
}

func TestBuildServiceLinesLineFields(t *testing.T) {
	catalog, masters, cateringID, _ := testCatalogAndMasters()

	lines, _ := BuildServiceLines([]ServiceLineInput{{ServiceID: cateringID}}, catalog, masters)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if line.ServiceName != "Catering" {
		t.Errorf("ServiceName = %q, want Catering", line.ServiceName)
	}
	if line.HSNCode != "996334" {
		t.Errorf("HSNCode = %q, want 996334", line.HSNCode)
	}
	if line.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", line.Quantity)
	}
	if line.UnitPrice != 500 {
		t.Errorf("UnitPrice = %v, want 500", line.UnitPrice)
	}
	if line.CGST != 45 || line.SGST != 45 {
		t.Errorf("CGST/SGST = %v/%v, want 45/45", line.CGST, line.SGST)
	}
	if line.TotalPrice != 590 {
		t.Errorf("TotalPrice = %v, want 590", line.TotalPrice)
	}
}

func TestBuildServiceLinesRoundsSumNotLines(t *testing.T) {
	// Two lines of 10.004 gross each: rounding per line would give 20.00,
	// rounding the sum gives 20.01.
	svcID := uuid.New()
	catalog := map[uuid.UUID]models.Service{
		svcID: {ID: svcID, Name: "Odd", Price: 10.004, TaxCode: ""},
	}
	masters := NewMasterIndex(nil, nil)

	inputs := []ServiceLineInput{
		{ServiceID: svcID},
		{ServiceID: svcID},
	}
	_, gross := BuildServiceLines(inputs, catalog, masters)
	if gross != 20.01 {
		t.Errorf("gross = %v, want 20.01", gross)
	}
}
