package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type stubMasterReader struct {
	rows map[string][]MasterRow
	err  error
}

func (s *stubMasterReader) Read(ctx context.Context, venueID uuid.UUID, tables []string) (map[string][]MasterRow, error) {
	return s.rows, s.err
}

func TestMapTaxRow(t *testing.T) {
	tests := []struct {
		name     string
		row      MasterRow
		wantNil  bool
		wantCode string
		wantRate *float64
	}{
		{
			name:     "Canonical keys",
			row:      MasterRow{"code": "GST18", "rate": 18.0},
			wantCode: "GST18",
			wantRate: fptr(18),
		},
		{
			name:     "Snake case variant",
			row:      MasterRow{"tax_code": "GST5", "tax_rate": 5.0},
			wantCode: "GST5",
			wantRate: fptr(5),
		},
		{
			name:     "Camel case variant with string rate",
			row:      MasterRow{"taxCode": "GST12", "taxRate": "12"},
			wantCode: "GST12",
			wantRate: fptr(12),
		},
		{
			name:     "Key case differences tolerated",
			row:      MasterRow{"CODE": "GST28", "Rate": 28.0},
			wantCode: "GST28",
			wantRate: fptr(28),
		},
		{
			name:     "Rate from integer",
			row:      MasterRow{"code": "GST18", "rate": 18},
			wantCode: "GST18",
			wantRate: fptr(18),
		},
		{
			name:     "Components without combined rate",
			row:      MasterRow{"code": "GST18", "cgst": 9.0, "sgst": 9.0},
			wantCode: "GST18",
			wantRate: nil,
		},
		{name: "No usable code", row: MasterRow{"rate": 18.0}, wantNil: true},
		{name: "Blank code", row: MasterRow{"code": "  "}, wantNil: true},
		{name: "Code of wrong type", row: MasterRow{"code": 42}, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTaxRow(tt.row)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("MapTaxRow() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("MapTaxRow() = nil, want record")
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if (got.Rate == nil) != (tt.wantRate == nil) {
				t.Fatalf("Rate = %v, want %v", got.Rate, tt.wantRate)
			}
			if got.Rate != nil && *got.Rate != *tt.wantRate {
				t.Errorf("Rate = %v, want %v", *got.Rate, *tt.wantRate)
			}
		})
	}
}

func TestMapHsnRow(t *testing.T) {
	got := MapHsnRow(MasterRow{"hsn_code": " 996331 ", "tax": "GST18", "desc": "Hall rental"})
	if got == nil {
		t.Fatal("MapHsnRow() = nil, want record")
	}
	if got.Code != "996331" {
		t.Errorf("Code = %q, want 996331", got.Code)
	}
	if got.TaxCode != "GST18" {
		t.Errorf("TaxCode = %q, want GST18", got.TaxCode)
	}
	if got.Description != "Hall rental" {
		t.Errorf("Description = %q, want Hall rental", got.Description)
	}

	if MapHsnRow(MasterRow{"tax": "GST18"}) != nil {
		t.Error("MapHsnRow() without a code must return nil")
	}
}

func TestMapHallRow(t *testing.T) {
	got := MapHallRow(MasterRow{
		"hall_name":     "Grand Hall",
		"slot_rate":     "1000",
		"full_day_rate": 1800.0,
		"hsn":           "996331",
		"pax":           250,
	})
	if got == nil {
		t.Fatal("MapHallRow() = nil, want record")
	}
	if got.Name != "Grand Hall" {
		t.Errorf("Name = %q, want Grand Hall", got.Name)
	}
	if got.SlotRate != 1000 {
		t.Errorf("SlotRate = %v, want 1000", got.SlotRate)
	}
	if got.FullDayRate == nil || *got.FullDayRate != 1800 {
		t.Errorf("FullDayRate = %v, want 1800", got.FullDayRate)
	}
	if got.Capacity != 250 {
		t.Errorf("Capacity = %d, want 250", got.Capacity)
	}
}

func TestMapServiceRow(t *testing.T) {
	got := MapServiceRow(MasterRow{
		"serviceName": "Catering",
		"basePrice":   500.0,
		"sac":         "996334",
		"tax":         "GST18",
	})
	if got == nil {
		t.Fatal("MapServiceRow() = nil, want record")
	}
	if got.Name != "Catering" {
		t.Errorf("Name = %q, want Catering", got.Name)
	}
	if got.Price != 500 {
		t.Errorf("Price = %v, want 500", got.Price)
	}
	if got.HSNCode != "996334" {
		t.Errorf("HSNCode = %q, want 996334", got.HSNCode)
	}
	if got.Category != "General" {
		t.Errorf("Category = %q, want General default", got.Category)
	}
}

func TestLoadMasterIndex(t *testing.T) {
	reader := &stubMasterReader{
		rows: map[string][]MasterRow{
			TableTaxRecords: {
				{"code": "GST18", "rate": 18.0},
				{"rate": 5.0}, // no code, skipped
			},
			TableHsnCodes: {
				{"hsnCode": "996331", "taxCode": "GST18"},
			},
		},
	}

	idx, err := LoadMasterIndex(context.Background(), reader, uuid.New())
	if err != nil {
		t.Fatalf("LoadMasterIndex() unexpected error: %v", err)
	}

	if got := idx.TaxRate("GST18"); got == nil || *got != 0.18 {
		t.Errorf("TaxRate(GST18) = %v, want 0.18", got)
	}
	if got := idx.TaxRate("GST5"); got != nil {
		t.Errorf("TaxRate(GST5) = %v, want nil for skipped row", *got)
	}
}

func TestLoadMasterIndexReaderFailure(t *testing.T) {
	readErr := errors.New("relation does not exist")
	reader := &stubMasterReader{err: readErr}

	if _, err := LoadMasterIndex(context.Background(), reader, uuid.New()); !errors.Is(err, readErr) {
		t.Errorf("LoadMasterIndex() error = %v, want %v", err, readErr)
	}
}
