package services

import (
	"math"
	"testing"

	"venuepro-backend/models"
)

func fptr(v float64) *float64 { return &v }

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want *float64
	}{
		{name: "Percentage form", raw: 18, want: fptr(0.18)},
		{name: "Fraction form", raw: 0.18, want: fptr(0.18)},
		{name: "Boundary stays a fraction", raw: 1.5, want: fptr(1.5)},
		{name: "Just above boundary divides", raw: 1.51, want: fptr(0.0151)},
		{name: "Zero", raw: 0, want: fptr(0)},
		{name: "Five percent", raw: 5, want: fptr(0.05)},
		{name: "NaN rejected", raw: math.NaN(), want: nil},
		{name: "Infinity rejected", raw: math.Inf(1), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRate(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("NormalizeRate(%v) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-12 {
				t.Errorf("NormalizeRate(%v) = %v, want %v", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestResolveTaxRate(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.TaxRecord
		want *float64
	}{
		{name: "Nil record means no tax", rec: nil, want: nil},
		{
			name: "Combined rate wins over components",
			rec:  &models.TaxRecord{Rate: fptr(18), CGSTRate: fptr(6), SGSTRate: fptr(6)},
			want: fptr(0.18),
		},
		{
			name: "Components summed when combined missing",
			rec:  &models.TaxRecord{CGSTRate: fptr(9), SGSTRate: fptr(9)},
			want: fptr(0.18),
		},
		{
			name: "Fractional components",
			rec:  &models.TaxRecord{CGSTRate: fptr(0.025), SGSTRate: fptr(0.025)},
			want: fptr(0.05),
		},
		{
			name: "Single component is not enough",
			rec:  &models.TaxRecord{CGSTRate: fptr(9)},
			want: nil,
		},
		{
			name: "Zero component sum means no tax",
			rec:  &models.TaxRecord{CGSTRate: fptr(0), SGSTRate: fptr(0)},
			want: nil,
		},
		{
			name: "Explicit zero combined rate is zero percent",
			rec:  &models.TaxRecord{Rate: fptr(0)},
			want: fptr(0),
		},
		{name: "Empty record", rec: &models.TaxRecord{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTaxRate(tt.rec)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ResolveTaxRate() = %v, want %v", got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-12 {
				t.Errorf("ResolveTaxRate() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestMasterIndexLookups(t *testing.T) {
	idx := NewMasterIndex(
		[]models.TaxRecord{
			{Code: "GST18", Rate: fptr(18)},
			{Code: " gst5 ", Rate: fptr(5)},
			{Code: "BROKEN"},
		},
		[]models.HsnCode{
			{Code: "996331", TaxCode: "GST18"},
			{Code: "DANGLING", TaxCode: "NO-SUCH-CODE"},
		},
	)

	t.Run("Tax code lookup is case and space insensitive", func(t *testing.T) {
		got := idx.TaxRate("GST5")
		if got == nil || *got != 0.05 {
			t.Errorf("TaxRate(GST5) = %v, want 0.05", got)
		}
	})

	t.Run("Unknown tax code", func(t *testing.T) {
		if got := idx.TaxRate("MISSING"); got != nil {
			t.Errorf("TaxRate(MISSING) = %v, want nil", *got)
		}
	})

	t.Run("Known code with no derivable rate", func(t *testing.T) {
		if got := idx.TaxRate("BROKEN"); got != nil {
			t.Errorf("TaxRate(BROKEN) = %v, want nil", *got)
		}
	})

	t.Run("Hall resolves through HSN chain", func(t *testing.T) {
		hall := &models.Hall{HSNCode: "996331"}
		got := idx.HallTaxRate(hall)
		if got == nil || *got != 0.18 {
			t.Errorf("HallTaxRate() = %v, want 0.18", got)
		}
	})

	t.Run("Hall with unknown HSN code", func(t *testing.T) {
		hall := &models.Hall{HSNCode: "000000"}
		if got := idx.HallTaxRate(hall); got != nil {
			t.Errorf("HallTaxRate() = %v, want nil", *got)
		}
	})

	t.Run("HSN pointing at a missing tax code", func(t *testing.T) {
		hall := &models.Hall{HSNCode: "DANGLING"}
		if got := idx.HallTaxRate(hall); got != nil {
			t.Errorf("HallTaxRate() = %v, want nil", *got)
		}
	})

	t.Run("Service resolves directly", func(t *testing.T) {
		svc := &models.Service{TaxCode: "gst18"}
		got := idx.ServiceTaxRate(svc)
		if got == nil || *got != 0.18 {
			t.Errorf("ServiceTaxRate() = %v, want 0.18", got)
		}
	})

	t.Run("Nil index never panics", func(t *testing.T) {
		var nilIdx *MasterIndex
		if got := nilIdx.TaxRate("GST18"); got != nil {
			t.Errorf("nil index TaxRate() = %v, want nil", *got)
		}
	})
}
