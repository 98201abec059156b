package services

import (
	"testing"

	"venuepro-backend/models"
)

func TestComputeRent(t *testing.T) {
	hall := &models.Hall{SlotRate: 1000, FullDayRate: fptr(1800)}
	slotOnly := &models.Hall{SlotRate: 1000}

	tests := []struct {
		name     string
		hall     *models.Hall
		pairs    []SlotPair
		override *float64
		want     float64
	}{
		{
			name: "Single slot bills per slot",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
			},
			want: 1000,
		},
		{
			name: "Two slots collapse into one full day",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s2"},
			},
			want: 1800,
		},
		{
			name: "Five slots pair into two full days plus one slot",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s2"},
				{Date: "2024-05-02", SlotID: "s1"},
				{Date: "2024-05-02", SlotID: "s2"},
				{Date: "2024-05-03", SlotID: "s1"},
			},
			want: 4600,
		},
		{
			name: "Pairing crosses calendar days",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s2"},
				{Date: "2024-05-02", SlotID: "s1"},
			},
			want: 1800,
		},
		{
			name: "Duplicate pairs are billed once",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s1"},
			},
			want: 1000,
		},
		{
			name: "No full day rate bills every slot",
			hall: slotOnly,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s2"},
				{Date: "2024-05-02", SlotID: "s1"},
			},
			want: 3000,
		},
		{
			name:  "Empty selection",
			hall:  hall,
			pairs: nil,
			want:  0,
		},
		{
			name: "Manual override replaces computed rent",
			hall: hall,
			pairs: []SlotPair{
				{Date: "2024-05-01", SlotID: "s1"},
				{Date: "2024-05-01", SlotID: "s2"},
			},
			override: fptr(2500),
			want:     2500,
		},
		{
			name:     "Negative override floors at zero",
			hall:     hall,
			pairs:    []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			override: fptr(-50),
			want:     0,
		},
		{
			name:     "Zero override is honored",
			hall:     hall,
			pairs:    []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			override: fptr(0),
			want:     0,
		},
		{
			name:  "Nil hall without override",
			hall:  nil,
			pairs: []SlotPair{{Date: "2024-05-01", SlotID: "s1"}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRent(tt.hall, tt.pairs, tt.override)
			if got != tt.want {
				t.Errorf("ComputeRent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUniqueSlotPairs(t *testing.T) {
	in := []SlotPair{
		{Date: "2024-05-01", SlotID: "s1"},
		{Date: "2024-05-02", SlotID: "s1"},
		{Date: "2024-05-01", SlotID: "s1"},
		{Date: "2024-05-01", SlotID: "s2"},
	}
	got := UniqueSlotPairs(in)
	want := []SlotPair{
		{Date: "2024-05-01", SlotID: "s1"},
		{Date: "2024-05-02", SlotID: "s1"},
		{Date: "2024-05-01", SlotID: "s2"},
	}
	if len(got) != len(want) {
		t.Fatalf("UniqueSlotPairs() returned %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueSlotPairs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
