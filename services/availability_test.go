package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubRangeReader struct {
	entries []BookingRangeEntry
	err     error

	gotFrom time.Time
	gotTo   time.Time
}

func (s *stubRangeReader) GetRange(ctx context.Context, venueID, hallID uuid.UUID, from, to time.Time) ([]BookingRangeEntry, error) {
	s.gotFrom, s.gotTo = from, to
	return s.entries, s.err
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func uptr(id uuid.UUID) *uuid.UUID { return &id }

func TestAvailabilityCheck(t *testing.T) {
	venueID := uuid.New()
	hallID := uuid.New()
	slot1 := uuid.New()
	slot2 := uuid.New()
	otherBooking := uuid.New()

	tests := []struct {
		name          string
		entries       []BookingRangeEntry
		pairs         []SlotRequest
		exclude       uuid.UUID
		wantAvailable bool
		wantConflict  *SlotRequest
	}{
		{
			name:          "Empty request is trivially free",
			pairs:         nil,
			wantAvailable: true,
		},
		{
			name: "Free slot on a busy date",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: uptr(slot1), Status: "confirmed"},
			},
			pairs:         []SlotRequest{{Date: day("2024-05-01"), SlotID: uptr(slot2)}},
			wantAvailable: true,
		},
		{
			name: "Same slot conflicts",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: uptr(slot1), Status: "confirmed"},
			},
			pairs:         []SlotRequest{{Date: day("2024-05-01"), SlotID: uptr(slot1)}},
			wantAvailable: false,
			wantConflict:  &SlotRequest{Date: day("2024-05-01"), SlotID: uptr(slot1)},
		},
		{
			name: "All day booking blocks every slot of its date",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: nil, Status: "confirmed"},
			},
			pairs:         []SlotRequest{{Date: day("2024-05-01"), SlotID: uptr(slot2)}},
			wantAvailable: false,
			wantConflict:  &SlotRequest{Date: day("2024-05-01"), SlotID: uptr(slot2)},
		},
		{
			name: "All day request conflicts with any slot on the date",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: uptr(slot1), Status: "confirmed"},
			},
			pairs:         []SlotRequest{{Date: day("2024-05-01"), SlotID: nil}},
			wantAvailable: false,
			wantConflict:  &SlotRequest{Date: day("2024-05-01"), SlotID: nil},
		},
		{
			name: "Cancelled bookings release their slots",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-02"), SlotID: uptr(slot2), Status: "CANCELLED"},
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-02"), SlotID: uptr(slot1), Status: " voided "},
			},
			pairs: []SlotRequest{
				{Date: day("2024-05-02"), SlotID: uptr(slot1)},
				{Date: day("2024-05-02"), SlotID: uptr(slot2)},
			},
			wantAvailable: true,
		},
		{
			name: "First conflict reported in request order",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: uptr(slot1), Status: "confirmed"},
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-03"), SlotID: uptr(slot2), Status: "confirmed"},
			},
			pairs: []SlotRequest{
				{Date: day("2024-05-03"), SlotID: uptr(slot2)},
				{Date: day("2024-05-01"), SlotID: uptr(slot1)},
			},
			wantAvailable: false,
			wantConflict:  &SlotRequest{Date: day("2024-05-03"), SlotID: uptr(slot2)},
		},
		{
			name: "Excluded booking does not collide with itself",
			entries: []BookingRangeEntry{
				{BookingID: otherBooking, HallID: hallID, EventDate: day("2024-05-01"), SlotID: uptr(slot1), Status: "confirmed"},
			},
			pairs:         []SlotRequest{{Date: day("2024-05-01"), SlotID: uptr(slot1)}},
			exclude:       otherBooking,
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &stubRangeReader{entries: tt.entries}
			checker := NewAvailabilityChecker(reader)

			got, err := checker.Check(context.Background(), venueID, hallID, tt.pairs, tt.exclude)
			if err != nil {
				t.Fatalf("Check() unexpected error: %v", err)
			}
			if got.Available != tt.wantAvailable {
				t.Fatalf("Check() available = %v, want %v", got.Available, tt.wantAvailable)
			}
			if tt.wantConflict != nil {
				if got.ConflictDate == nil || !got.ConflictDate.Equal(tt.wantConflict.Date) {
					t.Errorf("ConflictDate = %v, want %v", got.ConflictDate, tt.wantConflict.Date)
				}
				wantSlot := tt.wantConflict.SlotID
				if (got.ConflictSlotID == nil) != (wantSlot == nil) {
					t.Errorf("ConflictSlotID = %v, want %v", got.ConflictSlotID, wantSlot)
				} else if wantSlot != nil && *got.ConflictSlotID != *wantSlot {
					t.Errorf("ConflictSlotID = %v, want %v", *got.ConflictSlotID, *wantSlot)
				}
			}
		})
	}
}

func TestAvailabilityQueryWindow(t *testing.T) {
	reader := &stubRangeReader{}
	checker := NewAvailabilityChecker(reader)

	pairs := []SlotRequest{
		{Date: day("2024-05-03")},
		{Date: day("2024-05-01")},
		{Date: day("2024-05-02")},
	}
	if _, err := checker.Check(context.Background(), uuid.New(), uuid.New(), pairs, uuid.Nil); err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}

	if !reader.gotFrom.Equal(day("2024-05-01")) {
		t.Errorf("range from = %v, want 2024-05-01", reader.gotFrom)
	}
	if !reader.gotTo.Equal(day("2024-05-03")) {
		t.Errorf("range to = %v, want 2024-05-03", reader.gotTo)
	}
}

func TestAvailabilityFailsOpen(t *testing.T) {
	readErr := errors.New("connection refused")
	reader := &stubRangeReader{err: readErr}
	checker := NewAvailabilityChecker(reader)

	pairs := []SlotRequest{{Date: day("2024-05-01")}}
	got, err := checker.Check(context.Background(), uuid.New(), uuid.New(), pairs, uuid.Nil)

	if !errors.Is(err, readErr) {
		t.Fatalf("Check() error = %v, want %v", err, readErr)
	}
	if !got.Available {
		t.Error("Check() must report available when the range query fails")
	}
}

func TestIsCancelledStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"cancelled", true},
		{"canceled", true},
		{"VOID", true},
		{"  Voided  ", true},
		{"confirmed", false},
		{"completed", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCancelledStatus(tt.status); got != tt.want {
			t.Errorf("IsCancelledStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
