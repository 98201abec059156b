// services/availability.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuepro-backend/utils"
)

// BookingRangeEntry is one existing booked (date, slot) row as seen by the
// availability checker. A nil SlotID means the booking holds the entire date.
type BookingRangeEntry struct {
	BookingID uuid.UUID
	HallID    uuid.UUID
	EventDate time.Time
	SlotID    *uuid.UUID
	Status    string
}

// BookingRangeReader fetches the booked slots of a hall within a date range.
type BookingRangeReader interface {
	GetRange(ctx context.Context, venueID, hallID uuid.UUID, from, to time.Time) ([]BookingRangeEntry, error)
}

// SlotRequest is one requested (date, slot) pair. A nil SlotID asks for the
// whole date.
type SlotRequest struct {
	Date   time.Time
	SlotID *uuid.UUID
}

// AvailabilityResult reports the first conflicting pair, in the order the
// pairs were supplied. Available with a non-nil Err means the range query
// failed and the check was skipped.
type AvailabilityResult struct {
	Available      bool
	ConflictDate   *time.Time
	ConflictSlotID *uuid.UUID
}

// Statuses that release a booking's slots. Matched case-insensitively after
// trimming, since legacy rows carry several spellings.
var cancelledStatuses = map[string]bool{
	"cancelled": true,
	"canceled":  true,
	"void":      true,
	"voided":    true,
}

func IsCancelledStatus(status string) bool {
	return cancelledStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// AvailabilityChecker is an advisory pre-flight check: it only reads and
// reports. The real double-booking guard is the conflict re-check inside the
// save transaction; a race between two checks is resolved there.
type AvailabilityChecker struct {
	reader BookingRangeReader
}

func NewAvailabilityChecker(reader BookingRangeReader) *AvailabilityChecker {
	return &AvailabilityChecker{reader: reader}
}

type dateOccupancy struct {
	allDay bool
	slots  map[uuid.UUID]bool
}

// Check reports whether every requested (date, slot) pair of a hall is free.
// A booking recorded without a slot id blocks every slot of its date, and a
// request without a slot id conflicts with anything on that date. Cancelled
// bookings never block, and the booking being edited is excluded so a
// reschedule does not collide with itself.
//
// When the range query fails the check fails open: the result says Available
// and the error is returned for the caller to log. Blocking the operator on
// an infrastructure fault loses a sale; an occasional manual double-booking
// is caught at save time.
func (c *AvailabilityChecker) Check(ctx context.Context, venueID, hallID uuid.UUID, pairs []SlotRequest, excludeBookingID uuid.UUID) (AvailabilityResult, error) {
	if len(pairs) == 0 {
		return AvailabilityResult{Available: true}, nil
	}

	from, to := pairs[0].Date, pairs[0].Date
	for _, p := range pairs[1:] {
		if p.Date.Before(from) {
			from = p.Date
		}
		if p.Date.After(to) {
			to = p.Date
		}
	}

	entries, err := c.reader.GetRange(ctx, venueID, hallID, from, to)
	if err != nil {
		return AvailabilityResult{Available: true}, err
	}

	occupied := make(map[string]*dateOccupancy)
	for _, e := range entries {
		if IsCancelledStatus(e.Status) {
			continue
		}
		if excludeBookingID != uuid.Nil && e.BookingID == excludeBookingID {
			continue
		}
		key := utils.FormatDateOnly(e.EventDate)
		occ := occupied[key]
		if occ == nil {
			occ = &dateOccupancy{slots: make(map[uuid.UUID]bool)}
			occupied[key] = occ
		}
		if e.SlotID == nil {
			occ.allDay = true
		} else {
			occ.slots[*e.SlotID] = true
		}
	}

	for _, p := range pairs {
		occ := occupied[utils.FormatDateOnly(p.Date)]
		if occ == nil {
			continue
		}
		conflict := occ.allDay
		if !conflict {
			if p.SlotID == nil {
				conflict = len(occ.slots) > 0
			} else {
				conflict = occ.slots[*p.SlotID]
			}
		}
		if conflict {
			d := p.Date
			return AvailabilityResult{Available: false, ConflictDate: &d, ConflictSlotID: p.SlotID}, nil
		}
	}

	return AvailabilityResult{Available: true}, nil
}

// GormBookingRangeReader reads booked slots straight from the bookings store.
type GormBookingRangeReader struct {
	DB *gorm.DB
}

func (r *GormBookingRangeReader) GetRange(ctx context.Context, venueID, hallID uuid.UUID, from, to time.Time) ([]BookingRangeEntry, error) {
	var entries []BookingRangeEntry
	err := r.DB.WithContext(ctx).
		Table("booking_slots").
		Select("booking_slots.booking_id, booking_slots.hall_id, booking_slots.event_date, booking_slots.slot_id, bookings.status").
		Joins("JOIN bookings ON bookings.id = booking_slots.booking_id").
		Where("bookings.venue_id = ? AND booking_slots.hall_id = ? AND booking_slots.event_date BETWEEN ? AND ?",
			venueID, hallID, utils.BeginningOfDay(from), utils.BeginningOfDay(to)).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
