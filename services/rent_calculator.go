// services/rent_calculator.go
package services

import (
	"venuepro-backend/models"
	"venuepro-backend/utils"
)

// SlotPair identifies one booked (date, slot) combination. An empty SlotID
// marks a full-day selection.
type SlotPair struct {
	Date   string // "2006-01-02"
	SlotID string
}

// UniqueSlotPairs drops duplicate (date, slot) combinations, preserving the
// order pairs were supplied in.
func UniqueSlotPairs(pairs []SlotPair) []SlotPair {
	seen := make(map[SlotPair]bool, len(pairs))
	out := make([]SlotPair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// ComputeRent prices a hall booking under the pairing rule: when a full-day
// rate is configured, every two booked slots collapse into one flat full-day
// charge and the odd slot out is billed at the per-slot rate. The pairing is
// across the whole selection, not per calendar day — two slots on different
// dates still pair. A manual override from the operator replaces the
// computed rent entirely, floored at zero.
func ComputeRent(hall *models.Hall, pairs []SlotPair, manualOverride *float64) float64 {
	if manualOverride != nil {
		return utils.NonNegative(*manualOverride)
	}
	if hall == nil {
		return 0
	}

	n := len(UniqueSlotPairs(pairs))
	if n == 0 {
		return 0
	}

	if hall.FullDayRate != nil && n >= 2 {
		fulls := n / 2
		remainder := n % 2
		return float64(fulls)**hall.FullDayRate + float64(remainder)*hall.SlotRate
	}
	return hall.SlotRate * float64(n)
}
