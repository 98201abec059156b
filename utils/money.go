// utils/money.go
package utils

import "math"

// roundEpsilon nudges values sitting just under a .005 boundary (binary
// float underflow) up before rounding. Existing invoices were produced with
// this exact epsilon-then-round sequence, so it must not change.
const roundEpsilon = 1e-9

// Round2 rounds a money amount to 2 decimal places, half-up.
func Round2(v float64) float64 {
	return math.Floor((v+roundEpsilon)*100+0.5) / 100
}

// NonNegative clamps a money amount at zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Clamp bounds v to [lo, hi]. Returns lo when hi < lo.
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
