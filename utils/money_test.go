package utils

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Already two decimals", 10.50, 10.50},
		{"Half rounds up", 10.505, 10.51},
		{"Below half rounds down", 10.504, 10.50},
		{"Binary float just under a boundary", 2.675, 2.68},
		{"Accumulated sum", 0.1 + 0.2, 0.30},
		{"Zero", 0, 0},
		{"Whole number", 1770, 1770},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); got != tt.want {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRound2Idempotent(t *testing.T) {
	values := []float64{10.505, 2.675, 1234.565, 0.005, 99.994}
	for _, v := range values {
		once := Round2(v)
		twice := Round2(once)
		if once != twice {
			t.Errorf("Round2 not idempotent for %v: %v then %v", v, once, twice)
		}
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(-5); got != 0 {
		t.Errorf("NonNegative(-5) = %v, want 0", got)
	}
	if got := NonNegative(5); got != 5 {
		t.Errorf("NonNegative(5) = %v, want 5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"Inside range", 5, 0, 10, 5},
		{"Below low", -3, 0, 10, 0},
		{"Above high", 15, 0, 10, 10},
		{"Inverted bounds collapse to low", 5, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
