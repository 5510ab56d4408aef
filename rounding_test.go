package bignum

import (
	"errors"
	"testing"
)

func TestParseRoundingModeRoundTrip(t *testing.T) {
	modes := []RoundingMode{
		RoundUp, RoundDown, RoundCeiling, RoundFloor,
		RoundHalfUp, RoundHalfDown, RoundHalfCeiling, RoundHalfFloor,
		RoundHalfEven, RoundUnnecessary,
	}
	for _, m := range modes {
		parsed, err := ParseRoundingMode(m.String())
		if err != nil {
			t.Fatalf("ParseRoundingMode(%q) error: %v", m, err)
		}
		if parsed != m {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", m, parsed, m)
		}
	}
	if _, err := ParseRoundingMode("NOT_A_MODE"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown mode should wrap ErrInvalidArgument, got %v", err)
	}
}

// TestRoundingModeDecisionTable exercises every mode at the three
// canonical remainder ratios (below half, exactly half, above half) with
// both quotient signs.
func TestRoundingModeDecisionTable(t *testing.T) {
	ten := b("10")
	cases := []struct {
		mode           RoundingMode
		quotientSign   int
		rAbs           string
		dAbs           string
		qEven          bool
		wantAdjustment bool
	}{
		// below half (r=3, d=10)
		{RoundUp, 1, "3", "10", true, true},
		{RoundDown, 1, "3", "10", true, false},
		{RoundHalfUp, 1, "3", "10", true, false},
		{RoundHalfDown, 1, "3", "10", true, false},
		// exactly half (r=5, d=10)
		{RoundHalfUp, 1, "5", "10", true, true},
		{RoundHalfDown, 1, "5", "10", true, false},
		{RoundHalfCeiling, 1, "5", "10", true, true},
		{RoundHalfCeiling, -1, "5", "10", true, false},
		{RoundHalfFloor, 1, "5", "10", true, false},
		{RoundHalfFloor, -1, "5", "10", true, true},
		{RoundHalfEven, 1, "5", "10", true, false},
		{RoundHalfEven, 1, "5", "10", false, true},
		// above half (r=7, d=10)
		{RoundHalfUp, 1, "7", "10", true, true},
		{RoundHalfDown, 1, "7", "10", true, true},
		// directional modes
		{RoundCeiling, 1, "3", "10", true, true},
		{RoundCeiling, -1, "3", "10", true, false},
		{RoundFloor, 1, "3", "10", true, false},
		{RoundFloor, -1, "3", "10", true, true},
	}
	for _, tt := range cases {
		q := b("0")
		if !tt.qEven {
			q = b("1")
		}
		got, err := tt.mode.decide(tt.quotientSign, b(tt.rAbs), b(tt.dAbs), q)
		if err != nil {
			t.Fatalf("%v.decide(...) error: %v", tt.mode, err)
		}
		if got != tt.wantAdjustment {
			t.Errorf("%v.decide(sign=%d, r=%s, d=%s, qEven=%v) = %v, want %v",
				tt.mode, tt.quotientSign, tt.rAbs, tt.dAbs, tt.qEven, got, tt.wantAdjustment)
		}
	}
	_ = ten
}

func TestRoundUnnecessaryRejectsNonzeroRemainder(t *testing.T) {
	if _, err := RoundUnnecessary.decide(1, b("1"), b("10"), b("0")); !errors.Is(err, ErrRoundingNecessary) {
		t.Errorf("UNNECESSARY with nonzero remainder should wrap ErrRoundingNecessary, got %v", err)
	}
	if got, err := RoundUnnecessary.decide(1, b("0"), b("10"), b("0")); err != nil || got {
		t.Errorf("UNNECESSARY with zero remainder should not adjust, got %v, %v", got, err)
	}
}
