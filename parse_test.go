package bignum

import (
	"math"
	"testing"
)

func TestFloatToDecimalStringRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := floatToDecimalString(f); err == nil {
			t.Errorf("floatToDecimalString(%v) should error", f)
		}
	}
}

func TestFloatToDecimalStringRendersFixedPoint(t *testing.T) {
	cases := map[float64]string{
		1.5:   "1.5",
		-0.25: "-0.25",
		100:   "100",
		0:     "0",
	}
	for f, want := range cases {
		got, err := floatToDecimalString(f)
		if err != nil {
			t.Fatalf("floatToDecimalString(%v) unexpected error: %v", f, err)
		}
		if got != want {
			t.Errorf("floatToDecimalString(%v) = %q, want %q", f, got, want)
		}
	}
}

func TestIsAllDigitsAndIsStrictDecimalInteger(t *testing.T) {
	if !isAllDigits("0123") {
		t.Error("isAllDigits(\"0123\") should be true")
	}
	if isAllDigits("") {
		t.Error("isAllDigits(\"\") should be false")
	}
	if isAllDigits("12a") {
		t.Error("isAllDigits(\"12a\") should be false")
	}
}
