package bignum

import (
	"errors"
	"testing"
)

func mustRat(s string) Rational { return MustParseRational(s) }

func TestParseRationalGrammar(t *testing.T) {
	valid := []string{"1/2", "-1/2", "+1/2", "0/5", "10/3"}
	for _, s := range valid {
		if _, err := ParseRational(s); err != nil {
			t.Errorf("ParseRational(%q) unexpected error: %v", s, err)
		}
	}
	invalid := []string{"1/2/3", "1/-2", "1e2/3", "1/3e2", "/3", "1/", "1"}
	for _, s := range invalid {
		if _, err := ParseRational(s); err == nil {
			t.Errorf("ParseRational(%q) should error", s)
		}
	}
}

func TestRationalZeroDenominatorIsParseLegalButFailsOnUse(t *testing.T) {
	r, err := ParseRational("1/0")
	if err != nil {
		t.Fatalf("ParseRational(\"1/0\") should parse, got error: %v", err)
	}
	if _, err := r.ToDecimal(2, RoundHalfUp); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("using a 1/0 value as a divisor should wrap ErrDivisionByZero, got %v", err)
	}
}

func TestRationalUnsimplifiedAddition(t *testing.T) {
	// 1/3 + 1/6 = (1*6 + 1*3)/(3*6) = 9/18 unless simplified.
	a, b := mustRat("1/3"), mustRat("1/6")
	sum := a.Add(b)
	if got := sum.String(); got != "9/18" {
		t.Errorf("1/3 + 1/6 = %q, want \"9/18\" (unsimplified)", got)
	}
	if got := sum.Simplified().String(); got != "1/2" {
		t.Errorf("Simplified() = %q, want \"1/2\"", got)
	}
}

func TestRationalArithmetic(t *testing.T) {
	a, b := mustRat("1/2"), mustRat("1/3")
	if got := a.Mul(b).String(); got != "1/6" {
		t.Errorf("1/2 * 1/3 = %q, want \"1/6\"", got)
	}
	q, err := a.Quo(b)
	if err != nil || q.String() != "3/2" {
		t.Errorf("1/2 / 1/3 = %v, %v, want 3/2, nil", q, err)
	}
	if _, err := a.Quo(RationalZero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("division by zero rational should wrap ErrDivisionByZero, got %v", err)
	}
}

func TestRationalReciprocal(t *testing.T) {
	r, err := mustRat("2/3").Reciprocal()
	if err != nil || r.String() != "3/2" {
		t.Errorf("(2/3)^-1 = %v, %v, want 3/2, nil", r, err)
	}
	if _, err := RationalZero.Reciprocal(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("reciprocal of zero should wrap ErrDivisionByZero, got %v", err)
	}
}

func TestRationalNegativeDenominatorNormalizes(t *testing.T) {
	r, err := NewRational(mustInt("1"), mustInt("-2"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Denominator().Sign() <= 0 {
		t.Errorf("denominator should be normalized positive, got %v", r.Denominator())
	}
	if r.Numerator().Sign() >= 0 {
		t.Errorf("sign should move into numerator, got %v", r.Numerator())
	}
}

func TestRationalIsFiniteDecimal(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"1/2", true},
		{"1/4", true},
		{"1/5", true},
		{"1/8", true},
		{"1/10", true},
		{"1/3", false},
		{"1/6", false},
		{"2/4", true}, // simplifies to 1/2
	}
	for _, tt := range cases {
		if got := mustRat(tt.s).IsFiniteDecimal(); got != tt.want {
			t.Errorf("IsFiniteDecimal(%s) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRationalCmp(t *testing.T) {
	if mustRat("1/2").Cmp(mustRat("2/4")) != 0 {
		t.Error("1/2 should equal 2/4 by value")
	}
	if mustRat("1/3").Cmp(mustRat("1/2")) >= 0 {
		t.Error("1/3 should be less than 1/2")
	}
}

func TestRationalToBigIntRequiresIntegral(t *testing.T) {
	i, err := mustRat("4/2").ToBigInt()
	if err != nil || i.String() != "2" {
		t.Errorf("ToBigInt() on 4/2 = %v, %v, want 2, nil", i, err)
	}
	if _, err := mustRat("1/2").ToBigInt(); !errors.Is(err, ErrRoundingNecessary) {
		t.Errorf("ToBigInt() on non-integer rational should wrap ErrRoundingNecessary, got %v", err)
	}
}

func TestRationalToDecimal(t *testing.T) {
	d, err := mustRat("1/4").ToDecimal(2, RoundUnnecessary)
	if err != nil || d.String() != "0.25" {
		t.Errorf("1/4 to scale 2 = %v, %v, want 0.25, nil", d, err)
	}
	if _, err := mustRat("1/3").ToDecimal(2, RoundUnnecessary); !errors.Is(err, ErrRoundingNecessary) {
		t.Errorf("1/3 to scale 2 UNNECESSARY should wrap ErrRoundingNecessary, got %v", err)
	}
}

func TestRationalTextMarshalRoundTrip(t *testing.T) {
	r := mustRat("-22/7")
	data, err := r.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var s Rational
	if err := s.UnmarshalText(data); err != nil {
		t.Fatal(err)
	}
	if !r.Equal(s) {
		t.Errorf("round trip mismatch: %v != %v", r, s)
	}
}

func TestRationalStringOmitsDenominatorOfOne(t *testing.T) {
	if got := mustRat("6/3").Simplified().String(); got != "2" {
		t.Errorf("String() on integral rational = %q, want \"2\"", got)
	}
}
