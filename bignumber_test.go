package bignum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfHostTypes(t *testing.T) {
	n, err := Of(42)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(Int); !ok {
		t.Errorf("Of(42) dynamic type = %T, want Int", n)
	}
	if n.String() != "42" {
		t.Errorf("Of(42).String() = %q, want \"42\"", n.String())
	}
}

func TestOfFloat(t *testing.T) {
	n, err := Of(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(Decimal); !ok {
		t.Errorf("Of(1.5) dynamic type = %T, want Decimal", n)
	}
	if n.String() != "1.5" {
		t.Errorf("Of(1.5).String() = %q, want \"1.5\"", n.String())
	}
}

func TestOfRejectsNonFiniteFloat(t *testing.T) {
	if _, err := Of(1.0 / zero()); !errors.Is(err, ErrNumberFormat) {
		t.Errorf("Of(+Inf) should wrap ErrNumberFormat, got %v", err)
	}
}

// zero avoids a compile-time "division by zero" constant error.
func zero() float64 { return 0 }

func TestOfStringTriesIntegerThenRationalThenDecimal(t *testing.T) {
	cases := []struct {
		s    string
		want string // reflect.TypeOf(n).Name()
	}{
		{"42", "Int"},
		{"1/2", "Rational"},
		{"1.5", "Decimal"},
	}
	for _, tt := range cases {
		n, err := Of(tt.s)
		if err != nil {
			t.Fatalf("Of(%q) unexpected error: %v", tt.s, err)
		}
		got := typeName(n)
		if got != tt.want {
			t.Errorf("Of(%q) dynamic type = %s, want %s", tt.s, got, tt.want)
		}
	}
}

func typeName(n Number) string {
	switch n.(type) {
	case Int:
		return "Int"
	case Decimal:
		return "Decimal"
	case Rational:
		return "Rational"
	default:
		return "unknown"
	}
}

func TestOfIdentityPreserved(t *testing.T) {
	x := mustInt("5")
	n, err := Of(x)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := n.(Int); !ok || !got.Equal(x) {
		t.Errorf("Of(Int) = %v, want identity-preserved %v", n, x)
	}
}

func TestOfRejectsUnsupportedType(t *testing.T) {
	if _, err := Of(struct{}{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Of(unsupported) should wrap ErrInvalidArgument, got %v", err)
	}
}

func TestMinMaxAcrossDomains(t *testing.T) {
	// BI(1), BD(1.5), BR(1/4): min is the BR, max is the BD.
	got, err := Min(1, 1.5, mustRat("1/4"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Rational); !ok {
		t.Errorf("Min dynamic type = %T, want Rational", got)
	}
	if got.String() != "1/4" {
		t.Errorf("Min(...) = %v, want 1/4", got)
	}

	got, err = Max(1, 1.5, mustRat("1/4"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Decimal); !ok {
		t.Errorf("Max dynamic type = %T, want Decimal", got)
	}
	if got.String() != "1.5" {
		t.Errorf("Max(...) = %v, want 1.5", got)
	}
}

func TestMinMaxRequireAtLeastOneValue(t *testing.T) {
	if _, err := Min(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Min() with no values should wrap ErrInvalidArgument, got %v", err)
	}
	if _, err := Max(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Max() with no values should wrap ErrInvalidArgument, got %v", err)
	}
}

func TestSumPromotesToMostGeneralType(t *testing.T) {
	got, err := Sum(1, 2, mustDec("0.5"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Decimal); !ok {
		t.Errorf("Sum dynamic type = %T, want Decimal", got)
	}
	if got.String() != "3.5" {
		t.Errorf("Sum(1, 2, 0.5) = %v, want 3.5", got)
	}

	got, err = Sum(mustInt("1"), mustRat("1/2"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Rational); !ok {
		t.Errorf("Sum dynamic type = %T, want Rational", got)
	}
	if got.String() != "3/2" {
		t.Errorf("Sum(1, 1/2) = %v, want 3/2", got)
	}
}

func TestSumRequiresAtLeastOneValue(t *testing.T) {
	if _, err := Sum(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Sum() with no values should wrap ErrInvalidArgument, got %v", err)
	}
}

func TestCmp3AcrossDomains(t *testing.T) {
	c, err := Cmp3(mustDec("0.5"), mustRat("1/2"))
	if err != nil {
		t.Fatal(err)
	}
	if c != 0 {
		t.Errorf("Cmp3(0.5, 1/2) = %d, want 0", c)
	}
	c, err = Cmp3(1, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if c >= 0 {
		t.Errorf("Cmp3(1, 1.5) = %d, want < 0", c)
	}
}

func TestCoerceAndSumOverManyDomains(t *testing.T) {
	n, err := Coerce("42")
	require.NoError(t, err)
	assert.IsType(t, Int{}, n)
	assert.Equal(t, "42", n.String())

	total, err := Sum(MustParseInt("1"), MustParseDecimal("0.5"), MustParseRational("1/4"))
	require.NoError(t, err)
	assert.IsType(t, Rational{}, total)
	assert.Equal(t, 0, total.(Rational).Cmp(MustParseRational("7/4")))
}
