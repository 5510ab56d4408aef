package bignum

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// Rational is an immutable arbitrary-precision fraction: numerator over a
// non-negative denominator, which is strictly positive for every value not
// parsed from a "p/0" string (see [ParseRational]). Unlike math/big.Rat, it
// is never implicitly simplified — "1/3 + 1/6" renders as "9/18" until [Rational.Simplified] is
// called explicitly, which big.Rat's automatic normalization cannot express,
// so this type is hand-rolled over two [Int] values instead of wrapping
// big.Rat (see DESIGN.md).
type Rational struct {
	num Int
	den Int // > 0, except 0 for a value parsed from "p/0"
}

// Shared constants for the common small values.
var (
	RationalZero = newRational(IntZero, IntOne)
	RationalOne  = newRational(IntOne, IntOne)
	RationalTen  = newRational(IntTen, IntOne)
)

// newRational builds a Rational, normalizing the denominator's sign into
// the numerator so the denominator is always strictly positive. It does
// not simplify.
func newRational(num, den Int) Rational {
	if den.Sign() < 0 {
		num = num.Neg()
		den = den.Neg()
	}
	return Rational{num: num, den: den}
}

// NewRational builds num/den. den must be nonzero.
func NewRational(num, den Int) (Rational, error) {
	if den.IsZero() {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrDivisionByZero)
	}
	return newRational(num, den), nil
}

// Numerator returns the numerator.
func (r Rational) Numerator() Int { return r.num }

// Denominator returns the denominator, which is never negative.
func (r Rational) Denominator() Int { return r.den }

// Sign returns -1, 0, or +1.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is the numeric value 0.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.den} }

// Abs returns |r|.
func (r Rational) Abs() Rational { return Rational{num: r.num.Abs(), den: r.den} }

// Add returns r + s, unsimplified: (a*d + c*b) / (b*d).
func (r Rational) Add(s Rational) Rational {
	num := r.num.Mul(s.den).Add(s.num.Mul(r.den))
	den := r.den.Mul(s.den)
	return newRational(num, den)
}

// Sub returns r - s, unsimplified.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s, unsimplified: (a*c) / (b*d).
func (r Rational) Mul(s Rational) Rational {
	return newRational(r.num.Mul(s.num), r.den.Mul(s.den))
}

// Quo returns r / s, unsimplified: (a*d) / (b*c). s must be nonzero.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.num.IsZero() {
		return Rational{}, fmt.Errorf("%w: division by zero rational", ErrDivisionByZero)
	}
	return newRational(r.num.Mul(s.den), r.den.Mul(s.num)), nil
}

// Reciprocal returns 1/r. r's numerator must be nonzero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.num.IsZero() {
		return Rational{}, fmt.Errorf("%w: reciprocal of zero", ErrDivisionByZero)
	}
	return newRational(r.den, r.num), nil
}

// Simplified returns r with numerator and denominator divided by their
// greatest common divisor.
func (r Rational) Simplified() Rational {
	if r.num.IsZero() {
		return RationalZero
	}
	g := r.num.Abs().GCD(r.den)
	num, _ := r.num.Quotient(g)
	den, _ := r.den.Quotient(g)
	return newRational(num, den)
}

// IsFiniteDecimal reports whether r, once simplified, has a denominator
// whose only prime factors are 2 and 5 — i.e. whether r has a terminating
// decimal expansion.
func (r Rational) IsFiniteDecimal() bool {
	_, ok := r.Simplified().terminatingScale()
	return ok
}

// terminatingScale repeatedly divides the simplified denominator by 2 and
// by 5; it reports the minimal scale at which the value has an exact
// decimal representation, and whether the denominator reduces to 1 (i.e.
// whether the value terminates at all).
func (r Rational) terminatingScale() (int64, bool) {
	s := r.Simplified()
	den := new(big.Int).Set(s.den.bi())
	var twos, fives int64
	two, five := big.NewInt(2), big.NewInt(5)
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(den, two, m)
		if m.Sign() != 0 {
			break
		}
		den = new(big.Int).Set(q)
		twos++
	}
	for {
		q.QuoRem(den, five, m)
		if m.Sign() != 0 {
			break
		}
		den = new(big.Int).Set(q)
		fives++
	}
	if den.Cmp(bigOne) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// Cmp compares r and s by value: a/b ⋛ c/d iff a*d ⋛ c*b (both
// denominators are positive by invariant).
func (r Rational) Cmp(s Rational) int {
	left := r.num.Mul(s.den)
	right := s.num.Mul(r.den)
	return left.Cmp(right)
}

// Equal reports whether r and s denote the same value.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// ToDecimal converts r to a Decimal at the given scale, applying mode to
// resolve any remainder (numerator dividedBy denominator).
func (r Rational) ToDecimal(scale int64, mode RoundingMode) (Decimal, error) {
	return r.num.ToDecimal().QuoScale(r.den.ToDecimal(), scale, mode)
}

// ToBigInt converts r to an Int, requiring that the simplified denominator
// be 1.
func (r Rational) ToBigInt() (Int, error) {
	s := r.Simplified()
	if !s.den.Equal(IntOne) {
		return Int{}, fmt.Errorf("%w: %v is not an integer", ErrRoundingNecessary, r)
	}
	return s.num, nil
}

// ToFloat64 converts r to the nearest float64.
func (r Rational) ToFloat64() float64 {
	num := new(big.Float).SetInt(r.num.bi())
	den := new(big.Float).SetInt(r.den.bi())
	f := new(big.Float).Quo(num, den)
	v, _ := f.Float64()
	return v
}

// String renders r as "numerator/denominator", or just "numerator" when
// the denominator is 1.
func (r Rational) String() string {
	if r.den.Equal(IntOne) {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := ParseRational(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value implements driver.Valuer, persisting r as its "numerator/denominator"
// string.
func (r Rational) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Rational) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	case int64:
		*r = NewIntFromInt64(v).ToRational()
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Rational", ErrNumberFormat, src)
	}
}
