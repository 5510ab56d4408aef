package bignum

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"
)

// Decimal is an immutable arbitrary-precision decimal number: a pair
// (unscaled magnitude, scale) denoting unscaled * 10^-scale. Its zero value
// is the numeric value 0 at scale 0.
type Decimal struct {
	neg   bool // sign; always false when coef is zero
	coef  Int  // non-negative magnitude
	scale int64
}

// Shared constants for the common small values.
var (
	DecimalZero = newDecimal(false, IntZero, 0)
	DecimalOne  = newDecimal(false, IntOne, 0)
	DecimalTen  = newDecimal(false, IntTen, 0)
)

// newDecimal constructs a Decimal from already-validated parts without
// re-checking scale bounds. It canonicalizes the sign of zero.
func newDecimal(neg bool, coef Int, scale int64) Decimal {
	if coef.IsZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

// NewDecimal builds a Decimal equal to unscaled * 10^-scale. Scale must be
// non-negative.
func NewDecimal(unscaled Int, scale int64) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("%w: scale %d is negative", ErrInvalidArgument, scale)
	}
	return newDecimal(unscaled.Sign() < 0, unscaled.Abs(), scale), nil
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int64 { return d.scale }

// Unscaled returns the signed unscaled value.
func (d Decimal) Unscaled() Int {
	if d.neg {
		return d.coef.Neg()
	}
	return d.coef
}

// Sign returns -1, 0, or +1.
func (d Decimal) Sign() int {
	if d.coef.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// IsZero reports whether d is the numeric value 0.
func (d Decimal) IsZero() bool { return d.coef.IsZero() }

// IsNegative reports whether d is strictly less than 0.
func (d Decimal) IsNegative() bool { return d.neg && !d.coef.IsZero() }

// Neg returns -d.
func (d Decimal) Neg() Decimal { return newDecimal(!d.neg, d.coef, d.scale) }

// Abs returns |d|.
func (d Decimal) Abs() Decimal { return newDecimal(false, d.coef, d.scale) }

// alignedCoefs returns the signed unscaled values of d and e, scaled up to
// their common, larger scale, plus that common scale.
func alignedCoefs(d, e Decimal) (a, b *big.Int, scale int64) {
	a = d.Unscaled().bi()
	b = e.Unscaled().bi()
	switch {
	case d.scale < e.scale:
		a = new(big.Int).Mul(a, pow10(e.scale-d.scale))
		scale = e.scale
	case e.scale < d.scale:
		b = new(big.Int).Mul(b, pow10(d.scale-e.scale))
		scale = d.scale
	default:
		scale = d.scale
	}
	return a, b, scale
}

// smallPow10 caches 10^0 .. 10^63 to avoid repeated big.Int.Exp calls in the
// hot rescale/align paths.
var smallPow10 = func() [64]*big.Int {
	var t [64]*big.Int
	p := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range t {
		t[i] = new(big.Int).Set(p)
		p.Mul(p, ten)
	}
	return t
}()

// pow10 computes 10^n for n >= 0, consulting smallPow10 before falling
// back to exponentiation for scales beyond the cached range.
func pow10(n int64) *big.Int {
	if n >= 0 && n < int64(len(smallPow10)) {
		return smallPow10[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// Cmp compares d and e by value, aligning scales first.
func (d Decimal) Cmp(e Decimal) int {
	a, b, _ := alignedCoefs(d, e)
	return a.Cmp(b)
}

// Equal reports whether d and e denote the same value.
func (d Decimal) Equal(e Decimal) bool { return d.Cmp(e) == 0 }

// Add returns d + e at scale max(d.scale, e.scale).
func (d Decimal) Add(e Decimal) Decimal {
	a, b, scale := alignedCoefs(d, e)
	sum := new(big.Int).Add(a, b)
	return newDecimal(sum.Sign() < 0, newInt(new(big.Int).Abs(sum)), scale)
}

// Sub returns d - e at scale max(d.scale, e.scale).
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns d * e at scale d.scale + e.scale, without stripping trailing
// zeros.
func (d Decimal) Mul(e Decimal) Decimal {
	prod := new(big.Int).Mul(d.Unscaled().bi(), e.Unscaled().bi())
	return newDecimal(prod.Sign() < 0, newInt(new(big.Int).Abs(prod)), d.scale+e.scale)
}

// QuoScale divides d by e, producing a result at the requested scale using
// mode to resolve any remainder. divisor must be nonzero and scale must be
// non-negative.
func (d Decimal) QuoScale(e Decimal, scale int64, mode RoundingMode) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("%w: division by zero decimal", ErrDivisionByZero)
	}
	if scale < 0 {
		return Decimal{}, fmt.Errorf("%w: scale %d is negative", ErrInvalidArgument, scale)
	}
	num := new(big.Int).Set(d.Unscaled().bi())
	den := new(big.Int).Set(e.Unscaled().bi())
	exp := scale + e.scale - d.scale
	switch {
	case exp > 0:
		num.Mul(num, pow10(exp))
	case exp < 0:
		den.Mul(den, pow10(-exp))
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)
	rAbs := new(big.Int).Abs(r)
	dAbs := new(big.Int).Abs(den)
	quotientSign := d.Sign() * e.Sign()
	adjust, err := mode.decide(quotientSign, rAbs, dAbs, q)
	if err != nil {
		return Decimal{}, err
	}
	if adjust {
		if quotientSign < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return newDecimal(quotientSign < 0, newInt(new(big.Int).Abs(q)), scale), nil
}

// Quo divides d by e at d's own scale, requiring an exact result
// (RoundUnnecessary).
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return d.QuoScale(e, d.scale, RoundUnnecessary)
}

// QuoExact divides d by e, automatically choosing the minimal scale that
// represents the exact quotient. It fails with ErrRoundingNecessary if the
// quotient does not terminate.
func (d Decimal) QuoExact(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("%w: division by zero decimal", ErrDivisionByZero)
	}
	r, err := d.ToRational()
	if err != nil {
		return Decimal{}, err
	}
	er, err := e.ToRational()
	if err != nil {
		return Decimal{}, err
	}
	q, err := r.Quo(er)
	if err != nil {
		return Decimal{}, err
	}
	scale, ok := q.terminatingScale()
	if !ok {
		return Decimal{}, fmt.Errorf("%w: quotient of %v and %v does not terminate", ErrRoundingNecessary, d, e)
	}
	return q.ToDecimal(scale, RoundUnnecessary)
}

// QuotientAndRemainder interprets d and e as rationals, computes their
// truncated integer quotient, and returns a scale-0 quotient plus a
// remainder at scale max(d.scale, e.scale).
func (d Decimal) QuotientAndRemainder(e Decimal) (quotient, remainder Decimal, err error) {
	if e.IsZero() {
		return Decimal{}, Decimal{}, fmt.Errorf("%w: division by zero decimal", ErrDivisionByZero)
	}
	a, b, scale := alignedCoefs(d, e)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	quotient = newDecimal(q.Sign() < 0, newInt(new(big.Int).Abs(q)), 0)
	remainder = newDecimal(r.Sign() < 0, newInt(new(big.Int).Abs(r)), scale)
	return quotient, remainder, nil
}

// Pow returns d**e for e in [0, 1_000_000], at scale d.scale * e.
func (d Decimal) Pow(e int64) (Decimal, error) {
	if e < 0 || e > 1_000_000 {
		return Decimal{}, fmt.Errorf("%w: exponent %d out of range [0, 1000000]", ErrInvalidArgument, e)
	}
	coef, err := d.coef.Pow(e)
	if err != nil {
		return Decimal{}, err
	}
	neg := d.neg && e%2 == 1
	return newDecimal(neg, coef, d.scale*e), nil
}

// Sqrt returns floor(sqrt(d)) computed to the requested scale. floor(sqrt(d)
// * 10^scale) equals floor(sqrt(d.coef * 10^(2*scale - d.scale))) whenever the
// exponent is non-negative, so when it isn't, Sqrt instead computes the
// root at the smallest internal scale that does make it non-negative and
// then truncates the surplus digits — a nested-floor identity
// (floor(floor(x*m)/k) = floor(x*m/k) for integer k) guarantees that
// truncation lands on the same digit the direct computation would have.
func (d Decimal) Sqrt(scale int64) (Decimal, error) {
	if d.neg {
		return Decimal{}, fmt.Errorf("%w: sqrt of negative decimal", ErrNegativeNumber)
	}
	if scale < 0 {
		return Decimal{}, fmt.Errorf("%w: scale %d is negative", ErrInvalidArgument, scale)
	}
	innerScale := scale
	if 2*innerScale-d.scale < 0 {
		innerScale = (d.scale + 1) / 2
	}
	exp := 2*innerScale - d.scale
	radicand := new(big.Int).Mul(d.coef.bi(), pow10(exp))
	root, err := kSqrt(radicand)
	if err != nil {
		return Decimal{}, err
	}
	if innerScale > scale {
		root.Quo(root, pow10(innerScale-scale))
	}
	return newDecimal(false, newInt(root), scale), nil
}

// Rescale returns d expressed at newScale, rounding with mode when
// newScale < d.scale. Increasing the scale never needs rounding.
func (d Decimal) Rescale(newScale int64, mode RoundingMode) (Decimal, error) {
	if newScale < 0 {
		return Decimal{}, fmt.Errorf("%w: scale %d is negative", ErrInvalidArgument, newScale)
	}
	switch {
	case newScale == d.scale:
		return d, nil
	case newScale > d.scale:
		coef := new(big.Int).Mul(d.coef.bi(), pow10(newScale-d.scale))
		return newDecimal(d.neg, newInt(coef), newScale), nil
	default:
		shift := d.scale - newScale
		divisor := pow10(shift)
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(d.coef.bi(), divisor, r)
		adjust, err := mode.decide(d.Sign(), r, divisor, q)
		if err != nil {
			return Decimal{}, err
		}
		if adjust {
			q.Add(q, bigOne)
		}
		return newDecimal(d.neg, newInt(q), newScale), nil
	}
}

// ShiftPointLeft returns d with its decimal point moved left by n digits
// (equivalently, scale increased by n). A negative n shifts right instead.
func (d Decimal) ShiftPointLeft(n int64) (Decimal, error) {
	if n < 0 {
		return d.ShiftPointRight(-n)
	}
	return newDecimal(d.neg, d.coef, d.scale+n), nil
}

// ShiftPointRight returns d with its decimal point moved right by n digits
// (equivalently, scale decreased by n). The shift must be exact: if scale
// would go negative, the magnitude is divided by the excess power of ten,
// and that division must have no remainder. A negative n shifts left
// instead.
func (d Decimal) ShiftPointRight(n int64) (Decimal, error) {
	if n < 0 {
		return d.ShiftPointLeft(-n)
	}
	if n <= d.scale {
		return newDecimal(d.neg, d.coef, d.scale-n), nil
	}
	excess := n - d.scale
	divisor := pow10(excess)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(d.coef.bi(), divisor, r)
	if r.Sign() != 0 {
		return Decimal{}, fmt.Errorf("%w: shifting %v right by %d digits is not exact", ErrRoundingNecessary, d, n)
	}
	return newDecimal(d.neg, newInt(q), 0), nil
}

// StripTrailingZeros reduces the scale while the unscaled value remains
// divisible by 10. The value 0 always reduces to scale 0.
func (d Decimal) StripTrailingZeros() Decimal {
	if d.coef.IsZero() {
		return newDecimal(false, IntZero, 0)
	}
	coef := new(big.Int).Set(d.coef.bi())
	scale := d.scale
	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for scale > 0 {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef = new(big.Int).Set(q)
		scale--
	}
	return newDecimal(d.neg, newInt(coef), scale)
}

// ToBigInt converts d to an Int, requiring a zero fractional part.
func (d Decimal) ToBigInt() (Int, error) {
	if d.scale == 0 {
		return d.Unscaled(), nil
	}
	divisor := pow10(d.scale)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(d.coef.bi(), divisor, r)
	if r.Sign() != 0 {
		return Int{}, fmt.Errorf("%w: %v has a nonzero fractional part", ErrRoundingNecessary, d)
	}
	if d.neg {
		q.Neg(q)
	}
	return newInt(q), nil
}

// ToRational converts d to unscaled / 10^scale.
func (d Decimal) ToRational() (Rational, error) {
	den := newInt(new(big.Int).Set(pow10(d.scale)))
	return newRational(d.Unscaled(), den), nil
}

// ToInt64 converts d to an int64, requiring a zero fractional part and a
// value within int64 range.
func (d Decimal) ToInt64() (int64, error) {
	i, err := d.ToBigInt()
	if err != nil {
		return 0, err
	}
	return i.ToInt64()
}

// ToFloat64 converts d to the nearest float64.
func (d Decimal) ToFloat64() float64 {
	num := new(big.Float).SetInt(d.Unscaled().bi())
	den := new(big.Float).SetInt(pow10(d.scale))
	f := new(big.Float).Quo(num, den)
	v, _ := f.Float64()
	return v
}

// String renders d as "[-]integer[.fraction]" with exactly Scale() digits
// after the point; scale 0 emits no point.
func (d Decimal) String() string {
	digits := d.coef.String()
	if d.scale == 0 {
		if d.neg {
			return "-" + digits
		}
		return digits
	}
	if int64(len(digits)) <= d.scale {
		digits = strings.Repeat("0", int(d.scale)-len(digits)+1) + digits
	}
	cut := len(digits) - int(d.scale)
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(digits[:cut])
	b.WriteByte('.')
	b.WriteString(digits[cut:])
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements driver.Valuer, persisting d as its decimal string.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case int64:
		*d = NewIntFromInt64(v).ToDecimal()
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Decimal", ErrNumberFormat, src)
	}
}
