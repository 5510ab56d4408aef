package bignum

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// Int is an immutable arbitrary-precision integer. Its zero value
// corresponds to the numeric value 0.
type Int struct {
	v *big.Int
}

// Shared constants. These are interned for construction convenience only;
// callers must compare by value ([Int.Cmp] or [Int.Equal]), never by
// identity.
var (
	IntZero = newInt(big.NewInt(0))
	IntOne  = newInt(big.NewInt(1))
	IntTen  = newInt(big.NewInt(10))
)

// newInt wraps a *big.Int that the caller guarantees is freshly allocated
// and will never be mutated again. It is the only place in this file that
// stores a *big.Int directly, so every Int value remains logically
// immutable.
func newInt(v *big.Int) Int {
	return Int{v: v}
}

// bi returns the underlying *big.Int, materializing the zero value's
// implicit 0 on demand. The returned pointer must never be mutated by the
// caller.
func (x Int) bi() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// NewIntFromInt64 converts a native integer to an Int.
func NewIntFromInt64(v int64) Int {
	return newInt(big.NewInt(v))
}

// ParseInt parses the integer grammar: an optional sign followed by one or
// more ASCII digits.
func ParseInt(s string) (Int, error) {
	if s == "" {
		return Int{}, fmt.Errorf("%w: empty string", ErrNumberFormat)
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok || !isStrictDecimalInteger(s) {
		return Int{}, fmt.Errorf("%w: %q is not a valid integer", ErrNumberFormat, s)
	}
	return newInt(z), nil
}

// isStrictDecimalInteger re-validates the grammar SetString is too lenient
// for (SetString tolerates underscores and base prefixes for base 0, which
// the strict integer grammar ^[+-]?[0-9]+$ does not allow).
func isStrictDecimalInteger(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders x as the shortest decimal string with an optional leading
// '-'; zero is always "0", never "-0".
func (x Int) String() string {
	return x.bi().String()
}

// Sign returns -1, 0, or +1.
func (x Int) Sign() int { return x.bi().Sign() }

// IsZero reports whether x is the numeric value 0.
func (x Int) IsZero() bool { return x.bi().Sign() == 0 }

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int { return x.bi().Cmp(y.bi()) }

// Equal reports whether x and y denote the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Neg returns -x.
func (x Int) Neg() Int { return newInt(new(big.Int).Neg(x.bi())) }

// Abs returns |x|.
func (x Int) Abs() Int { return newInt(new(big.Int).Abs(x.bi())) }

// Add returns x + y.
func (x Int) Add(y Int) Int { return newInt(new(big.Int).Add(x.bi(), y.bi())) }

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return newInt(new(big.Int).Sub(x.bi(), y.bi())) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int { return newInt(new(big.Int).Mul(x.bi(), y.bi())) }

// QuotientAndRemainder returns the truncated quotient and remainder of
// x / y, following divQR's sign convention.
func (x Int) QuotientAndRemainder(y Int) (q, r Int, err error) {
	qb, rb, err := kDivQR(x.bi(), y.bi())
	if err != nil {
		return Int{}, Int{}, err
	}
	return newInt(qb), newInt(rb), nil
}

// Quotient returns the truncated quotient of x / y.
func (x Int) Quotient(y Int) (Int, error) {
	q, _, err := x.QuotientAndRemainder(y)
	return q, err
}

// Remainder returns the truncated remainder of x / y.
func (x Int) Remainder(y Int) (Int, error) {
	_, r, err := x.QuotientAndRemainder(y)
	return r, err
}

// Mod returns x mod n in [0, n), requiring n > 0, distinct from Remainder's
// truncated semantics.
func (x Int) Mod(n Int) (Int, error) {
	z, err := kMod(x.bi(), n.bi())
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// DividedBy performs an exact integer division, applying mode when the
// remainder is nonzero. With RoundUnnecessary it fails with
// ErrRoundingNecessary if the division is inexact.
func (x Int) DividedBy(y Int, mode RoundingMode) (Int, error) {
	q, r, err := x.QuotientAndRemainder(y)
	if err != nil {
		return Int{}, err
	}
	if r.IsZero() {
		return q, nil
	}
	rAbs := new(big.Int).Abs(r.bi())
	dAbs := new(big.Int).Abs(y.bi())
	adjust, err := mode.decide(x.Sign()*y.Sign(), rAbs, dAbs, q.bi())
	if err != nil {
		return Int{}, err
	}
	if !adjust {
		return q, nil
	}
	if x.Sign()*y.Sign() < 0 {
		return q.Sub(IntOne), nil
	}
	return q.Add(IntOne), nil
}

// Pow returns x**e for e in [0, 1_000_000].
func (x Int) Pow(e int64) (Int, error) {
	z, err := kPow(x.bi(), e)
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// PowMod returns x**e mod n. x and e must be non-negative, n must be
// positive.
func (x Int) PowMod(e, n Int) (Int, error) {
	z, err := kPowMod(x.bi(), e.bi(), n.bi())
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// ModInverse returns x^-1 mod m.
func (x Int) ModInverse(m Int) (Int, error) {
	z, err := kModInverse(x.bi(), m.bi())
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// GCD returns the non-negative greatest common divisor of x and y.
func (x Int) GCD(y Int) Int {
	return newInt(kGCD(x.bi(), y.bi()))
}

// GCDMultiple folds GCD left-to-right across one or more values.
func GCDMultiple(first Int, rest ...Int) Int {
	others := make([]*big.Int, len(rest))
	for i, r := range rest {
		others[i] = r.bi()
	}
	return newInt(kGCDMultiple(first.bi(), others...))
}

// Sqrt returns floor(sqrt(x)) for x >= 0.
func (x Int) Sqrt() (Int, error) {
	z, err := kSqrt(x.bi())
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// And, Or, Xor, and Not operate on the infinite two's-complement view of
// their operands.
func (x Int) And(y Int) Int { return newInt(new(big.Int).And(x.bi(), y.bi())) }
func (x Int) Or(y Int) Int  { return newInt(new(big.Int).Or(x.bi(), y.bi())) }
func (x Int) Xor(y Int) Int { return newInt(new(big.Int).Xor(x.bi(), y.bi())) }
func (x Int) Not() Int      { return newInt(new(big.Int).Not(x.bi())) }

// ShiftLeft returns x * 2^n; a negative n shifts right instead.
func (x Int) ShiftLeft(n int64) Int { return newInt(kShiftLeft(x.bi(), n)) }

// ShiftRight returns floor(x / 2^n); a negative n shifts left instead.
func (x Int) ShiftRight(n int64) Int { return newInt(kShiftRight(x.bi(), n)) }

// BitLength returns the minimal n such that -2^n <= x < 2^n.
func (x Int) BitLength() int { return kBitLength(x.bi()) }

// LowestSetBit returns the index of x's least-significant 1 bit in its
// two's-complement representation, or -1 if x is zero.
func (x Int) LowestSetBit() int { return kLowestSetBit(x.bi()) }

// TestBit returns the value (0 or 1) of bit n of x.
func (x Int) TestBit(n int) (int, error) { return kTestBit(x.bi(), n) }

// ToBase renders x in base b (2..36), lowercase digits.
func (x Int) ToBase(base int) (string, error) { return kToBase(x.bi(), base) }

// ParseIntBase parses an optionally-signed, case-insensitive base-b string.
func ParseIntBase(s string, base int) (Int, error) {
	z, err := kFromBase(s, base)
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// ToArbitraryBase renders the non-negative value x using alphabet.
func (x Int) ToArbitraryBase(alphabet string) (string, error) {
	return kToArbitraryBase(x.bi(), alphabet)
}

// ParseIntArbitraryBase parses a string written in alphabet.
func ParseIntArbitraryBase(s, alphabet string) (Int, error) {
	z, err := kFromArbitraryBase(s, alphabet)
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// ToBytes encodes x as a big-endian byte string. When signed is true, the
// encoding is the shortest two's-complement form; when false, it is the
// shortest unsigned magnitude and x must be non-negative.
func (x Int) ToBytes(signed bool) ([]byte, error) {
	if signed {
		return kToBytesSigned(x.bi()), nil
	}
	return kToBytesUnsigned(x.bi())
}

// IntFromBytes decodes a big-endian byte string produced by [Int.ToBytes].
func IntFromBytes(b []byte, signed bool) (Int, error) {
	var z *big.Int
	var err error
	if signed {
		z, err = kFromBytesSigned(b)
	} else {
		z, err = kFromBytesUnsigned(b)
	}
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// RandomBitsInt draws a uniform Int in [0, 2^n) from src.
func RandomBitsInt(n int, src ByteSource) (Int, error) {
	z, err := kRandomBits(n, src)
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// RandomRangeInt draws a uniform Int in [min, max] from src via rejection
// sampling.
func RandomRangeInt(min, max Int, src ByteSource) (Int, error) {
	z, err := kRandomRange(min.bi(), max.bi(), src)
	if err != nil {
		return Int{}, err
	}
	return newInt(z), nil
}

// ToInt64 converts x to a native int64, failing with ErrIntegerOverflow if
// x is outside that range.
func (x Int) ToInt64() (int64, error) {
	if !x.bi().IsInt64() {
		return 0, fmt.Errorf("%w: %s does not fit in an int64", ErrIntegerOverflow, x.String())
	}
	return x.bi().Int64(), nil
}

// ToFloat64 converts x to the nearest float64, returning ±Inf (never an
// error) when the magnitude exceeds the float64 range.
func (x Int) ToFloat64() float64 {
	f := new(big.Float).SetInt(x.bi())
	v, _ := f.Float64()
	return v
}

// ToDecimal promotes x to a Decimal with scale 0.
func (x Int) ToDecimal() Decimal {
	return newDecimal(x.Sign() < 0, newInt(new(big.Int).Abs(x.bi())), 0)
}

// ToRational promotes x to a Rational with denominator 1.
func (x Int) ToRational() Rational {
	return newRational(x, IntOne)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// Value implements driver.Valuer, persisting x as its decimal string.
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements sql.Scanner.
func (x *Int) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return x.UnmarshalText([]byte(v))
	case []byte:
		return x.UnmarshalText(v)
	case int64:
		*x = NewIntFromInt64(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Int", ErrNumberFormat, src)
	}
}
