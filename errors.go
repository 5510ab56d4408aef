package bignum

import "errors"

// Error kinds returned by this package. Callers should compare against
// these with [errors.Is]; the concrete error returned from any operation
// may wrap one of these sentinels with additional detail via fmt.Errorf.
var (
	// ErrNumberFormat indicates unparseable input, an empty byte string
	// passed to a decoder, or a character outside the expected alphabet
	// during base decoding.
	ErrNumberFormat = errors.New("number format")

	// ErrDivisionByZero indicates a division or modular operation with a
	// zero divisor, the reciprocal of zero, or a modular inverse with a
	// zero modulus.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrRoundingNecessary indicates that an exact result was required
	// (mode UNNECESSARY, ToBigInt, QuoExact, or a ShiftPointRight past
	// scale 0) but the true result is not exactly representable.
	ErrRoundingNecessary = errors.New("rounding necessary")

	// ErrNegativeNumber indicates an operation that forbids negative
	// inputs (Sqrt, PowMod arguments, unsigned ToBytes, ToArbitraryBase).
	ErrNegativeNumber = errors.New("negative number")

	// ErrIntegerOverflow indicates that ToInt64 was called on a value
	// outside the range of a signed 64-bit integer.
	ErrIntegerOverflow = errors.New("integer overflow")

	// ErrMathException indicates a domain violation with no more specific
	// kind: a modular inverse that does not exist, RandomRange called with
	// min > max, and similar cases.
	ErrMathException = errors.New("math exception")

	// ErrInvalidArgument indicates a negative scale, a base outside
	// [2, 36], an alphabet shorter than two symbols, an unrecognized
	// rounding mode, a power exponent outside [0, 1_000_000], or a
	// negative bit index passed to TestBit.
	ErrInvalidArgument = errors.New("invalid argument")
)
