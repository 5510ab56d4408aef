package bignum

import (
	"fmt"
	"math/big"
)

// RoundingMode selects how a nonzero remainder is handled when an exact
// division or rescale is impossible. It is modeled as a small int type with
// a String method and exported constants.
type RoundingMode int8

const (
	// RoundUp moves the quotient away from zero whenever a remainder
	// remains.
	RoundUp RoundingMode = iota
	// RoundDown truncates: the quotient is never adjusted.
	RoundDown
	// RoundCeiling moves the quotient toward positive infinity.
	RoundCeiling
	// RoundFloor moves the quotient toward negative infinity.
	RoundFloor
	// RoundHalfUp moves the quotient away from zero when the remainder is
	// at least half of the divisor.
	RoundHalfUp
	// RoundHalfDown moves the quotient away from zero only when the
	// remainder strictly exceeds half of the divisor.
	RoundHalfDown
	// RoundHalfCeiling behaves like RoundHalfUp, except that an exact half
	// remainder rounds toward positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor behaves like RoundHalfUp, except that an exact half
	// remainder rounds toward negative infinity.
	RoundHalfFloor
	// RoundHalfEven behaves like RoundHalfUp, except that an exact half
	// remainder rounds so the retained quotient is even.
	RoundHalfEven
	// RoundUnnecessary demands an exact result; a nonzero remainder fails
	// with ErrRoundingNecessary.
	RoundUnnecessary
)

// String implements fmt.Stringer, returning the canonical mode identifier.
func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfCeiling:
		return "HALF_CEILING"
	case RoundHalfFloor:
		return "HALF_FLOOR"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int8(m))
	}
}

// ParseRoundingMode maps a canonical mode identifier to its RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "UP":
		return RoundUp, nil
	case "DOWN":
		return RoundDown, nil
	case "CEILING":
		return RoundCeiling, nil
	case "FLOOR":
		return RoundFloor, nil
	case "HALF_UP":
		return RoundHalfUp, nil
	case "HALF_DOWN":
		return RoundHalfDown, nil
	case "HALF_CEILING":
		return RoundHalfCeiling, nil
	case "HALF_FLOOR":
		return RoundHalfFloor, nil
	case "HALF_EVEN":
		return RoundHalfEven, nil
	case "UNNECESSARY":
		return RoundUnnecessary, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a rounding mode", ErrInvalidArgument, s)
	}
}

// decide implements the rounding-mode decision table: given the sign of the
// pre-rounding quotient (sign(dividend)*sign(divisor)), the absolute
// remainder and absolute divisor, and the truncated quotient q (whose
// parity matters only for RoundHalfEven), it reports whether q must move
// one unit away from zero.
func (m RoundingMode) decide(quotientSign int, rAbs, dAbs, q *big.Int) (bool, error) {
	if rAbs.Sign() == 0 {
		return false, nil
	}
	twiceR := new(big.Int).Lsh(rAbs, 1)
	cmp := twiceR.Cmp(dAbs) // -1: below half, 0: exactly half, 1: above half

	switch m {
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return quotientSign > 0, nil
	case RoundFloor:
		return quotientSign < 0, nil
	case RoundHalfUp:
		return cmp >= 0, nil
	case RoundHalfDown:
		return cmp > 0, nil
	case RoundHalfCeiling:
		if cmp == 0 {
			return quotientSign > 0, nil
		}
		return cmp > 0, nil
	case RoundHalfFloor:
		if cmp == 0 {
			return quotientSign < 0, nil
		}
		return cmp > 0, nil
	case RoundHalfEven:
		if cmp == 0 {
			return q.Bit(0) != 0, nil
		}
		return cmp > 0, nil
	case RoundUnnecessary:
		return false, fmt.Errorf("%w: exact result required but remainder is nonzero", ErrRoundingNecessary)
	default:
		return false, fmt.Errorf("%w: unknown rounding mode %v", ErrInvalidArgument, m)
	}
}
