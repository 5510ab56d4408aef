package bignum

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// This file is the Parser & Coercion (PC) layer: string-grammar recognition
// and locale-insensitive float ingestion, done with manual byte scanning
// rather than regexp.

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits (used for the rational grammar's unsigned denominator).
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigitByte(s[i]) {
			return false
		}
	}
	return true
}

// ParseDecimal parses the decimal grammar:
//
//	[sign] (digits '.'? digits* | '.' digits+) (('e'|'E') [sign] digits)?
//
// with at least one digit overall. The resulting scale is
// (fractional digit count) - (exponent), clamped at zero by multiplying
// the coefficient up when that difference is negative.
func ParseDecimal(s string) (Decimal, error) {
	pos, width := 0, len(s)

	neg := false
	if pos < width && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}

	intStart := pos
	for pos < width && isDigitByte(s[pos]) {
		pos++
	}
	intDigits := s[intStart:pos]

	var fracDigits string
	if pos < width && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < width && isDigitByte(s[pos]) {
			pos++
		}
		fracDigits = s[fracStart:pos]
	}

	if intDigits == "" && fracDigits == "" {
		return Decimal{}, fmt.Errorf("%w: %q has no digits", ErrNumberFormat, s)
	}

	var exp int64
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		expNeg := false
		if pos < width && (s[pos] == '+' || s[pos] == '-') {
			expNeg = s[pos] == '-'
			pos++
		}
		expStart := pos
		for pos < width && isDigitByte(s[pos]) {
			pos++
		}
		if pos == expStart {
			return Decimal{}, fmt.Errorf("%w: %q has a malformed exponent", ErrNumberFormat, s)
		}
		v, err := strconv.ParseInt(s[expStart:pos], 10, 64)
		if err != nil {
			return Decimal{}, fmt.Errorf("%w: exponent in %q does not fit a signed 64-bit integer: %v", ErrNumberFormat, s, err)
		}
		if expNeg {
			v = -v
		}
		exp = v
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("%w: unexpected character %q in %q", ErrNumberFormat, s[pos], s)
	}

	fracCount := int64(len(fracDigits))
	rawScale := fracCount - exp

	digits := intDigits + fracDigits
	var scale int64
	if rawScale < 0 {
		digits += strings.Repeat("0", int(-rawScale))
		scale = 0
	} else {
		scale = rawScale
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %q is not a valid decimal", ErrNumberFormat, s)
	}
	if coef.Sign() == 0 {
		neg = false
	}
	return newDecimal(neg, newInt(coef), scale), nil
}

// ParseRational parses the rational grammar: [sign] digits '/' digits,
// where the denominator is unsigned. A zero denominator parses without
// error; the resulting value fails with ErrDivisionByZero when it is later
// divided out (for example by [Rational.ToDecimal]). Scientific notation is never accepted
// in either component — strings of that shape go through [ParseDecimal]
// instead.
func ParseRational(s string) (Rational, error) {
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return Rational{}, fmt.Errorf("%w: %q is not of the form p/q", ErrNumberFormat, s)
	}
	numStr, denStr := s[:idx], s[idx+1:]
	if !isStrictDecimalInteger(numStr) {
		return Rational{}, fmt.Errorf("%w: numerator %q in %q is not an integer", ErrNumberFormat, numStr, s)
	}
	if !isAllDigits(denStr) {
		return Rational{}, fmt.Errorf("%w: denominator %q in %q is not an unsigned integer", ErrNumberFormat, denStr, s)
	}
	num, _ := new(big.Int).SetString(numStr, 10)
	den, _ := new(big.Int).SetString(denStr, 10)
	return newRational(newInt(num), newInt(den)), nil
}

// floatToDecimalString renders f as a fixed-point (never scientific)
// locale-insensitive numeric string, rejecting the non-finite values ±Inf
// and NaN. strconv.FormatFloat always uses '.' regardless of the host
// locale, which avoids any process-global locale mutation.
func floatToDecimalString(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrNumberFormat, f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}
