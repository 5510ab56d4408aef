package bignum

import (
	"fmt"
	"math/big"
)

// This file is the Integer Kernel (IK): the arbitrary-precision arithmetic
// substrate every domain type in this package is built on. It operates
// directly on *big.Int rather than the package's own Int, acting as the
// primary arithmetic engine for genuine arbitrary precision rather than a
// fixed-width fast path with overflow fallback.
//
// Every exported big.Int bitwise/shift method (And, Or, Xor, Not, Lsh, Rsh,
// Bit) already implements two's-complement semantics for negative operands;
// this file only adds what math/big does not provide directly: a named
// truncated/Euclidean division distinction, bit predicates defined over the
// two's-complement view, arbitrary-alphabet base conversion, a signed
// two's-complement byte codec, and injectable-RNG random factories.

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// kDivQR computes the truncated quotient and remainder of x/y: sign(quotient)
// = sign(x)*sign(y), sign(remainder) = sign(x), 0 <= |remainder| < |y|.
// big.Int.QuoRem already implements T-division (truncation toward zero), so
// this is a thin, zero-checked wrapper.
func kDivQR(x, y *big.Int) (q, r *big.Int, err error) {
	if y.Sign() == 0 {
		return nil, nil, fmt.Errorf("%w: division by zero", ErrDivisionByZero)
	}
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	return q, r, nil
}

// kMod computes the Euclidean-style positive remainder of mod(a, n): n must
// be strictly positive and the result lies in [0, n). big.Int.Mod already
// implements Euclidean division for a positive modulus.
func kMod(x, n *big.Int) (*big.Int, error) {
	if n.Sign() == 0 {
		return nil, fmt.Errorf("%w: modulus is zero", ErrDivisionByZero)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrNegativeNumber)
	}
	z := new(big.Int)
	z.Mod(x, n)
	return z, nil
}

// kPow computes x**e for e in [0, 1_000_000] via big.Int.Exp's
// repeated-squaring implementation.
func kPow(x *big.Int, e int64) (*big.Int, error) {
	if e < 0 || e > 1_000_000 {
		return nil, fmt.Errorf("%w: exponent %d out of range [0, 1000000]", ErrInvalidArgument, e)
	}
	z := new(big.Int)
	z.Exp(x, big.NewInt(e), nil)
	return z, nil
}

// kPowMod computes a**e mod n. a and e must be non-negative and n must be
// strictly positive.
func kPowMod(a, e, n *big.Int) (*big.Int, error) {
	if a.Sign() < 0 || e.Sign() < 0 {
		return nil, fmt.Errorf("%w: powMod requires non-negative base and exponent", ErrNegativeNumber)
	}
	if n.Sign() == 0 {
		return nil, fmt.Errorf("%w: modulus is zero", ErrDivisionByZero)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrNegativeNumber)
	}
	z := new(big.Int)
	z.Exp(a, e, n)
	return z, nil
}

// kModInverse computes x^-1 mod m for m > 0, requiring gcd(x mod m, m) = 1.
func kModInverse(x, m *big.Int) (*big.Int, error) {
	if m.Sign() == 0 {
		return nil, fmt.Errorf("%w: modulus is zero", ErrDivisionByZero)
	}
	if m.Sign() < 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrNegativeNumber)
	}
	xr := new(big.Int).Mod(x, m)
	z := new(big.Int)
	if z.ModInverse(xr, m) == nil {
		return nil, fmt.Errorf("%w: %s has no inverse modulo %s", ErrMathException, xr.String(), m.String())
	}
	return z, nil
}

// kGCD computes the non-negative greatest common divisor of a and b.
func kGCD(a, b *big.Int) *big.Int {
	z := new(big.Int)
	z.GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return z
}

// kGCDMultiple folds kGCD left-to-right across one or more values.
func kGCDMultiple(first *big.Int, rest ...*big.Int) *big.Int {
	g := new(big.Int).Abs(first)
	for _, v := range rest {
		g = kGCD(g, v)
	}
	return g
}

// kSqrt computes floor(sqrt(x)) for x >= 0 using Newton's method directly
// (rather than relying solely on big.Int.Sqrt's undocumented internals), so
// the iteration and its exact-square tie behavior stay auditable.
func kSqrt(x *big.Int) (*big.Int, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: sqrt of negative number", ErrNegativeNumber)
	}
	if x.Sign() == 0 {
		return big.NewInt(0), nil
	}
	// Initial guess: 2^ceil(bitLen(x)/2).
	bits := uint((x.BitLen() + 1) / 2)
	guess := new(big.Int).Lsh(bigOne, bits)
	for {
		// next = (guess + x/guess) / 2
		quo := new(big.Int).Quo(x, guess)
		next := new(big.Int).Add(guess, quo)
		next.Rsh(next, 1)
		if next.Cmp(guess) >= 0 {
			// guess is non-increasing; guess is the floor.
			break
		}
		guess = next
	}
	return guess, nil
}

// kBitLength returns the minimal n such that -2^n <= x < 2^n, the
// two's-complement bit length rather than big.Int.BitLen (which only
// answers the question for the magnitude).
func kBitLength(x *big.Int) int {
	if x.Sign() >= 0 {
		return x.BitLen()
	}
	absMinusOne := new(big.Int).Neg(x)
	absMinusOne.Sub(absMinusOne, bigOne)
	return absMinusOne.BitLen()
}

// kLowestSetBit returns the index of the least-significant 1 bit in the
// two's-complement representation of x, or -1 if x is zero. Negating a
// number never changes the position of its lowest set bit (x & -x isolates
// the same bit for x and -x), so the magnitude's trailing zero count always
// answers this regardless of sign.
func kLowestSetBit(x *big.Int) int {
	if x.Sign() == 0 {
		return -1
	}
	return int(new(big.Int).Abs(x).TrailingZeroBits())
}

// kTestBit returns the value (0 or 1) of bit n of x under two's-complement
// semantics. n must be non-negative.
func kTestBit(x *big.Int, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: bit index %d is negative", ErrInvalidArgument, n)
	}
	return int(x.Bit(n)), nil
}

// kShiftLeft computes x * 2^n for n >= 0; negative n delegates to
// kShiftRight(-n).
func kShiftLeft(x *big.Int, n int64) *big.Int {
	if n < 0 {
		return kShiftRight(x, -n)
	}
	return new(big.Int).Lsh(x, uint(n))
}

// kShiftRight computes floor(x / 2^n) for n >= 0 (arithmetic,
// sign-propagating shift); negative n delegates to kShiftLeft(-n).
func kShiftRight(x *big.Int, n int64) *big.Int {
	if n < 0 {
		return kShiftLeft(x, -n)
	}
	return new(big.Int).Rsh(x, uint(n))
}

// kToBase renders x in base b (2..36), lowercase digits, optional leading
// '-'.
func kToBase(x *big.Int, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: base %d out of range [2, 36]", ErrInvalidArgument, base)
	}
	return x.Text(base), nil
}

// kFromBase parses an optionally-signed, case-insensitive base-b string,
// tolerating leading zeros.
func kFromBase(s string, base int) (*big.Int, error) {
	if base < 2 || base > 36 {
		return nil, fmt.Errorf("%w: base %d out of range [2, 36]", ErrInvalidArgument, base)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrNumberFormat)
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a valid base-%d integer", ErrNumberFormat, s, base)
	}
	return z, nil
}

// kToArbitraryBase renders the non-negative value x using a caller-supplied
// alphabet of at least two symbols. There is no implicit sign prefix:
// negative x is rejected.
func kToArbitraryBase(x *big.Int, alphabet string) (string, error) {
	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return "", fmt.Errorf("%w: alphabet must have at least 2 symbols", ErrInvalidArgument)
	}
	if x.Sign() < 0 {
		return "", fmt.Errorf("%w: toArbitraryBase requires a non-negative value", ErrNegativeNumber)
	}
	if x.Sign() == 0 {
		return string(symbols[0]), nil
	}
	base := big.NewInt(int64(len(symbols)))
	n := new(big.Int).Set(x)
	rem := new(big.Int)
	digits := make([]rune, 0, n.BitLen())
	for n.Sign() > 0 {
		n.QuoRem(n, base, rem)
		digits = append(digits, symbols[rem.Int64()])
	}
	// digits were collected least-significant first; reverse.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// kFromArbitraryBase parses a string written in a caller-supplied alphabet.
// The empty string and any character outside the alphabet are rejected;
// leading occurrences of alphabet[0] (the "zero" symbol) are tolerated.
func kFromArbitraryBase(s string, alphabet string) (*big.Int, error) {
	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: alphabet must have at least 2 symbols", ErrInvalidArgument)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrNumberFormat)
	}
	index := make(map[rune]int64, len(symbols))
	for i, r := range symbols {
		index[r] = int64(i)
	}
	base := big.NewInt(int64(len(symbols)))
	z := big.NewInt(0)
	for _, r := range s {
		d, ok := index[r]
		if !ok {
			return nil, fmt.Errorf("%w: character %q is not in the alphabet", ErrNumberFormat, r)
		}
		z.Mul(z, base)
		z.Add(z, big.NewInt(d))
	}
	return z, nil
}

// kToBytesUnsigned returns the shortest big-endian magnitude encoding of a
// non-negative x; zero encodes as the single byte 0x00. Negative x is
// rejected.
func kToBytesUnsigned(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: unsigned encoding requires a non-negative value", ErrNegativeNumber)
	}
	if x.Sign() == 0 {
		return []byte{0x00}, nil
	}
	return x.Bytes(), nil
}

// kFromBytesUnsigned decodes a big-endian magnitude. Empty input is
// rejected.
func kFromBytesUnsigned(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty byte string", ErrNumberFormat)
	}
	return new(big.Int).SetBytes(b), nil
}

// kToBytesSigned returns the shortest big-endian two's-complement encoding
// of x, following the same minimal-width rule as Java's
// BigInteger.toByteArray: bitLength/8 + 1 bytes, which always leaves room
// for a correct sign bit.
func kToBytesSigned(x *big.Int) []byte {
	n := kBitLength(x)
	byteLen := n/8 + 1
	var val *big.Int
	if x.Sign() >= 0 {
		val = x
	} else {
		val = new(big.Int).Lsh(bigOne, uint(8*byteLen))
		val.Add(val, x)
	}
	return val.FillBytes(make([]byte, byteLen))
}

// kFromBytesSigned decodes a big-endian two's-complement byte string.
// Empty input is rejected. Extra leading sign-extension bytes are
// tolerated and round-trip to the same value.
func kFromBytesSigned(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty byte string", ErrNumberFormat)
	}
	val := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		full := new(big.Int).Lsh(bigOne, uint(8*len(b)))
		val.Sub(val, full)
	}
	return val, nil
}

// ByteSource draws exactly n bytes of entropy for the random factories
// below. It is called synchronously and at most once per accepted sample;
// RandomRange may call it multiple times if it must reject a sample.
type ByteSource func(n int) ([]byte, error)

// kRandomBits draws a uniform value in [0, 2^n) from src, calling it exactly
// once.
func kRandomBits(n int, src ByteSource) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: bit count %d is negative", ErrInvalidArgument, n)
	}
	if n == 0 {
		return big.NewInt(0), nil
	}
	nBytes := (n + 7) / 8
	raw, err := src(nBytes)
	if err != nil {
		return nil, err
	}
	if len(raw) != nBytes {
		return nil, fmt.Errorf("%w: random source returned %d bytes, want %d", ErrNumberFormat, len(raw), nBytes)
	}
	buf := make([]byte, nBytes)
	copy(buf, raw)
	topBits := 8*nBytes - n
	if topBits > 0 {
		buf[0] &= 0xFF >> uint(topBits)
	}
	return new(big.Int).SetBytes(buf), nil
}

// kRandomRange draws a uniform value in [min, max] from src via rejection
// sampling. min must not exceed max; equal bounds return min without
// consulting src.
func kRandomRange(min, max *big.Int, src ByteSource) (*big.Int, error) {
	if min.Cmp(max) > 0 {
		return nil, fmt.Errorf("%w: min %s exceeds max %s", ErrMathException, min.String(), max.String())
	}
	if min.Cmp(max) == 0 {
		return new(big.Int).Set(min), nil
	}
	diff := new(big.Int).Sub(max, min)
	bitLen := diff.BitLen()
	for {
		sample, err := kRandomBits(bitLen, src)
		if err != nil {
			return nil, err
		}
		if sample.Cmp(diff) <= 0 {
			return sample.Add(sample, min), nil
		}
	}
}
