/*
Package bignum implements arbitrary-precision integer, decimal, and
rational arithmetic.

# Internal Representation

The package exposes three immutable value types:

  - [Int]: a sign-magnitude arbitrary-precision integer, wrapping
    [math/big.Int] internally.
  - [Decimal]: an (unscaled [Int], non-negative scale) pair denoting
    unscaled × 10⁻ˢᶜᵃˡᵉ. Construction never strips trailing zeros
    implicitly; call [Decimal.StripTrailingZeros] to do that explicitly.
    Unlike fixed-precision decimal packages, scale is unbounded — there is
    no maximum-digit-count ceiling to overflow past.
  - [Rational]: a (numerator [Int], strictly positive denominator [Int])
    pair. Unlike [math/big.Rat], it is never implicitly simplified;
    [Rational.Simplified] produces a new, reduced value on request.

All three satisfy [Number], the shared contract through which [Of], [Min],
[Max], and [Sum] operate across domains using the promotion lattice
Int ⊂ Decimal ⊂ Rational.

# Arithmetic Operations

Every operation returns a fresh value; none of the three types is ever
mutated after construction. Addition, subtraction, and multiplication are
total. Division requires a [RoundingMode] whenever the mathematically
exact result is not representable at the requested scale; the zero value
of RoundingMode, [RoundUp], is never assumed by an operation that can also
fail with [ErrRoundingNecessary] under [RoundUnnecessary] — callers pick
a mode explicitly for every division that takes one, and [Decimal.Quo]
always uses [RoundUnnecessary].

# Rounding Methods

Nine rounding modes are supported, named after the familiar
BigDecimal-style identifiers: [RoundUp], [RoundDown],
[RoundCeiling], [RoundFloor], [RoundHalfUp], [RoundHalfDown],
[RoundHalfCeiling], [RoundHalfFloor], and [RoundHalfEven]. A tenth value,
[RoundUnnecessary], demands an exact result and fails with
[ErrRoundingNecessary] otherwise.

# Error Handling

All methods are panic-free; the Must-prefixed wrappers in musts.go are the
only panicking surface, for callers who have already established that an
input cannot fail. Every fallible path returns one of the sentinel errors
declared in errors.go, wrapped with [fmt.Errorf]'s %w verb so callers can
use [errors.Is] against the sentinel regardless of the operation that
produced it.

# Data Conversion

The package integrates with standard [encoding] via [encoding.TextMarshaler]
and [encoding.TextUnmarshaler] on all three types, and with
[database/sql] via [database/sql/driver.Valuer] and [database/sql.Scanner].
Below is an example structure:

	type Ledger struct {
	  Balance bignum.Decimal `json:"balance"`
	}

Because [Decimal.MarshalText] and [Decimal.UnmarshalText] round-trip
through [Decimal.String] and [ParseDecimal], [encoding/json] marshals
decimals as quoted strings that preserve the exact scale.

[math/big.Int]: https://pkg.go.dev/math/big#Int
[math/big.Rat]: https://pkg.go.dev/math/big#Rat
[database/sql/driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
[database/sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
*/
package bignum
