package bignum

import (
	"fmt"
	"math/big"
)

// Number is the polymorphic parent implemented by Int, Decimal, and
// Rational: the shared abstract contract across all three numeric domains.
// It exists so [Of], [Min], [Max], and [Sum] can operate across the three
// domains without the caller pre-selecting one, addressing any numeric kind
// through one capability surface.
type Number interface {
	fmt.Stringer

	// domainRank places a value in the promotion lattice BI(0) < BD(1) <
	// BR(2); unexported so only this package's three domains can
	// implement Number.
	domainRank() int
	asRational() Rational
}

func (x Int) domainRank() int      { return 0 }
func (d Decimal) domainRank() int  { return 1 }
func (r Rational) domainRank() int { return 2 }

func (x Int) asRational() Rational { return x.ToRational() }
func (d Decimal) asRational() Rational {
	r, err := d.ToRational()
	if err != nil {
		// ToRational always returns a nil error, so this path is
		// unreachable.
		panic(err)
	}
	return r
}
func (r Rational) asRational() Rational { return r }

var (
	_ Number = Int{}
	_ Number = Decimal{}
	_ Number = Rational{}
)

// Of is the universal coercion: it accepts Int, Decimal, Rational, the host
// integer and float kinds, and strings, and returns the narrowest domain
// value that exactly represents the input. Int, Decimal, and Rational pass
// through unchanged (identity preserved).
func Of(value any) (Number, error) {
	switch v := value.(type) {
	case Int:
		return v, nil
	case Decimal:
		return v, nil
	case Rational:
		return v, nil
	case int:
		return NewIntFromInt64(int64(v)), nil
	case int8:
		return NewIntFromInt64(int64(v)), nil
	case int16:
		return NewIntFromInt64(int64(v)), nil
	case int32:
		return NewIntFromInt64(int64(v)), nil
	case int64:
		return NewIntFromInt64(v), nil
	case uint:
		return newInt(new(big.Int).SetUint64(uint64(v))), nil
	case uint8:
		return NewIntFromInt64(int64(v)), nil
	case uint16:
		return NewIntFromInt64(int64(v)), nil
	case uint32:
		return NewIntFromInt64(int64(v)), nil
	case uint64:
		return newInt(new(big.Int).SetUint64(v)), nil
	case float32:
		return ofFloat(float64(v))
	case float64:
		return ofFloat(v)
	case string:
		return ofString(v)
	default:
		return nil, fmt.Errorf("%w: cannot coerce value of type %T", ErrInvalidArgument, value)
	}
}

// ofFloat renders f through a locale-insensitive fixed-point string path,
// then parses it as a number.
func ofFloat(f float64) (Number, error) {
	s, err := floatToDecimalString(f)
	if err != nil {
		return nil, err
	}
	return ofString(s)
}

// ofString tries, in order, the integer grammar, the rational grammar,
// then the decimal grammar.
func ofString(s string) (Number, error) {
	if n, err := ParseInt(s); err == nil {
		return n, nil
	}
	if r, err := ParseRational(s); err == nil {
		return r, nil
	}
	if d, err := ParseDecimal(s); err == nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q is not a valid integer, rational, or decimal", ErrNumberFormat, s)
}

// Cmp3 compares two values of any domain by coercing both through Of and
// comparing as rationals, giving a total ordering across domains via a
// common comparison.
func Cmp3(a, b any) (int, error) {
	na, err := Of(a)
	if err != nil {
		return 0, err
	}
	nb, err := Of(b)
	if err != nil {
		return 0, err
	}
	return na.asRational().Cmp(nb.asRational()), nil
}

// extremum coerces every value with Of and walks the list keeping whichever
// compares favorably per dir (-1 for Min, +1 for Max). The dynamic type of
// the result is the dynamic type of the selected operand, never a promoted
// one.
func extremum(values []any, dir int, name string) (Number, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s requires at least one value", ErrInvalidArgument, name)
	}
	best, err := Of(values[0])
	if err != nil {
		return nil, err
	}
	bestR := best.asRational()
	for _, v := range values[1:] {
		n, err := Of(v)
		if err != nil {
			return nil, err
		}
		r := n.asRational()
		if c := r.Cmp(bestR); (dir < 0 && c < 0) || (dir > 0 && c > 0) {
			best, bestR = n, r
		}
	}
	return best, nil
}

// Min returns the least of values by value, coercing each through Of. The
// result keeps its original dynamic type even when other operands belong
// to a more general domain.
func Min(values ...any) (Number, error) {
	return extremum(values, -1, "Min")
}

// Max returns the greatest of values by value, coercing each through Of.
func Max(values ...any) (Number, error) {
	return extremum(values, 1, "Max")
}

// Sum adds values, coercing each through Of, and promotes the accumulator
// monotonically up the lattice BI < BD < BR as higher-rank addends appear.
// Every promotion step (BI→BD, BD→BR, BI→BR) is exact by construction —
// BD's scale-0 view of a BI, BR's denominator-1 view of a BI, and BR's
// unscaled/10^scale view of a BD lose no information — so under this promotion order the accumulator is never
// asked to represent a value it cannot hold exactly. See DESIGN.md for the
// rationale behind choosing pure upward promotion here.
func Sum(values ...any) (Number, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: Sum requires at least one value", ErrInvalidArgument)
	}
	acc, err := Of(values[0])
	if err != nil {
		return nil, err
	}
	for _, v := range values[1:] {
		n, err := Of(v)
		if err != nil {
			return nil, err
		}
		acc, err = addNumbers(acc, n)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// addNumbers adds a and b, promoting the lower-rank operand up to the
// higher-rank operand's domain before adding within that domain.
func addNumbers(a, b Number) (Number, error) {
	rank := a.domainRank()
	if b.domainRank() > rank {
		rank = b.domainRank()
	}
	switch rank {
	case 0:
		return a.(Int).Add(b.(Int)), nil
	case 1:
		ad, err := toDecimal(a)
		if err != nil {
			return nil, err
		}
		bd, err := toDecimal(b)
		if err != nil {
			return nil, err
		}
		return ad.Add(bd), nil
	default:
		return a.asRational().Add(b.asRational()), nil
	}
}

// toDecimal promotes a Number of rank 0 or 1 to Decimal; it is never
// called at rank 2.
func toDecimal(n Number) (Decimal, error) {
	switch v := n.(type) {
	case Int:
		return v.ToDecimal(), nil
	case Decimal:
		return v, nil
	default:
		return Decimal{}, fmt.Errorf("%w: %T cannot promote to Decimal", ErrInvalidArgument, n)
	}
}

// Coerce is an alias for Of, under the "Coerce" name that SPEC_FULL.md uses
// for the BigNumber contract's coercion entry point.
func Coerce(value any) (Number, error) { return Of(value) }
