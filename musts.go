package bignum

import "fmt"

// MustParseInt is like [ParseInt] but panics if parsing fails.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt(%q) failed: %v", s, err))
	}
	return x
}

// MustParseDecimal is like [ParseDecimal] but panics if parsing fails.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// MustParseRational is like [ParseRational] but panics if parsing fails.
func MustParseRational(s string) Rational {
	r, err := ParseRational(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRational(%q) failed: %v", s, err))
	}
	return r
}

// MustOf is like [Of] but panics if coercion fails.
func MustOf(value any) Number {
	n, err := Of(value)
	if err != nil {
		panic(fmt.Sprintf("MustOf(%v) failed: %v", value, err))
	}
	return n
}

// MustQuotient is like [Int.Quotient] but panics on error.
func (x Int) MustQuotient(y Int) Int {
	q, err := x.Quotient(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuotient(%v) failed: %v", y, err))
	}
	return q
}

// MustDividedBy is like [Int.DividedBy] but panics on error.
func (x Int) MustDividedBy(y Int, mode RoundingMode) Int {
	q, err := x.DividedBy(y, mode)
	if err != nil {
		panic(fmt.Sprintf("MustDividedBy(%v, %v) failed: %v", y, mode, err))
	}
	return q
}

// MustPow is like [Int.Pow] but panics on error.
func (x Int) MustPow(e int64) Int {
	z, err := x.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%d) failed: %v", e, err))
	}
	return z
}

// MustQuo is like [Decimal.Quo] but panics on error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustQuoScale is like [Decimal.QuoScale] but panics on error.
func (d Decimal) MustQuoScale(e Decimal, scale int64, mode RoundingMode) Decimal {
	f, err := d.QuoScale(e, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustQuoScale(%v, %d, %v) failed: %v", e, scale, mode, err))
	}
	return f
}

// MustSqrt is like [Decimal.Sqrt] but panics on error.
func (d Decimal) MustSqrt(scale int64) Decimal {
	f, err := d.Sqrt(scale)
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%d) failed: %v", scale, err))
	}
	return f
}

// MustQuo is like [Rational.Quo] but panics on error.
func (r Rational) MustQuo(s Rational) Rational {
	q, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return q
}
