// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements precise decimal arithmetic on top of math/big.Rat
//              with a tracked display scale and exact rounding.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-19 v0.3.0: Display scale derived from input, integer based rounding,
//                       significant digit limit for inexact quotients
// - 2026-10-20 v0.3.1: Reduced to the operations the calculator uses

package mathx

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/mcalc/foundation/core/errors"
)

// DivisionPrecision is the number of significant digits kept when a
// quotient has no finite decimal expansion.
const DivisionPrecision = 28

// maxExponent bounds the exponent accepted by NewDecimal
const maxExponent = 4096

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0 with scale 0.
type Decimal struct {
	value *big.Rat
	scale int32
}

// NewDecimal parses s as a decimal number. Accepted forms are plain
// decimals ("12", "-0.5", ".5", "3.") with an optional exponent ("1e3").
func NewDecimal(s string) (Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if !decimalPattern.MatchString(trimmed) {
		return Decimal{}, errors.MathxInvalidDecimal(s)
	}

	mantissa, exponent := trimmed, 0
	if idx := strings.IndexAny(trimmed, "eE"); idx >= 0 {
		mantissa = trimmed[:idx]
		exp, err := strconv.Atoi(trimmed[idx+1:])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return Decimal{}, errors.MathxInvalidDecimal(s)
		}
		exponent = exp
	}

	fraction := 0
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		fraction = len(mantissa) - dot - 1
	}

	rat, ok := new(big.Rat).SetString(strings.TrimPrefix(trimmed, "+"))
	if !ok {
		return Decimal{}, errors.MathxInvalidDecimal(s)
	}

	scale := fraction - exponent
	if scale < 0 {
		scale = 0
	}
	return Decimal{value: rat, scale: int32(scale)}, nil
}

// rat returns the value, treating the zero Decimal as 0
func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Add(d.rat(), other.rat()),
		scale: max(d.scale, other.scale),
	}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Sub(d.rat(), other.rat()),
		scale: max(d.scale, other.scale),
	}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{
		value: new(big.Rat).Mul(d.rat(), other.rat()),
		scale: d.scale + other.scale,
	}
}

// Divide returns the quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.MathxDivisionByZero("divide")
	}

	quotient := new(big.Rat).Quo(d.rat(), other.rat())
	preferred := max(d.scale-other.scale, 0)

	if digits, ok := terminatingDigits(quotient.Denom()); ok {
		return Decimal{value: quotient, scale: max(int32(digits), preferred)}, nil
	}

	return roundSignificant(quotient, DivisionPrecision), nil
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.value == nil || d.value.Sign() == 0
}

// String returns the plain decimal representation with scale fractional digits
func (d Decimal) String() string {
	return d.rat().FloatString(int(d.scale))
}

// terminatingDigits reports whether 1/denom has a finite decimal expansion
// and how many fractional digits it needs.
func terminatingDigits(denom *big.Int) (int, bool) {
	rest := new(big.Int).Set(denom)
	mod := new(big.Int)
	twos, fives := 0, 0

	for {
		q, r := new(big.Int).QuoRem(rest, bigTwo, mod)
		if r.Sign() != 0 {
			break
		}
		rest = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(rest, bigFive, mod)
		if r.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}

	if rest.Cmp(bigOne) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}

// roundSignificant rounds a nonzero value half-even to digits significant digits
func roundSignificant(value *big.Rat, digits int) Decimal {
	abs := new(big.Rat).Abs(value)
	exp := magnitude(abs)
	places := digits - 1 - exp

	rounded := roundAt(value, places)
	// Rounding may carry into the next power of ten (9.99… -> 10.0…)
	if magnitude(new(big.Rat).Abs(rounded)) > exp {
		places--
		rounded = roundAt(value, places)
	}

	return Decimal{value: rounded, scale: int32(max(places, 0))}
}

// roundAt rounds value half-even to places fractional digits. Negative
// places round to tens, hundreds and so on.
func roundAt(value *big.Rat, places int) *big.Rat {
	factor := pow10(places)
	scaled := new(big.Rat).Mul(value, factor)
	rounded := new(big.Rat).SetInt(roundHalfEven(scaled))
	return rounded.Quo(rounded, factor)
}

// magnitude returns floor(log10(v)) for v > 0
func magnitude(v *big.Rat) int {
	exp := len(v.Num().String()) - len(v.Denom().String())
	if v.Cmp(pow10(exp)) < 0 {
		exp--
	}
	return exp
}

// pow10 returns 10^n as a rational, n may be negative
func pow10(n int) *big.Rat {
	if n >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil))
	}
	return new(big.Rat).SetFrac(bigOne, new(big.Int).Exp(bigTen, big.NewInt(int64(-n)), nil))
}

// roundHalfEven rounds a rational to the nearest integer, ties to even
func roundHalfEven(v *big.Rat) *big.Int {
	num := new(big.Int).Abs(v.Num())
	den := v.Denom()
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	if rem.Sign() != 0 {
		cmp := new(big.Int).Lsh(rem, 1).Cmp(den)
		if cmp > 0 || (cmp == 0 && quo.Bit(0) == 1) {
			quo.Add(quo, bigOne)
		}
	}

	if v.Sign() < 0 {
		quo.Neg(quo)
	}
	return quo
}
