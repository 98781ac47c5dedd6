// Package limits describes the representable range of decimal.Decimal in the
// shape of a numeric limits table.
package limits

import (
	"math"

	"github.com/calebcase/precise/decimal"
)

// MaxMantissa is the largest mantissa of Max and Lowest: the ScaleLimit+1
// digit number made of nines.
const MaxMantissa uint64 = 9_999_999_999_999_999_999

// Traits is a numeric limits descriptor.
type Traits struct {
	IsSigned        bool
	IsInteger       bool
	IsExact         bool
	IsBounded       bool
	IsModulo        bool
	Radix           int
	MinExponent10   int
	MaxExponent10   int
	HasInfinity     bool
	HasQuietNaN     bool
	HasSignalingNaN bool
	Traps           bool
}

// Decimal holds the limits of decimal.Decimal.
var Decimal = Traits{
	IsSigned:        true,
	IsInteger:       false,
	IsExact:         true,
	IsBounded:       true,
	IsModulo:        false,
	Radix:           10,
	MinExponent10:   -decimal.ScaleLimit,
	MaxExponent10:   decimal.ScaleLimit,
	HasInfinity:     true,
	HasQuietNaN:     true,
	HasSignalingNaN: false,
	Traps:           true,
}

// Min returns the smallest magnitude, zero.
func (Traits) Min() decimal.Decimal {
	return decimal.New(decimal.Positive, 0, 0)
}

// Max returns the largest finite value.
func (Traits) Max() decimal.Decimal {
	return decimal.New(decimal.Positive, MaxMantissa, 0)
}

// Lowest returns the most negative finite value.
func (Traits) Lowest() decimal.Decimal {
	return decimal.New(decimal.Negative, MaxMantissa, 0)
}

// Epsilon is zero: values are exact on their grid.
func (Traits) Epsilon() decimal.Decimal {
	return decimal.New(decimal.Positive, 0, 0)
}

// RoundError is zero for the same reason as Epsilon.
func (Traits) RoundError() decimal.Decimal {
	return decimal.New(decimal.Positive, 0, 0)
}

// Infinity returns the infinity sentinel: the largest mantissa at the
// largest scale. It is a fixed encoding, not an unbounded value.
func (Traits) Infinity() decimal.Decimal {
	return decimal.New(decimal.Positive, math.MaxUint64, math.MaxUint16)
}

// QuietNaN returns NaN.
func (Traits) QuietNaN() decimal.Decimal {
	return decimal.Decimal{}
}
