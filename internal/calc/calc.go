// Package calc evaluates decimal operations for deccalc.
package calc

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/precise/decimal"
)

// Error is the error class for evaluation failures.
var Error = errs.Class("calc")

var (
	ErrUnknownOp = Error.New("unknown operation")
	ErrNaN       = Error.New("result is NaN")
)

// Ops lists the supported operations.
var Ops = []string{"add", "sub", "mul", "div", "round", "truncate", "up"}

// Apply evaluates op on a and b. The rounding operations read b as the
// precision. A NaN result is returned together with ErrNaN.
func Apply(op string, a, b decimal.Decimal) (r decimal.Decimal, err error) {
	r = a

	switch op {
	case "add":
		r.Add(b)
	case "sub":
		r.Sub(b)
	case "mul":
		r.Mul(b)
	case "div":
		r.Quo(b)
	case "round":
		r.Round(precision(b))
	case "truncate":
		r.Truncate(precision(b))
	case "up":
		r.RoundUp(precision(b))
	default:
		return decimal.Decimal{}, oops.Trace(ErrUnknownOp)
	}

	if r.IsNaN() {
		return r, oops.Trace(ErrNaN)
	}

	return r, nil
}

func precision(b decimal.Decimal) int {
	if b.IsNaN() {
		return decimal.DefaultPrecision
	}

	return decimal.To[int](b)
}

// Compare orders a and b, treating values within tolerance of each other as
// equal. ok is false when the comparison is unordered.
func Compare(a, b, tolerance decimal.Decimal) (c int, ok bool) {
	c, ok = a.Cmp(b)
	if !ok || c == 0 || tolerance.IsNaN() {
		return c, ok
	}

	diff := a
	diff.Sub(b)
	if diff.IsNegative() {
		diff.Neg()
	}

	if diff.LessOrEqual(tolerance) {
		return 0, true
	}

	return c, true
}
