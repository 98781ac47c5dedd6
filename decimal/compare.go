package decimal

import "math/bits"

// Equal reports structural equality: same sign, scale and mantissa. NaN is
// never equal to anything.
func (d Decimal) Equal(o Decimal) bool {
	return d.state != NaN && d == o
}

// NotEqual is !Equal. It is true whenever either side is NaN.
func (d Decimal) NotEqual(o Decimal) bool {
	return !d.Equal(o)
}

// Cmp compares the numeric values of d and o and returns -1, 0 or +1. ok is
// false when either side is NaN (unordered).
func (d Decimal) Cmp(o Decimal) (c int, ok bool) {
	if d.state == NaN || o.state == NaN {
		return 0, false
	}

	if d.state != o.state {
		if d.state == Negative {
			return -1, true
		}

		return 1, true
	}

	c = cmpMagnitude(d, o)
	if d.state == Negative {
		c = -c
	}

	return c, true
}

func (d Decimal) Less(o Decimal) bool {
	c, ok := d.Cmp(o)

	return ok && c < 0
}

func (d Decimal) Greater(o Decimal) bool {
	c, ok := d.Cmp(o)

	return ok && c > 0
}

func (d Decimal) LessOrEqual(o Decimal) bool {
	c, ok := d.Cmp(o)

	return ok && c <= 0
}

func (d Decimal) GreaterOrEqual(o Decimal) bool {
	c, ok := d.Cmp(o)

	return ok && c >= 0
}

// cmpMagnitude compares |a| and |b| at a common scale without overflowing.
func cmpMagnitude(a, b Decimal) int {
	if a.scale < b.scale {
		return -cmpMagnitude(b, a)
	}

	if b.mantissa == 0 {
		if a.mantissa == 0 {
			return 0
		}

		return 1
	}

	n := int(a.scale - b.scale)
	if n >= len(pow10) {
		return -1
	}

	hi, lo := bits.Mul64(b.mantissa, pow10[n])

	switch {
	case hi != 0, a.mantissa < lo:
		return -1
	case a.mantissa > lo:
		return 1
	}

	return 0
}
