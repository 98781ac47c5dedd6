package decimal

import (
	"math"
	"math/bits"
)

// Add sets d to d + o and returns d.
func (d *Decimal) Add(o Decimal) *Decimal {
	switch {
	case o.state == NaN:
		d.setNaN()
	case d.state == o.state:
		d.addMagnitude(o)
	case d.state != NaN:
		d.subMagnitude(o)
	}

	return d
}

// Sub sets d to d - o and returns d.
func (d *Decimal) Sub(o Decimal) *Decimal {
	switch {
	case o.state == NaN:
		d.setNaN()
	case d.state == o.state:
		d.subMagnitude(o)
	case d.state != NaN:
		d.addMagnitude(o)
	}

	return d
}

// Mul sets d to d * o and returns d. The scales add up.
func (d *Decimal) Mul(o Decimal) *Decimal {
	if o.state == NaN {
		d.setNaN()

		return d
	}

	if d.state == NaN {
		return d
	}

	if o.state == Negative {
		d.flip()
	}

	hi, lo := bits.Mul64(d.mantissa, o.mantissa)
	scale := uint32(d.scale) + uint32(o.scale)

	if hi != 0 || scale > math.MaxUint16 {
		d.setNaN()

		return d
	}

	d.mantissa = lo
	d.scale = uint16(scale)
	d.normalizeZero()

	return d
}

// Quo sets d to d / o and returns d. The quotient carries at most ScaleLimit
// fractional digits (fewer if the mantissa cannot hold them); the remaining
// digits are truncated. Zero and NaN dividends are returned unchanged.
func (d *Decimal) Quo(o Decimal) *Decimal {
	if d.state == NaN || d.mantissa == 0 {
		return d
	}

	if o.state == NaN || o.mantissa == 0 {
		d.setNaN()

		return d
	}

	if o.state == Negative {
		d.flip()
	}

	dividend, divisor, _, ok := align(*d, o)
	if !ok {
		d.setNaN()

		return d
	}

	q, r := dividend/divisor, dividend%divisor

	var scale uint16

	for r != 0 && scale < ScaleLimit {
		// r < divisor so the high word is always below the divisor.
		hi, lo := bits.Mul64(r, 10)
		digit, rem := bits.Div64(hi, lo, divisor)

		next, ok := mulAdd(q, digit)
		if !ok {
			break
		}

		q, r = next, rem
		scale++
	}

	d.mantissa = q
	d.scale = scale
	d.normalizeZero()

	return d
}

// align returns both mantissas at the larger of the two scales.
func align(a, b Decimal) (am, bm uint64, scale uint16, ok bool) {
	switch {
	case a.scale < b.scale:
		am, ok = scaleUp(a.mantissa, int(b.scale-a.scale))

		return am, b.mantissa, b.scale, ok
	case a.scale > b.scale:
		bm, ok = scaleUp(b.mantissa, int(a.scale-b.scale))

		return a.mantissa, bm, a.scale, ok
	}

	return a.mantissa, b.mantissa, a.scale, true
}

func (d *Decimal) addMagnitude(o Decimal) {
	am, bm, scale, ok := align(*d, o)
	if !ok {
		d.setNaN()

		return
	}

	sum, carry := bits.Add64(am, bm, 0)
	if carry != 0 {
		d.setNaN()

		return
	}

	d.mantissa = sum
	d.scale = scale
}

// subMagnitude subtracts the magnitudes, flipping the sign of d when o is
// the larger so the mantissa stays non-negative.
func (d *Decimal) subMagnitude(o Decimal) {
	am, bm, scale, ok := align(*d, o)
	if !ok {
		d.setNaN()

		return
	}

	if am < bm {
		d.flip()
		am, bm = bm, am
	}

	d.mantissa = am - bm
	d.scale = scale
	d.normalizeZero()
}
