package decimal

import "strings"

// RoundingMode selects how digits dropped by Reduce affect the kept ones.
type RoundingMode int

const (
	// ToZero drops the extra digits.
	ToZero RoundingMode = iota

	// HalfUp adds one unit when the first dropped digit is 5 or more.
	HalfUp

	// AwayFromZero adds one unit when any dropped digit is not zero.
	AwayFromZero
)

func (m RoundingMode) String() string {
	switch m {
	case ToZero:
		return "truncate"
	case HalfUp:
		return "round"
	case AwayFromZero:
		return "up"
	}

	return "unknown"
}

// ParseRoundingMode returns the mode named s: "truncate" or "down" for
// ToZero, "round" for HalfUp and "up" for AwayFromZero.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(s) {
	case "truncate", "down":
		return ToZero, nil
	case "round", "half-up":
		return HalfUp, nil
	case "up":
		return AwayFromZero, nil
	}

	return ToZero, Error.New("unknown rounding mode: %q", s)
}

// Truncate drops fractional digits beyond precision and returns d.
func (d *Decimal) Truncate(precision int) *Decimal {
	return d.Reduce(precision, ToZero)
}

// RoundDown is Truncate.
func (d *Decimal) RoundDown(precision int) *Decimal {
	return d.Reduce(precision, ToZero)
}

// Round reduces d to precision fractional digits rounding half up and
// returns d.
func (d *Decimal) Round(precision int) *Decimal {
	return d.Reduce(precision, HalfUp)
}

// RoundUp reduces d to precision fractional digits rounding away from zero
// and returns d. It is a ceiling on the magnitude: one unit is added only
// when a dropped digit is not zero, so 124.000 stays 124 at any precision
// and 1.2301 becomes 1.24 at precision 2.
func (d *Decimal) RoundUp(precision int) *Decimal {
	return d.Reduce(precision, AwayFromZero)
}

// Reduce shrinks d to at most precision fractional digits using mode, then
// strips trailing fractional zeros. It is a no-op for NaN and for values
// that already fit. A zero result has scale 0.
func (d *Decimal) Reduce(precision int, mode RoundingMode) *Decimal {
	if precision < 0 {
		precision = 0
	}

	if d.state == NaN || int(d.scale) <= precision {
		return d
	}

	drop := int(d.scale) - precision

	var kept, first uint64

	dropped := d.mantissa != 0
	if drop < len(pow10) {
		kept = d.mantissa / pow10[drop]
		dropped = d.mantissa%pow10[drop] != 0
	}

	if drop-1 < len(pow10) {
		first = d.mantissa / pow10[drop-1] % 10
	}

	switch mode {
	case HalfUp:
		if first >= 5 {
			kept++
		}
	case AwayFromZero:
		if dropped {
			kept++
		}
	}

	d.mantissa = kept
	d.scale = uint16(precision)

	for d.scale > 0 && d.mantissa != 0 && d.mantissa%10 == 0 {
		d.mantissa /= 10
		d.scale--
	}

	if d.mantissa == 0 {
		d.scale = 0
		d.state = Positive
	}

	return d
}
