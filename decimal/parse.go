package decimal

import "strings"

// Parse reads an optional leading '-', integer digits and an optional
// fraction. Malformed text yields NaN. Trailing fractional zeros are
// dropped except for a single "0" fraction, so "5.0" keeps scale 1. A
// fraction made only of several zeros ("0.00") is NaN. Zero is always
// positive: "-0" parses to the same value as "0".
func Parse(s string) Decimal {
	return parse(s, true)
}

// ParseExact is like Parse but keeps every fractional digit, so "124.000"
// has scale 3 and "0.00" is zero at scale 2. It reads back any String
// output unchanged.
func ParseExact(s string) Decimal {
	return parse(s, false)
}

func parse(s string, strip bool) Decimal {
	var d Decimal

	if len(s) == 0 {
		return d
	}

	i := 0

	switch {
	case s[0] == '-':
		i = 1
		d.state = Negative
	case isDigit(s[0]):
		d.state = Positive
	default:
		return Decimal{}
	}

	if i >= len(s) || !isDigit(s[i]) {
		return Decimal{}
	}

	end := len(s)

	if dot := strings.IndexByte(s, '.'); strip && dot >= 0 {
		for end > dot+1 && s[end-1] == '0' {
			end--
		}

		if end == dot+1 {
			if len(s)-dot-1 != 1 {
				return Decimal{}
			}

			end = len(s)
		}
	}

	dotted := false
	digits := false

	for ; i < end; i++ {
		c := s[i]

		if c == '.' {
			if dotted {
				return Decimal{}
			}

			dotted = true

			continue
		}

		if !isDigit(c) {
			return Decimal{}
		}

		if dotted {
			digits = true

			if d.scale == ^uint16(0) {
				return Decimal{}
			}

			d.scale++
		}

		m, ok := mulAdd(d.mantissa, uint64(c-'0'))
		if !ok {
			return Decimal{}
		}

		d.mantissa = m
	}

	if dotted && !digits {
		return Decimal{}
	}

	d.normalizeZero()

	return d
}

// MustParse is like Parse but panics if s is not a valid decimal.
func MustParse(s string) Decimal {
	d := Parse(s)
	if d.IsNaN() {
		panic(Error.New("invalid decimal: %q", s))
	}

	return d
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
