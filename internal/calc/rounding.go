package calc

import "github.com/calebcase/precise/decimal"

// Rounding is the policy applied to computed results.
type Rounding struct {
	Enabled   bool
	Mode      decimal.RoundingMode
	Precision int
}

// ParseRounding builds a policy from a mode name. "none" disables rounding.
func ParseRounding(name string, precision int) (r Rounding, err error) {
	if precision < 0 {
		return r, Error.New("negative precision: %d", precision)
	}

	r.Precision = precision

	if name == "none" {
		return r, nil
	}

	r.Mode, err = decimal.ParseRoundingMode(name)
	if err != nil {
		return r, Error.Wrap(err)
	}

	r.Enabled = true

	return r, nil
}

// Apply reduces d according to the policy and returns d.
func (r Rounding) Apply(d *decimal.Decimal) *decimal.Decimal {
	if !r.Enabled {
		return d
	}

	return d.Reduce(r.Precision, r.Mode)
}

func (r Rounding) String() string {
	if !r.Enabled {
		return "none"
	}

	return r.Mode.String()
}
