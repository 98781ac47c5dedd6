package decimal

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the error class for decimal failures.
var Error = errs.Class("decimal")

// State is the sign of a decimal. It doubles as the validity flag.
type State int8

const (
	NaN State = iota
	Negative
	Positive
)

func (s State) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	}

	return "NaN"
}

const (
	// ScaleLimit is the most fractional digits a quotient carries: one
	// less than the decimal digits a uint64 always holds.
	ScaleLimit = 18

	// DefaultPrecision is the precision used by deccalc when none is
	// configured.
	DefaultPrecision = 6
)

// pow10[n] is 10^n for every power that fits in a uint64.
var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Decimal is a signed decimal number. Values are independent copies; the
// arithmetic methods mutate the receiver in place.
type Decimal struct {
	state    State
	scale    uint16
	mantissa uint64
}

// New returns the decimal sign * mantissa / 10^scale. An unknown state
// yields NaN and a zero mantissa is always positive.
func New(state State, mantissa uint64, scale uint16) Decimal {
	switch state {
	case Negative, Positive:
	default:
		return Decimal{}
	}

	d := Decimal{
		state:    state,
		scale:    scale,
		mantissa: mantissa,
	}
	d.normalizeZero()

	return d
}

// FromInt64 returns n with scale 0.
func FromInt64(n int64) Decimal {
	if n < 0 {
		return Decimal{
			state:    Negative,
			mantissa: uint64(-(n + 1)) + 1,
		}
	}

	return Decimal{
		state:    Positive,
		mantissa: uint64(n),
	}
}

// FromUint64 returns n with scale 0.
func FromUint64(n uint64) Decimal {
	return Decimal{
		state:    Positive,
		mantissa: n,
	}
}

// FromFloat64 parses the shortest decimal text that identifies f.
func FromFloat64(f float64) Decimal {
	return fromFloat(f, 64)
}

// FromFloat32 parses the shortest decimal text that identifies f.
func FromFloat32(f float32) Decimal {
	return fromFloat(float64(f), 32)
}

func fromFloat(f float64, bitSize int) Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}
	}

	return Parse(strconv.FormatFloat(f, 'f', -1, bitSize))
}

func (d Decimal) State() State {
	return d.state
}

func (d Decimal) Scale() uint16 {
	return d.scale
}

func (d Decimal) Mantissa() uint64 {
	return d.mantissa
}

func (d Decimal) IsNaN() bool {
	return d.state == NaN
}

func (d Decimal) IsZero() bool {
	return d.state != NaN && d.mantissa == 0
}

func (d Decimal) IsNegative() bool {
	return d.state == Negative
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (d Decimal) Sign() int {
	switch {
	case d.state == NaN, d.mantissa == 0:
		return 0
	case d.state == Negative:
		return -1
	}

	return 1
}

// Set sets d to o and returns d.
func (d *Decimal) Set(o Decimal) *Decimal {
	*d = o

	return d
}

// SetString sets d to the parsed value of s and returns d.
func (d *Decimal) SetString(s string) *Decimal {
	*d = Parse(s)

	return d
}

// Neg flips the sign of d and returns d. NaN and zero are unchanged.
func (d *Decimal) Neg() *Decimal {
	if d.mantissa != 0 {
		d.flip()
	}

	return d
}

// Float64 returns the nearest float64. NaN returns math.NaN().
func (d Decimal) Float64() float64 {
	if d.state == NaN {
		return math.NaN()
	}

	f, _ := strconv.ParseFloat(d.String(), 64)

	return f
}

// Int64 returns the integer part of d, saturating at the int64 bounds. NaN
// returns 0.
func (d Decimal) Int64() int64 {
	if d.state == NaN {
		return 0
	}

	q := d.integral()
	if q == 0 {
		return 0
	}

	if d.state == Negative {
		if q > 1<<63 {
			return math.MinInt64
		}

		return -int64(q-1) - 1
	}

	if q > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(q)
}

// Uint64 returns the integer part of d. NaN and negative values return 0.
func (d Decimal) Uint64() uint64 {
	if d.state != Positive {
		return 0
	}

	return d.integral()
}

func (d Decimal) integral() uint64 {
	if int(d.scale) >= len(pow10) {
		return 0
	}

	return d.mantissa / pow10[d.scale]
}

func (d *Decimal) setNaN() {
	*d = Decimal{}
}

func (d *Decimal) flip() {
	switch d.state {
	case Positive:
		d.state = Negative
	case Negative:
		d.state = Positive
	}
}

func (d *Decimal) normalizeZero() {
	if d.state != NaN && d.mantissa == 0 {
		d.state = Positive
	}
}

// scaleUp returns m * 10^n and whether it fit in a uint64.
func scaleUp(m uint64, n int) (uint64, bool) {
	if m == 0 {
		return 0, true
	}

	if n >= len(pow10) {
		return 0, false
	}

	hi, lo := bits.Mul64(m, pow10[n])

	return lo, hi == 0
}

// mulAdd returns m*10 + digit and whether it fit in a uint64.
func mulAdd(m, digit uint64) (uint64, bool) {
	hi, lo := bits.Mul64(m, 10)
	if hi != 0 {
		return 0, false
	}

	sum, carry := bits.Add64(lo, digit, 0)

	return sum, carry == 0
}
