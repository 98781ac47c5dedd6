package decimal

import (
	"bytes"
	"database/sql/driver"
	"math"
	"strconv"
	"strings"
)

// String renders d as plain digits. A fractional part is always shown ("5.0")
// and NaN renders as "NaN".
func (d Decimal) String() string {
	if d.state == NaN {
		return "NaN"
	}

	digits := strconv.FormatUint(d.mantissa, 10)
	scale := int(d.scale)

	sb := &strings.Builder{}

	if d.state == Negative {
		sb.WriteByte('-')
	}

	if scale == 0 {
		sb.WriteString(digits)
		sb.WriteString(".0")

		return sb.String()
	}

	// Keep at least one digit left of the point.
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	dot := len(digits) - scale
	sb.WriteString(digits[:dot])
	sb.WriteByte('.')
	sb.WriteString(digits[dot:])

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler. It matches String except
// that scale 0 values have no fraction ("5", not "5.0"), so UnmarshalText
// restores the exact scale.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.text()), nil
}

func (d Decimal) text() string {
	if d.state == NaN || d.scale != 0 {
		return d.String()
	}

	digits := strconv.FormatUint(d.mantissa, 10)
	if d.state == Negative {
		return "-" + digits
	}

	return digits
}

// UnmarshalText implements encoding.TextUnmarshaler. It reads text with
// ParseExact, so it restores any MarshalText output with the same scale.
// Unlike Parse it reports malformed text; only the literal "NaN" decodes to
// NaN.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	s := string(text)

	if s == "NaN" {
		*d = Decimal{}

		return nil
	}

	v := ParseExact(s)
	if v.IsNaN() {
		return Error.New("invalid decimal: %q", s)
	}

	*d = v

	return nil
}

var null = []byte("null")

// MarshalJSON implements json.Marshaler. Values are written as JSON numbers
// and NaN as null.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if d.state == NaN {
		return null, nil
	}

	return []byte(d.text()), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts numbers, quoted
// decimal strings and null.
func (d *Decimal) UnmarshalJSON(data []byte) (err error) {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, null) {
		*d = Decimal{}

		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return Error.Wrap(err)
		}

		data = []byte(s)
	}

	return d.UnmarshalText(data)
}

// UnmarshalTOML implements toml.Unmarshaler. Floats keep every digit of
// their shortest representation; strings go through UnmarshalText.
func (d *Decimal) UnmarshalTOML(value interface{}) (err error) {
	switch v := value.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case int64:
		*d = FromInt64(v)
	case float64:
		if math.IsNaN(v) {
			*d = Decimal{}

			return nil
		}

		f := FromFloat64(v)
		if f.IsNaN() {
			return Error.New("float out of range: %v", v)
		}

		*d = f
	default:
		return Error.New("unsupported toml type: %T", value)
	}

	return nil
}

// Scan implements sql.Scanner. NULL scans as NaN.
func (d *Decimal) Scan(src interface{}) (err error) {
	switch v := src.(type) {
	case nil:
		*d = Decimal{}
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case int64:
		*d = FromInt64(v)
	case float64:
		*d = FromFloat64(v)
	default:
		return Error.New("unsupported scan type: %T", src)
	}

	return nil
}

// Value implements driver.Valuer. Values are stored as MarshalText text and
// NaN as NULL.
func (d Decimal) Value() (driver.Value, error) {
	if d.state == NaN {
		return nil, nil
	}

	return d.text(), nil
}
