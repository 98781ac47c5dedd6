package decimal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/precise/decimal"
)

func TestParse(t *testing.T) {
	type TC struct {
		input    string
		state    decimal.State
		mantissa uint64
		scale    uint16
	}

	tcs := []TC{
		{"0", decimal.Positive, 0, 0},
		{"5", decimal.Positive, 5, 0},
		{"10", decimal.Positive, 10, 0},
		{"007", decimal.Positive, 7, 0},
		{"123.456", decimal.Positive, 123456, 3},
		{"0.544", decimal.Positive, 544, 3},
		{"-3.5", decimal.Negative, 35, 1},
		{"5.0", decimal.Positive, 50, 1},
		{"-5.0", decimal.Negative, 50, 1},
		{"1.500", decimal.Positive, 15, 1},
		{"0.0001", decimal.Positive, 1, 4},
		{"100.01", decimal.Positive, 10001, 2},
		{"-0", decimal.Positive, 0, 0},
		{"18446744073709551615", decimal.Positive, 18446744073709551615, 0},
		{"0.000000000000000000001", decimal.Positive, 1, 21},

		// NaN:
		{"", decimal.NaN, 0, 0},
		{"-", decimal.NaN, 0, 0},
		{"+1", decimal.NaN, 0, 0},
		{".5", decimal.NaN, 0, 0},
		{"-.5", decimal.NaN, 0, 0},
		{"5.", decimal.NaN, 0, 0},
		{"0.0000000", decimal.NaN, 0, 0},
		{"3.00", decimal.NaN, 0, 0},
		{"1.2.3", decimal.NaN, 0, 0},
		{"1.2.0", decimal.NaN, 0, 0},
		{"1..0", decimal.NaN, 0, 0},
		{"12a", decimal.NaN, 0, 0},
		{"1 ", decimal.NaN, 0, 0},
		{"1e5", decimal.NaN, 0, 0},
		{"NaN", decimal.NaN, 0, 0},
		{"18446744073709551616", decimal.NaN, 0, 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			d := decimal.Parse(tc.input)

			require.Equal(t, tc.state, d.State())
			require.Equal(t, tc.mantissa, d.Mantissa())
			require.Equal(t, tc.scale, d.Scale())
			require.Equal(t, tc.state == decimal.NaN, d.IsNaN())
		})
	}
}

func TestParseExact(t *testing.T) {
	type TC struct {
		input    string
		state    decimal.State
		mantissa uint64
		scale    uint16
	}

	tcs := []TC{
		{"124.000", decimal.Positive, 124000, 3},
		{"0.00", decimal.Positive, 0, 2},
		{"-0.00", decimal.Positive, 0, 2},
		{"3.00", decimal.Positive, 300, 2},
		{"1.500", decimal.Positive, 1500, 3},
		{"5.0", decimal.Positive, 50, 1},
		{"-7", decimal.Negative, 7, 0},
		{"0.0000000", decimal.Positive, 0, 7},

		// NaN:
		{"", decimal.NaN, 0, 0},
		{"5.", decimal.NaN, 0, 0},
		{"1.2.0", decimal.NaN, 0, 0},
		{"-", decimal.NaN, 0, 0},
		{"1.0x", decimal.NaN, 0, 0},
		{"18446744073709551615.0", decimal.NaN, 0, 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			d := decimal.ParseExact(tc.input)

			require.Equal(t, tc.state, d.State())
			require.Equal(t, tc.mantissa, d.Mantissa())
			require.Equal(t, tc.scale, d.Scale())
		})
	}
}

func TestMustParse(t *testing.T) {
	require.Equal(t, decimal.Parse("1.25"), decimal.MustParse("1.25"))
	require.Panics(t, func() {
		decimal.MustParse("1.2.3")
	})
}

func TestSet(t *testing.T) {
	d := decimal.Decimal{}
	require.True(t, d.IsNaN())

	d.Add(decimal.Parse("1"))
	require.True(t, d.IsNaN())

	d.SetString("1.5")
	require.Equal(t, "1.5", d.String())

	d.Set(decimal.FromInt64(-2))
	require.Equal(t, "-2.0", d.String())
}

func TestFrom(t *testing.T) {
	type TC struct {
		name string
		d    decimal.Decimal
		want string
	}

	tcs := []TC{
		{"int64", decimal.FromInt64(42), "42.0"},
		{"negative int64", decimal.FromInt64(-42), "-42.0"},
		{"min int64", decimal.FromInt64(-9223372036854775808), "-9223372036854775808.0"},
		{"uint64", decimal.FromUint64(18446744073709551615), "18446744073709551615.0"},
		{"float64", decimal.FromFloat64(2.5), "2.5"},
		{"float64 tenth", decimal.FromFloat64(0.1), "0.1"},
		{"float64 small", decimal.FromFloat64(1e-7), "0.0000001"},
		{"float64 whole", decimal.FromFloat64(3), "3.0"},
		{"float64 negative zero", decimal.FromFloat64(-0.0), "0.0"},
		{"float64 huge", decimal.FromFloat64(1e30), "NaN"},
		{"float32", decimal.FromFloat32(0.1), "0.1"},
		{"float32 negative", decimal.FromFloat32(-1.25), "-1.25"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.d.String())
		})
	}
}

func TestNew(t *testing.T) {
	d := decimal.New(decimal.Negative, 125, 2)
	require.Equal(t, "-1.25", d.String())

	require.True(t, decimal.New(decimal.State(7), 1, 0).IsNaN())
	require.True(t, decimal.New(decimal.NaN, 1, 0).IsNaN())
	require.Equal(t, decimal.Positive, decimal.New(decimal.Negative, 0, 3).State())
}
