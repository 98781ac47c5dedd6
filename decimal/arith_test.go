package decimal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/precise/decimal"
)

func TestArith(t *testing.T) {
	type TC struct {
		a, op, b string
		want     string
	}

	tcs := []TC{
		{"123.456", "+", "0.544", "124.000"},
		{"1.5", "+", "2.25", "3.75"},
		{"-3", "+", "5", "2.0"},
		{"3", "+", "-5", "-2.0"},
		{"-3", "+", "-5", "-8.0"},
		{"-1.5", "+", "1.5", "0.0"},
		{"18446744073709551615", "+", "0", "18446744073709551615.0"},
		{"18446744073709551615", "+", "1", "NaN"},
		{"18446744073709551615", "+", "0.1", "NaN"},

		{"10", "-", "2.5", "7.5"},
		{"1.5", "-", "2.25", "-0.75"},
		{"3", "-", "-2", "5.0"},
		{"-3", "-", "-3", "0.0"},
		{"-3", "-", "2", "-5.0"},

		{"-3.5", "*", "2", "-7.0"},
		{"-3.5", "*", "-2", "7.0"},
		{"1.25", "*", "0.5", "0.625"},
		{"-3", "*", "0", "0.0"},
		{"10000000000", "*", "10000000000", "NaN"},

		{"10", "/", "4", "2.5"},
		{"1", "/", "3", "0.333333333333333333"},
		{"2", "/", "3", "0.666666666666666666"},
		{"10", "/", "3", "3.333333333333333333"},
		{"100", "/", "3", "33.33333333333333333"},
		{"-7", "/", "2", "-3.5"},
		{"7", "/", "-2", "-3.5"},
		{"1.5", "/", "0.25", "6.0"},
		{"0.1", "/", "3", "0.033333333333333333"},
		{"0", "/", "5", "0.0"},
		{"1", "/", "0", "NaN"},
		{"0", "/", "0", "0.0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s%s%s", i, tc.a, tc.op, tc.b), func(t *testing.T) {
			d := decimal.Parse(tc.a)
			o := decimal.Parse(tc.b)

			var r *decimal.Decimal

			switch tc.op {
			case "+":
				r = d.Add(o)
			case "-":
				r = d.Sub(o)
			case "*":
				r = d.Mul(o)
			case "/":
				r = d.Quo(o)
			}

			require.Same(t, &d, r)
			require.Equal(t, tc.want, d.String())
		})
	}
}

func TestArithNaN(t *testing.T) {
	ops := map[string]func(d *decimal.Decimal, o decimal.Decimal) *decimal.Decimal{
		"add": (*decimal.Decimal).Add,
		"sub": (*decimal.Decimal).Sub,
		"mul": (*decimal.Decimal).Mul,
		"quo": (*decimal.Decimal).Quo,
	}

	values := []string{"0", "1", "-2.5", "0.001"}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			for _, v := range values {
				nan := decimal.Decimal{}
				require.True(t, op(&nan, decimal.Parse(v)).IsNaN(), "NaN op %s", v)

				d := decimal.Parse(v)
				require.True(t, op(&d, decimal.Decimal{}).IsNaN(), "%s op NaN", v)
			}
		})
	}
}

func TestArithChain(t *testing.T) {
	d := decimal.Parse("1.5")

	d.Add(decimal.Parse("2.5")).Mul(decimal.Parse("3")).Sub(decimal.Parse("2"))
	require.Equal(t, "10.0", d.String())

	d.Quo(decimal.Parse("4")).Neg()
	require.Equal(t, "-2.5", d.String())
}

func TestValueSemantics(t *testing.T) {
	a := decimal.Parse("1.5")
	b := a

	b.Add(decimal.Parse("1"))

	require.Equal(t, "1.5", a.String())
	require.Equal(t, "2.5", b.String())
}

func TestQuoScaleBound(t *testing.T) {
	divisors := []string{"3", "7", "9", "11", "13", "0.3", "0.7", "17.17"}
	dividends := []string{"1", "2", "10", "100", "12345.6789", "-0.001"}

	for _, a := range dividends {
		for _, b := range divisors {
			d := decimal.Parse(a)
			d.Quo(decimal.Parse(b))

			require.False(t, d.IsNaN(), "%s / %s", a, b)
			require.LessOrEqual(t, d.Scale(), uint16(decimal.ScaleLimit), "%s / %s", a, b)
		}
	}
}

func TestProjection(t *testing.T) {
	type TC struct {
		input string
		f     float64
		i     int64
		u     uint64
	}

	tcs := []TC{
		{"2.5", 2.5, 2, 2},
		{"-2.75", -2.75, -2, 0},
		{"0", 0, 0, 0},
		{"123.456", 123.456, 123, 123},
		{"-9223372036854775808", -9223372036854775808, -9223372036854775808, 0},
		{"-18446744073709551615", -18446744073709551615, -9223372036854775808, 0},
		{"18446744073709551615", 18446744073709551615, 9223372036854775807, 18446744073709551615},
		{"0.000000000000000000001", 1e-21, 0, 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			d := decimal.Parse(tc.input)

			require.Equal(t, tc.f, d.Float64())
			require.Equal(t, tc.i, d.Int64())
			require.Equal(t, tc.u, d.Uint64())
		})
	}

	t.Run("NaN", func(t *testing.T) {
		d := decimal.Decimal{}

		require.True(t, d.Float64() != d.Float64())
		require.Equal(t, int64(0), d.Int64())
		require.Equal(t, uint64(0), d.Uint64())
	})
}

func TestSign(t *testing.T) {
	require.Equal(t, -1, decimal.Parse("-0.1").Sign())
	require.Equal(t, 0, decimal.Parse("0").Sign())
	require.Equal(t, 1, decimal.Parse("0.1").Sign())
	require.Equal(t, 0, decimal.Decimal{}.Sign())

	require.True(t, decimal.Parse("0").IsZero())
	require.False(t, decimal.Decimal{}.IsZero())
	require.True(t, decimal.Parse("-1").IsNegative())
}
