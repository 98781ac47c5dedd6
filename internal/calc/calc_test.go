package calc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/precise/decimal"
	"github.com/calebcase/precise/internal/calc"
)

func TestApply(t *testing.T) {
	type TC struct {
		op   string
		a, b string
		want string
		err  error
	}

	tcs := []TC{
		{"add", "123.456", "0.544", "124.000", nil},
		{"sub", "10", "2.5", "7.5", nil},
		{"mul", "-3.5", "2", "-7.0", nil},
		{"div", "10", "4", "2.5", nil},
		{"div", "1", "0", "NaN", calc.ErrNaN},
		{"round", "1.2345", "3", "1.235", nil},
		{"round", "1.23456789", "NaN", "1.234568", nil},
		{"truncate", "1.2345", "2", "1.23", nil},
		{"up", "1.2345", "2", "1.24", nil},
		{"pow", "2", "3", "NaN", calc.ErrUnknownOp},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.op), func(t *testing.T) {
			r, err := calc.Apply(tc.op, decimal.Parse(tc.a), decimal.Parse(tc.b))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.want, r.String())
		})
	}
}

func TestCompare(t *testing.T) {
	type TC struct {
		a, b, tol string
		c         int
		ok        bool
	}

	tcs := []TC{
		{"1", "2", "NaN", -1, true},
		{"2", "1", "0", 1, true},
		{"1", "1.001", "0.01", 0, true},
		{"1.001", "1", "0.001", 0, true},
		{"1.002", "1", "0.001", 1, true},
		{"-5", "5", "1", -1, true},
		{"NaN", "5", "1", 0, false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			c, ok := calc.Compare(decimal.Parse(tc.a), decimal.Parse(tc.b), decimal.Parse(tc.tol))
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.c, c)
		})
	}
}

func TestParseRounding(t *testing.T) {
	r, err := calc.ParseRounding("none", 2)
	require.NoError(t, err)
	require.False(t, r.Enabled)
	require.Equal(t, "none", r.String())

	d := decimal.Parse("1.2345")
	require.Equal(t, "1.2345", r.Apply(&d).String())

	r, err = calc.ParseRounding("up", 2)
	require.NoError(t, err)
	require.True(t, r.Enabled)
	require.Equal(t, "up", r.String())
	require.Equal(t, "1.24", r.Apply(&d).String())

	_, err = calc.ParseRounding("sideways", 2)
	require.Error(t, err)

	_, err = calc.ParseRounding("round", -1)
	require.Error(t, err)
}
