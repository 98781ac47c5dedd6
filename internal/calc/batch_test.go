package calc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/precise/decimal"
	"github.com/calebcase/precise/internal/calc"
)

const ledgerYAML = `
entries:
  - op: add
    a: 123.456
    b: "0.544"
  - op: div
    a: 1
    b: 0
  - op: mul
    a: -3.5
    b: 2
  - op: pow
    a: 2
    b: 3
  - op: round
    a: 1.2345
    b: 3
`

const ledgerTOML = `
[[entries]]
op = "sub"
a = "10"
b = 2.5

[[entries]]
op = "div"
a = 1
b = 3

[[entries]]
op = "add"
a = 2.0
b = 0.1234567
`

func TestDecodeBatch(t *testing.T) {
	b, err := calc.DecodeBatch(strings.NewReader(ledgerYAML), "yaml")
	require.NoError(t, err)
	require.Len(t, b.Entries, 5)
	require.Equal(t, "add", b.Entries[0].Op)
	require.True(t, b.Entries[0].A.Equal(decimal.Parse("123.456")))
	require.True(t, b.Entries[0].B.Equal(decimal.Parse("0.544")))

	b, err = calc.DecodeBatch(strings.NewReader(ledgerTOML), "toml")
	require.NoError(t, err)
	require.Len(t, b.Entries, 3)
	require.Equal(t, "2.5", b.Entries[0].B.String())
	require.Equal(t, "2.0", b.Entries[2].A.String())
	require.Equal(t, "0.1234567", b.Entries[2].B.String())

	b, err = calc.DecodeBatch(strings.NewReader(""), "yml")
	require.NoError(t, err)
	require.Empty(t, b.Entries)

	_, err = calc.DecodeBatch(strings.NewReader("{}"), "json")
	require.Error(t, err)

	_, err = calc.DecodeBatch(strings.NewReader("entries: [{op: add, a: x, b: 1}]"), "yaml")
	require.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	b, err := calc.DecodeBatch(strings.NewReader(ledgerYAML), "yaml")
	require.NoError(t, err)

	rounding, err := calc.ParseRounding("round", 2)
	require.NoError(t, err)

	results, err := calc.Evaluate(b, rounding)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	require.ErrorIs(t, merr.Errors[0], calc.ErrNaN)
	require.ErrorIs(t, merr.Errors[1], calc.ErrUnknownOp)
	require.Contains(t, merr.Errors[0].Error(), "entry 1")

	require.Len(t, results, 3)
	require.Equal(t, 0, results[0].Index)
	require.Equal(t, "124.0", results[0].Value.String())
	require.Equal(t, 2, results[1].Index)
	require.Equal(t, "-7.0", results[1].Value.String())

	// Rounding entries keep their own precision.
	require.Equal(t, 4, results[2].Index)
	require.Equal(t, "1.235", results[2].Value.String())
}

func TestLoadBatch(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ledger.toml")
	require.NoError(t, os.WriteFile(path, []byte(ledgerTOML), 0o600))

	b, err := calc.LoadBatch(path)
	require.NoError(t, err)

	results, err := calc.Evaluate(b, calc.Rounding{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "7.5", results[0].Value.String())
	require.Equal(t, "0.333333333333333333", results[1].Value.String())
	require.Equal(t, "2.1234567", results[2].Value.String())

	_, err = calc.LoadBatch(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
