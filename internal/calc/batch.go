package calc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/precise/decimal"
)

// Entry is one line of a batch ledger.
type Entry struct {
	Op string          `yaml:"op" toml:"op" json:"op"`
	A  decimal.Decimal `yaml:"a" toml:"a" json:"a"`
	B  decimal.Decimal `yaml:"b" toml:"b" json:"b"`
}

// Batch is a ledger of entries.
type Batch struct {
	Entries []Entry `yaml:"entries" toml:"entries" json:"entries"`
}

// Result is the outcome of one entry.
type Result struct {
	Index int             `json:"index"`
	Op    string          `json:"op"`
	Value decimal.Decimal `json:"value"`
}

// LoadBatch reads a ledger, choosing the format from the file extension.
func LoadBatch(path string) (b Batch, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return b, err
	}
	defer f.Close()

	return DecodeBatch(f, strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeBatch reads a ledger in the named format: yaml, yml or toml.
func DecodeBatch(r io.Reader, format string) (b Batch, err error) {
	defer Error.WrapP(&err)

	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(&b)
		if err == io.EOF {
			err = nil
		}
	case "toml":
		_, err = toml.NewDecoder(r).Decode(&b)
	default:
		err = Error.New("unsupported batch format: %q", format)
	}

	return b, err
}

// Evaluate applies every entry and rounds each result with rounding. All
// failing entries are reported together; results hold the successful ones.
func Evaluate(b Batch, rounding Rounding) (results []Result, err error) {
	var merr *multierror.Error

	for i, e := range b.Entries {
		slog.Debug("evaluating", "index", i, "op", e.Op, "a", e.A, "b", e.B)

		v, err := Apply(e.Op, e.A, e.B)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("entry %d (%s %s %s): %w", i, e.Op, e.A, e.B, err))

			continue
		}

		if !isRounding(e.Op) {
			rounding.Apply(&v)
		}

		results = append(results, Result{
			Index: i,
			Op:    e.Op,
			Value: v,
		})
	}

	return results, merr.ErrorOrNil()
}

func isRounding(op string) bool {
	switch op {
	case "round", "truncate", "up":
		return true
	}

	return false
}
