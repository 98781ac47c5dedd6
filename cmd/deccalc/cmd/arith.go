package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calebcase/precise/internal/calc"
)

var arithCmds = []struct {
	op    string
	short string
}{
	{"add", "Print A + B"},
	{"sub", "Print A - B"},
	{"mul", "Print A * B"},
	{"div", "Print A / B (at most 18 fractional digits)"},
}

func init() {
	for _, a := range arithCmds {
		op := a.op

		rootCmd.AddCommand(&cobra.Command{
			Use:   op + " A B",
			Short: a.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runArith(cmd, op, args)
			},
		})
	}
}

func runArith(cmd *cobra.Command, op string, args []string) error {
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}

	b, err := parseArg(args[1])
	if err != nil {
		return err
	}

	v, err := calc.Apply(op, a, b)
	if err != nil {
		// NaN is a value, not a failure.
		slog.Warn("result is NaN", "op", op, "a", a, "b", b)
	}

	rounding.Apply(&v)

	return printResult(cmd, result{
		Op:    op,
		Args:  args,
		Value: v,
	})
}
