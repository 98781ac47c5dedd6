package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calebcase/precise/internal/calc"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Evaluate a YAML or TOML ledger of operations",
	Long: `Evaluate every entry of a ledger file and print the results.

Each entry has an op (add, sub, mul, div, round, truncate or up) and the
operands a and b. The rounding ops read b as the precision. Failing
entries are reported together after the successful ones are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := calc.LoadBatch(args[0])
	if err != nil {
		return err
	}

	slog.Info("loaded batch", "file", args[0], "entries", len(b.Entries))

	results, evalErr := calc.Evaluate(b, rounding)

	for _, r := range results {
		err = printResult(cmd, result{
			Op:    r.Op,
			Value: r.Value,
		})
		if err != nil {
			return err
		}
	}

	return evalErr
}
