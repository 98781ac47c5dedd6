package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/precise/decimal"
)

var roundMode string

var roundCmd = &cobra.Command{
	Use:   "round A",
	Short: "Round A to --precision fractional digits",
	Long: `Round A to --precision fractional digits.

Modes:
  truncate, down  drop the extra digits
  round           half up on the first dropped digit
  up              away from zero when any dropped digit is not zero`,
	Args: cobra.ExactArgs(1),
	RunE: runRound,
}

func init() {
	roundCmd.Flags().StringVar(&roundMode, "mode", "round", "rounding mode")

	rootCmd.AddCommand(roundCmd)
}

func runRound(cmd *cobra.Command, args []string) error {
	mode, err := decimal.ParseRoundingMode(roundMode)
	if err != nil {
		return err
	}

	d, err := parseArg(args[0])
	if err != nil {
		return err
	}

	d.Reduce(opts.Precision, mode)

	return printResult(cmd, result{
		Op:    mode.String(),
		Args:  args,
		Value: d,
	})
}
