package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/precise/internal/calc"
)

var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "Print -1, 0 or 1 as A is below, equal to or above B",
	Long: `Compare A and B numerically. Values within --tolerance of each
other compare as 0. NaN on either side prints NaN.`,
	Args: cobra.ExactArgs(2),
	RunE: runCmp,
}

func init() {
	cmpCmd.Flags().String("tolerance", "0", "largest difference treated as equal")

	rootCmd.AddCommand(cmpCmd)
}

func runCmp(cmd *cobra.Command, args []string) error {
	a, err := parseArg(args[0])
	if err != nil {
		return err
	}

	b, err := parseArg(args[1])
	if err != nil {
		return err
	}

	c, ok := calc.Compare(a, b, opts.Tolerance)

	if opts.Format == "json" {
		return printJSON(cmd, struct {
			Op      string   `json:"op"`
			Args    []string `json:"args"`
			Ordered bool     `json:"ordered"`
			Result  int      `json:"result"`
		}{"cmp", args, ok, c})
	}

	if !ok {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "NaN")

		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), c)

	return err
}
