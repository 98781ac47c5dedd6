package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/calebcase/precise/limits"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Print the representable range of decimals",
	Args:  cobra.NoArgs,
	RunE:  runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)
}

func runLimits(cmd *cobra.Command, args []string) error {
	l := limits.Decimal

	if opts.Format == "json" {
		return printJSON(cmd, struct {
			limits.Traits
			Min        string `json:"min"`
			Max        string `json:"max"`
			Lowest     string `json:"lowest"`
			Epsilon    string `json:"epsilon"`
			RoundError string `json:"round_error"`
		}{
			Traits:     l,
			Min:        l.Min().String(),
			Max:        l.Max().String(),
			Lowest:     l.Lowest().String(),
			Epsilon:    l.Epsilon().String(),
			RoundError: l.RoundError().String(),
		})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "radix\t%d\n", l.Radix)
	fmt.Fprintf(w, "exponent10\t%d..%d\n", l.MinExponent10, l.MaxExponent10)
	fmt.Fprintf(w, "min\t%s\n", l.Min())
	fmt.Fprintf(w, "max\t%s\n", l.Max())
	fmt.Fprintf(w, "lowest\t%s\n", l.Lowest())
	fmt.Fprintf(w, "epsilon\t%s\n", l.Epsilon())
	fmt.Fprintf(w, "signed\t%t\n", l.IsSigned)
	fmt.Fprintf(w, "exact\t%t\n", l.IsExact)
	fmt.Fprintf(w, "bounded\t%t\n", l.IsBounded)
	fmt.Fprintf(w, "quiet NaN\t%t\n", l.HasQuietNaN)

	return w.Flush()
}
