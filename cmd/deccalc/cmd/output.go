package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/calebcase/precise/decimal"
)

type result struct {
	Op    string          `json:"op"`
	Args  []string        `json:"args,omitempty"`
	Value decimal.Decimal `json:"value"`
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}

// printResult writes r in the configured format.
func printResult(cmd *cobra.Command, r result) error {
	switch opts.Format {
	case "json":
		return printJSON(cmd, r)
	case "hex":
		data, err := r.Value.MarshalBinary()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), r.Value)

	return err
}
