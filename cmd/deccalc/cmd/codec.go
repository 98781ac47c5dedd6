package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/precise/decimal"
)

var encodeCmd = &cobra.Command{
	Use:   "encode A",
	Short: "Print the BSV encoding of A in hex",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode HEX",
	Short: "Print the decimal held in a hex BSV field",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	d, err := parseArg(args[0])
	if err != nil {
		return err
	}

	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

	return err
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return err
	}

	var d decimal.Decimal

	err = d.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	return printResult(cmd, result{
		Op:    "decode",
		Args:  args,
		Value: d,
	})
}
