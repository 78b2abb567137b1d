package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <abi.json> <type> [json-file]",
	Short: "Encode a JSON value to its binary wire form, printed as hex",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		abiBytes, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		contract, err := abi.Load(abiBytes)
		if err != nil {
			return err
		}

		jsonBytes, err := readInput(args, 2)
		if err != nil {
			return err
		}

		bin, err := abi.JSONToBin(contract, args[1], jsonBytes)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(bin))
		return nil
	},
}

// readInput reads args[idx] as a file path, or stdin if idx is out of
// range or the path is "-".
func readInput(args []string, idx int) ([]byte, error) {
	if idx >= len(args) || args[idx] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[idx])
}
