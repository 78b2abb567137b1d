package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <abi.json> <type> <hex>",
	Short: "Decode a hex-encoded wire value back to JSON",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		abiBytes, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		contract, err := abi.Load(abiBytes)
		if err != nil {
			return err
		}

		bin, err := hex.DecodeString(strings.TrimSpace(args[2]))
		if err != nil {
			return fmt.Errorf("decoding hex argument: %w", err)
		}

		text, err := abi.BinToJSON(contract, args[1], bin)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
