package main

import (
	"fmt"
	"strconv"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <to|from> <value>",
	Short: "Convert between a name's text and packed uint64 forms",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "to":
			v, err := abi.StringToName(args[1])
			if err != nil {
				return err
			}
			fmt.Println(v)
		case "from":
			v, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing %q as uint64: %w", args[1], err)
			}
			fmt.Println(abi.NameToString(v))
		default:
			return fmt.Errorf("unknown direction %q, want \"to\" or \"from\"", args[0])
		}
		return nil
	},
}
