package main

import (
	"fmt"
	"os"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <abi.json>",
	Short: "Parse and resolve an ABI document, reporting its shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		contract, err := abi.Load(data)
		if err != nil {
			return err
		}
		fmt.Printf("version: %s\n", contract.Raw.Version)
		fmt.Printf("types: %d declared, %d structs\n", len(contract.Raw.Types), len(contract.Raw.Structs))
		fmt.Printf("actions: %d\n", len(contract.Raw.Actions))
		for _, a := range contract.Raw.Actions {
			fmt.Printf("  %s -> %s\n", a.Name, a.Type)
		}
		fmt.Printf("tables: %d\n", len(contract.Raw.Tables))
		fmt.Printf("abi_extensions: %d\n", len(contract.Raw.ABIExtensions))
		return nil
	},
}
