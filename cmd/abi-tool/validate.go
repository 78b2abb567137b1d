package main

import (
	"fmt"
	"os"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <abi.json>",
	Short: "Check an ABI document for structural problems without resolving it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		raw, err := abi.LoadRaw(data)
		if err != nil {
			return err
		}
		issues := abi.Validate(raw)
		if len(issues) == 0 {
			fmt.Println("no issues found")
			return nil
		}
		errCount := 0
		for _, iss := range issues {
			fmt.Println(iss)
			if iss.Severity == abi.SeverityError {
				errCount++
			}
		}
		if errCount > 0 {
			os.Exit(1)
		}
		return nil
	},
}
