package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ledgerabi/abicodec/pkg/abi"
	"github.com/spf13/cobra"
)

var conformanceCmd = &cobra.Command{
	Use:   "conformance",
	Short: "Run the codec's own wire-format test vectors and report pass/fail",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := abi.Load([]byte(conformanceABI))
		if err != nil {
			return fmt.Errorf("loading conformance schema: %w", err)
		}

		checks := []struct {
			name string
			fn   func(*abi.Contract) error
		}{
			{"S1 varuint32(0xdeadbeef)", checkVaruint32},
			{"S2 name round-trip", checkName},
			{"S3 asset encode", checkAsset},
			{"S4 uint64 string round-trip", checkUint64},
			{"S5 struct optional field", checkStructOptional},
			{"S6 block_timestamp_type", checkBlockTimestamp},
			{"S7 out-of-order fields rejected", checkOutOfOrder},
		}

		allPassed := true
		for _, c := range checks {
			if err := c.fn(contract); err != nil {
				fmt.Printf("FAIL %s: %v\n", c.name, err)
				allPassed = false
				continue
			}
			fmt.Printf("PASS %s\n", c.name)
		}

		if !allPassed {
			os.Exit(1)
		}
		return nil
	},
}

const conformanceABI = `{
	"version": "eosio::abi/1.0",
	"types": [],
	"structs": [
		{"name": "S", "base": "", "fields": [
			{"name": "a", "type": "uint32"},
			{"name": "b", "type": "string?"}
		]}
	],
	"actions": [],
	"tables": [],
	"ricardian_clauses": [],
	"error_messages": [],
	"abi_extensions": []
}`

func checkVaruint32(c *abi.Contract) error {
	bin, err := abi.JSONToBin(c, "varuint32", []byte(`3735928559`))
	if err != nil {
		return err
	}
	if got, want := hex.EncodeToString(bin), "effdb6f50d"; got != want {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	text, err := abi.BinToJSON(c, "varuint32", bin)
	if err != nil {
		return err
	}
	if text != "3735928559" {
		return fmt.Errorf("round-trip got %s", text)
	}
	return nil
}

func checkName(c *abi.Contract) error {
	v, err := abi.StringToName("eosio.token")
	if err != nil {
		return err
	}
	if v != 0x5530EA033482A600 {
		return fmt.Errorf("got %#x, want 0x5530EA033482A600", v)
	}
	if abi.NameToString(v) != "eosio.token" {
		return fmt.Errorf("round-trip got %s", abi.NameToString(v))
	}
	return nil
}

func checkAsset(c *abi.Contract) error {
	bin, err := abi.JSONToBin(c, "asset", []byte(`"1.0000 EOS"`))
	if err != nil {
		return err
	}
	want := "1027000000000000" + "04454f5300000000"
	if got := hex.EncodeToString(bin); got != want {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}

func checkUint64(c *abi.Contract) error {
	in := `"18446744073709551615"`
	bin, err := abi.JSONToBin(c, "uint64", []byte(in))
	if err != nil {
		return err
	}
	if hex.EncodeToString(bin) != strings.Repeat("ff", 8) {
		return fmt.Errorf("got %s", hex.EncodeToString(bin))
	}
	text, err := abi.BinToJSON(c, "uint64", bin)
	if err != nil {
		return err
	}
	if text != in {
		return fmt.Errorf("round-trip got %s, want %s", text, in)
	}
	return nil
}

func checkStructOptional(c *abi.Contract) error {
	bin, err := abi.JSONToBin(c, "S", []byte(`{"a": 1, "b": null}`))
	if err != nil {
		return err
	}
	if got, want := hex.EncodeToString(bin), "0100000000"; got != want {
		return fmt.Errorf("null case got %s, want %s", got, want)
	}

	bin, err = abi.JSONToBin(c, "S", []byte(`{"a": 1, "b": "hi"}`))
	if err != nil {
		return err
	}
	if got, want := hex.EncodeToString(bin), "0100000001026869"; got != want {
		return fmt.Errorf("present case got %s, want %s", got, want)
	}
	return nil
}

func checkBlockTimestamp(c *abi.Contract) error {
	bin, err := abi.JSONToBin(c, "block_timestamp_type", []byte(`"2020-01-01T00:00:00.000"`))
	if err != nil {
		return err
	}
	if got, want := hex.EncodeToString(bin), "003b3d4b"; got != want {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}

func checkOutOfOrder(c *abi.Contract) error {
	_, err := abi.JSONToBin(c, "S", []byte(`{"b": "hi", "a": 1}`))
	if err == nil {
		return fmt.Errorf("expected an error, got none")
	}
	return nil
}
