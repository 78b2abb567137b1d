// Command abi-tool is a small CLI around the abicodec library: load an
// ABI document, encode/decode values against it, convert name values, and
// run the package's own conformance vectors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abi-tool",
	Short: "Inspect and drive an EOSIO-style ABI schema from the command line",
	Long: `abi-tool loads an ABI JSON document, resolves its type graph, and lets
you encode JSON values to the wire format (and back) without writing any
Go. It also doubles as a conformance runner for the codec's own test
vectors.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(conformanceCmd)
	rootCmd.AddCommand(validateCmd)
}
