package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ledgerabi/abicodec/internal/core/abi/keytext"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a secp256k1 keypair in public_key/private_key text form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, err := crypto.GenerateKey()
		if err != nil {
			return fmt.Errorf("generating key: %w", err)
		}

		privText, err := keytext.FormatPrivateKey(keytext.CurveK1, crypto.FromECDSA(priv))
		if err != nil {
			return err
		}
		pubText, err := keytext.FormatPublicKey(keytext.CurveK1, crypto.CompressPubkey(&priv.PublicKey))
		if err != nil {
			return err
		}

		fmt.Printf("private_key: %s\n", privText)
		fmt.Printf("public_key:  %s\n", pubText)
		return nil
	},
}
