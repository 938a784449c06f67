package main

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-mclib/gateway/internal/mccrypto"
)

// newKeygenCmd builds the "keygen" subcommand, a diagnostic that
// exercises the same RSA keypair generation the login dispatcher runs
// per connection, without needing a live client to trigger it.
func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA keypair and print its DER-encoded public key",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			kp, err := mccrypto.GenerateKeyPair()
			if err != nil {
				return fmt.Errorf("generate keypair: %w", err)
			}
			fmt.Printf("public key (DER, base64): %s\n", base64.StdEncoding.EncodeToString(kp.PublicDER))
			fmt.Printf("key size: %d bits\n", mccrypto.KeySize)
			return nil
		},
	}
}
