package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"valkeys/internal/crypto"
	"valkeys/internal/identity"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored master identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := appCtx.Store.Load()
			if err != nil {
				return err
			}
			id, err := identity.FromRecord(rec)
			if err != nil {
				return err
			}
			fmt.Printf("Key file:    %s\n", appCtx.Store.Path())
			fmt.Printf("Key type:    %s\n", id.KeyType())
			fmt.Printf("Public key:  %s\n", crypto.EncodePublic(id.PublicKey()))
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(id.PublicKey()))
			fmt.Printf("Sequence:    %d\n", id.Sequence())
			if id.Revoked() {
				fmt.Println("Status:      REVOKED")
			}
			return nil
		},
	}
}
