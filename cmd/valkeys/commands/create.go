package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"valkeys/internal/crypto"
	"valkeys/internal/identity"
)

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Generate master validator keys and store them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Store.Exists() {
				return fmt.Errorf("refusing to overwrite existing key file: %s", appCtx.Store.Path())
			}
			kt, err := appCtx.Config.MasterKeyType()
			if err != nil {
				return err
			}
			id, mnemonic, err := identity.New(kt)
			if err != nil {
				return err
			}
			if err := appCtx.Store.Save(id.ToRecord()); err != nil {
				return err
			}
			fmt.Printf("Master validator keys stored in %s\n\n", appCtx.Store.Path())
			fmt.Printf("Public key:  %s\n", crypto.EncodePublic(id.PublicKey()))
			fmt.Printf("Fingerprint: %s\n\n", crypto.Fingerprint(id.PublicKey()))
			fmt.Println("Recovery mnemonic (write it down; it is shown once and never stored):")
			fmt.Println(mnemonic)
			return nil
		},
	}
}
