package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"valkeys/internal/crypto"
	"valkeys/internal/identity"
)

func restoreCmd() *cobra.Command {
	var mnemonic string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Rebuild master validator keys from a recovery mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Store.Exists() {
				return fmt.Errorf("refusing to overwrite existing key file: %s", appCtx.Store.Path())
			}
			kt, err := appCtx.Config.MasterKeyType()
			if err != nil {
				return err
			}
			id, err := identity.FromMnemonic(kt, mnemonic)
			if err != nil {
				return err
			}
			if err := appCtx.Store.Save(id.ToRecord()); err != nil {
				return err
			}
			fmt.Printf("Master validator keys restored to %s\n\n", appCtx.Store.Path())
			fmt.Printf("Public key:  %s\n", crypto.EncodePublic(id.PublicKey()))
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(id.PublicKey()))
			return nil
		},
	}

	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "recovery mnemonic printed at creation")
	_ = cmd.MarkFlagRequired("mnemonic")
	return cmd
}
