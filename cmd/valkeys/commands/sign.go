package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"valkeys/internal/crypto"
	"valkeys/internal/identity"
	"valkeys/internal/protocol/manifest"
)

// manifestLineWidth is the fixed wrap width for transcribing manifests.
const manifestLineWidth = 72

func signCmd() *cobra.Command {
	var sequence uint32

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Create ephemeral signing keys and a signed manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			var requested *uint32
			if cmd.Flags().Changed("sequence") {
				requested = &sequence
			}
			return signManifest(requested, false)
		},
	}

	cmd.Flags().Uint32Var(&sequence, "sequence", 0,
		"explicit manifest sequence (must exceed the current value)")
	return cmd
}

// signManifest is the shared sign/revoke flow: load, advance the
// sequence, mint the ephemeral keys, persist the advanced identity, and
// print the validator config snippets.
func signManifest(requested *uint32, revoke bool) error {
	rec, err := appCtx.Store.Load()
	if err != nil {
		return err
	}
	id, err := identity.FromRecord(rec)
	if err != nil {
		return err
	}

	if revoke {
		_, err = id.Revoke()
	} else {
		_, err = id.Advance(requested)
	}
	if err != nil {
		return err
	}

	if id.Revoked() {
		fmt.Print("WARNING: This will revoke your master keys!\n\n")
	}

	ephType, err := appCtx.Config.EphemeralType()
	if err != nil {
		return err
	}
	eph, encoded, err := manifest.Sign(id, ephType)
	if err != nil {
		return err
	}

	// Persist the advanced sequence before showing the manifest, so a
	// displayed sequence can never be reused by a later invocation.
	if err := appCtx.Store.Save(id.ToRecord()); err != nil {
		return err
	}

	fmt.Print("Update the validator config with these values:\n\n")
	fmt.Printf("[validation_seed]\n%s\n", crypto.EncodeSeed(eph.Seed, eph.KeyType))
	fmt.Printf("# validation_public_key: %s\n", crypto.EncodePublic(eph.PublicKey))
	fmt.Printf("# sequence number: %d\n\n", id.Sequence())
	fmt.Printf("[validation_manifest]\n%s\n\n", manifest.Wrap(encoded, manifestLineWidth))
	return nil
}
