package manifest

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"valkeys/internal/crypto"
	"valkeys/internal/domain"
	"valkeys/internal/identity"
)

var (
	ErrEphemeralSignature = errors.New("ephemeral signature verification failed")
	ErrMasterSignature    = errors.New("master signature verification failed")
)

// Manifest is the signed delegation record.
type Manifest struct {
	Sequence           uint32
	MasterPublicKey    crypto.PublicKey
	EphemeralPublicKey crypto.PublicKey
	EphemeralSignature []byte
	MasterSignature    []byte
}

// EphemeralIdentity is the transient key material minted for one
// manifest. Only the seed needs to survive: together with the key type
// it regenerates the ephemeral secret.
type EphemeralIdentity struct {
	Seed      crypto.Seed
	KeyType   domain.KeyType
	PublicKey crypto.PublicKey
}

// Sign mints a fresh ephemeral keypair of ephKeyType and produces the
// dual-signed manifest for id, base64-encoded for transport.
//
// The embedded sequence is id's sequence at call time, exactly: Sign
// never advances or chooses it. Sequence transitions are the caller's
// responsibility, performed before this call.
func Sign(id *identity.MasterIdentity, ephKeyType domain.KeyType) (EphemeralIdentity, string, error) {
	seed, err := crypto.NewSeed()
	if err != nil {
		return EphemeralIdentity{}, "", err
	}
	secret := crypto.SecretKeyFromSeed(ephKeyType, seed)
	defer secret.Wipe()
	ephPub := secret.Public()

	seq := id.Sequence()
	masterPub := id.PublicKey()

	ephSig := secret.Sign(signingPayload(seq, masterPub, ephPub))
	masterSig := id.Sign(masterSigningPayload(seq, masterPub, ephPub, ephSig))

	m := Manifest{
		Sequence:           seq,
		MasterPublicKey:    masterPub,
		EphemeralPublicKey: ephPub,
		EphemeralSignature: ephSig,
		MasterSignature:    masterSig,
	}
	encoded := base64.StdEncoding.EncodeToString(serialize(m))

	eph := EphemeralIdentity{Seed: seed, KeyType: ephKeyType, PublicKey: ephPub}
	return eph, encoded, nil
}

// Decode parses a base64 manifest back into its fields, enforcing the
// canonical field order and rejecting trailing data.
func Decode(encoded string) (Manifest, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	r := &reader{buf: raw}

	seq, err := r.uint32Field()
	if err != nil {
		return Manifest{}, err
	}
	masterBlob, err := r.blobField(headerPublicKey)
	if err != nil {
		return Manifest{}, err
	}
	ephBlob, err := r.blobField(headerSigningPubKey)
	if err != nil {
		return Manifest{}, err
	}
	ephSig, err := r.blobField(headerSignature)
	if err != nil {
		return Manifest{}, err
	}
	masterSig, err := r.blobField(headerMasterSignature...)
	if err != nil {
		return Manifest{}, err
	}
	if err := r.done(); err != nil {
		return Manifest{}, err
	}

	masterPub, err := publicKeyFromBlob(masterBlob)
	if err != nil {
		return Manifest{}, err
	}
	ephPub, err := publicKeyFromBlob(ephBlob)
	if err != nil {
		return Manifest{}, err
	}

	return Manifest{
		Sequence:           seq,
		MasterPublicKey:    masterPub,
		EphemeralPublicKey: ephPub,
		EphemeralSignature: ephSig,
		MasterSignature:    masterSig,
	}, nil
}

// Verify checks both signatures independently against the embedded
// public keys. Cross-manifest sequence ordering is the consumer's
// concern; Verify only establishes that this record is authentic.
func (m Manifest) Verify() error {
	payload := signingPayload(m.Sequence, m.MasterPublicKey, m.EphemeralPublicKey)
	if !crypto.Verify(m.EphemeralPublicKey, payload, m.EphemeralSignature) {
		return ErrEphemeralSignature
	}
	masterPayload := masterSigningPayload(
		m.Sequence, m.MasterPublicKey, m.EphemeralPublicKey, m.EphemeralSignature)
	if !crypto.Verify(m.MasterPublicKey, masterPayload, m.MasterSignature) {
		return ErrMasterSignature
	}
	return nil
}

// Wrap splits s into width-sized lines for operator transcription.
func Wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}
