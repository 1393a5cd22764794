package identity

import (
	"errors"
	"fmt"
	"math"

	"github.com/tyler-smith/go-bip39"

	"valkeys/internal/crypto"
	"valkeys/internal/domain"
)

// ErrInvalidMnemonic is returned when a recovery mnemonic cannot be
// mapped back to a master seed.
var ErrInvalidMnemonic = errors.New("invalid recovery mnemonic")

// requiredFields are checked in this order when loading a record.
var requiredFields = []string{
	domain.FieldKeyType,
	domain.FieldMasterSecret,
	domain.FieldSequence,
}

// MasterIdentity is the long-lived validator identity. It is either
// created fresh (sequence 0) or reconstructed from a persisted record;
// the master secret is never regenerated silently. The only mutation is
// advancing the sequence.
type MasterIdentity struct {
	keyType   domain.KeyType
	secret    crypto.SecretKey
	publicKey crypto.PublicKey
	sequence  uint32
}

// New creates a fresh identity of the given key type with sequence 0.
// It also returns the recovery mnemonic of the generation seed; shown
// once and never persisted, it lets Restore rebuild the same identity.
func New(kt domain.KeyType) (*MasterIdentity, string, error) {
	secret, seed, err := crypto.Generate(kt)
	if err != nil {
		return nil, "", err
	}
	mnemonic, err := bip39.NewMnemonic(seed[:])
	if err != nil {
		return nil, "", err
	}
	return &MasterIdentity{
		keyType:   kt,
		secret:    secret,
		publicKey: secret.Public(),
	}, mnemonic, nil
}

// FromMnemonic re-derives the identity a mnemonic was issued for. The
// rebuilt identity starts at sequence 0; the caller decides whether a
// persisted record should take precedence.
func FromMnemonic(kt domain.KeyType, mnemonic string) (*MasterIdentity, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	if len(entropy) != crypto.SeedBytes {
		return nil, fmt.Errorf("%w: %d-bit mnemonic", ErrInvalidMnemonic, len(entropy)*8)
	}
	var seed crypto.Seed
	copy(seed[:], entropy)
	secret := crypto.SecretKeyFromSeed(kt, seed)
	return &MasterIdentity{
		keyType:   kt,
		secret:    secret,
		publicKey: secret.Public(),
	}, nil
}

// FromRecord validates a persisted record and rebuilds the identity.
//
// Validation order: required fields present, key type known, secret
// decodes for that key type, sequence representable as uint32. The
// public key is always recomputed from the decoded secret; any
// validation_public_key in the record is informational and never
// trusted or compared.
func FromRecord(rec domain.Record) (*MasterIdentity, error) {
	for _, field := range requiredFields {
		if _, ok := rec[field]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingField, field)
		}
	}

	ktValue, ok := rec[domain.FieldKeyType].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyType, rec[domain.FieldKeyType])
	}
	kt, err := domain.ParseKeyType(ktValue)
	if err != nil {
		return nil, err
	}

	secretValue, ok := rec[domain.FieldMasterSecret].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSecret, rec[domain.FieldMasterSecret])
	}
	secret, err := crypto.DecodeSecret(secretValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSecret, secretValue)
	}
	if secret.KeyType() != kt {
		return nil, fmt.Errorf("%w: secret algorithm %s does not match key type %s",
			domain.ErrInvalidSecret, secret.KeyType(), kt)
	}

	seq, err := sequenceValue(rec[domain.FieldSequence])
	if err != nil {
		return nil, err
	}

	return &MasterIdentity{
		keyType:   kt,
		secret:    secret,
		publicKey: secret.Public(),
		sequence:  seq,
	}, nil
}

// ToRecord serializes the identity into the persisted record form. Pure
// function: no I/O, no mutation.
func (m *MasterIdentity) ToRecord() domain.Record {
	return domain.Record{
		domain.FieldKeyType:             m.keyType.String(),
		domain.FieldMasterSecret:        crypto.EncodeSecret(m.secret),
		domain.FieldValidationPublicKey: crypto.EncodePublic(m.publicKey),
		domain.FieldSequence:            uint64(m.sequence),
	}
}

// KeyType returns the master key algorithm.
func (m *MasterIdentity) KeyType() domain.KeyType { return m.keyType }

// PublicKey returns the derived master public key.
func (m *MasterIdentity) PublicKey() crypto.PublicKey { return m.publicKey }

// Sequence returns the current sequence number.
func (m *MasterIdentity) Sequence() uint32 { return m.sequence }

// Revoked reports whether the identity has been permanently revoked.
func (m *MasterIdentity) Revoked() bool { return domain.IsRevoked(m.sequence) }

// Advance moves the sequence forward: to requested when given (which
// must strictly exceed the current value), by one otherwise. Returns
// the new sequence.
func (m *MasterIdentity) Advance(requested *uint32) (uint32, error) {
	next, err := domain.NextSequence(m.sequence, requested)
	if err != nil {
		return 0, err
	}
	m.sequence = next
	return next, nil
}

// Revoke advances the sequence to the terminal revocation value.
func (m *MasterIdentity) Revoke() (uint32, error) {
	next, err := domain.RevokeSequence(m.sequence)
	if err != nil {
		return 0, err
	}
	m.sequence = next
	return next, nil
}

// Sign signs msg with the master secret.
func (m *MasterIdentity) Sign(msg []byte) []byte { return m.secret.Sign(msg) }

// sequenceValue accepts the numeric forms a structured-record parser
// may produce and rejects anything not representable as uint32.
func sequenceValue(v any) (uint32, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || n < 0 || n > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidSequence, v)
		}
		return uint32(n), nil
	case int:
		if n < 0 || int64(n) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidSequence, v)
		}
		return uint32(n), nil
	case int64:
		if n < 0 || n > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidSequence, v)
		}
		return uint32(n), nil
	case uint32:
		return n, nil
	case uint64:
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %v", domain.ErrInvalidSequence, v)
		}
		return uint32(n), nil
	}
	return 0, fmt.Errorf("%w: %v", domain.ErrInvalidSequence, v)
}
