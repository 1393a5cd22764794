package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"valkeys/internal/domain"
	"valkeys/internal/util/memzero"
)

// SeedBytes is the size of a key-generation seed.
const SeedBytes = 16

// Seed deterministically regenerates a secret key together with a
// KeyType, so callers can persist the seed instead of the secret.
type Seed [SeedBytes]byte

// NewSeed returns a fresh seed from the system's cryptographic source.
func NewSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// SecretKey is an exclusively owned secret: a 32-byte Ed25519 seed or a
// 32-byte secp256k1 scalar. The raw material is unexported and the type
// prints redacted.
type SecretKey struct {
	keyType domain.KeyType
	raw     [32]byte
}

// SecretKeyFromSeed derives the secret key for kt from seed. The
// derivation is deterministic: the same seed and key type always yield
// the same secret.
func SecretKeyFromSeed(kt domain.KeyType, seed Seed) SecretKey {
	sk := SecretKey{keyType: kt}
	switch kt {
	case domain.Secp256k1:
		sk.raw = secpScalarFromSeed(seed)
	default:
		sk.raw = sha512Half(seed[:])
	}
	return sk
}

// Generate creates a fresh seed and the secret key it derives.
func Generate(kt domain.KeyType) (SecretKey, Seed, error) {
	seed, err := NewSeed()
	if err != nil {
		return SecretKey{}, Seed{}, err
	}
	return SecretKeyFromSeed(kt, seed), seed, nil
}

// KeyType returns the algorithm this secret belongs to.
func (k SecretKey) KeyType() domain.KeyType { return k.keyType }

// Wipe zeroes the secret material in place.
func (k *SecretKey) Wipe() { memzero.Wipe(k.raw[:]) }

// String prints the key type only; the secret never appears in output.
func (k SecretKey) String() string { return "SecretKey(" + k.keyType.String() + ")" }

// GoString matches String so %#v cannot leak the material either.
func (k SecretKey) GoString() string { return k.String() }

// Public derives the public key for this secret.
func (k SecretKey) Public() PublicKey {
	switch k.keyType {
	case domain.Secp256k1:
		priv := k.secpPrivate()
		return PublicKey{KeyType: k.keyType, Raw: priv.PubKey().SerializeCompressed()}
	default:
		priv := ed25519.NewKeyFromSeed(k.raw[:])
		defer memzero.Wipe(priv)
		pub := append([]byte(nil), priv[32:]...)
		return PublicKey{KeyType: k.keyType, Raw: pub}
	}
}

// Sign signs msg. Ed25519 signs the message directly; secp256k1 signs
// the SHA-512-half digest with canonical DER ECDSA.
func (k SecretKey) Sign(msg []byte) []byte {
	switch k.keyType {
	case domain.Secp256k1:
		digest := sha512Half(msg)
		return secpecdsa.Sign(k.secpPrivate(), digest[:]).Serialize()
	default:
		priv := ed25519.NewKeyFromSeed(k.raw[:])
		defer memzero.Wipe(priv)
		return ed25519.Sign(priv, msg)
	}
}

func (k SecretKey) secpPrivate() *secp256k1.PrivateKey {
	var s secp256k1.ModNScalar
	s.SetBytes(&k.raw)
	return secp256k1.NewPrivateKey(&s)
}

// PublicKey is a verification key. Raw holds 32 bytes for Ed25519 or a
// 33-byte compressed point for secp256k1.
type PublicKey struct {
	KeyType domain.KeyType
	Raw     []byte
}

// Equal reports whether two public keys are the same key.
func (p PublicKey) Equal(q PublicKey) bool {
	return p.KeyType == q.KeyType && bytes.Equal(p.Raw, q.Raw)
}

// Verify checks sig over msg with pub.
func Verify(pub PublicKey, msg, sig []byte) bool {
	switch pub.KeyType {
	case domain.Secp256k1:
		pk, err := secp256k1.ParsePubKey(pub.Raw)
		if err != nil {
			return false
		}
		parsed, err := secpecdsa.ParseDERSignature(sig)
		if err != nil {
			return false
		}
		digest := sha512Half(msg)
		return parsed.Verify(digest[:], pk)
	default:
		if len(pub.Raw) != ed25519.PublicKeySize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(pub.Raw), msg, sig)
	}
}

// secpScalarFromSeed hashes seed together with an incrementing counter
// until the result is a valid nonzero scalar. The counter rarely moves:
// a single round succeeds with overwhelming probability.
func secpScalarFromSeed(seed Seed) [32]byte {
	var ctr [4]byte
	for i := uint32(0); ; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		d := sha512Half(seed[:], ctr[:])
		var s secp256k1.ModNScalar
		if overflow := s.SetBytes(&d); overflow == 0 && !s.IsZero() {
			return d
		}
	}
}

// sha512Half returns the first half of the SHA-512 digest of the
// concatenated inputs.
func sha512Half(parts ...[]byte) [32]byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
