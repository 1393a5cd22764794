package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"

	"valkeys/internal/domain"
)

// Token class bytes. A token is base58(class || alg || payload || check)
// where check is the first four bytes of SHA-256(SHA-256(...)) over
// everything before it. The header makes every encoded key
// self-describing: the class distinguishes secrets from publics and
// seeds, the algorithm byte names the curve.
const (
	classSecret byte = 0x20
	classPublic byte = 0x1C
	classSeed   byte = 0x21
)

const (
	algEd25519   byte = 0xE1
	algSecp256k1 byte = 0x53
)

const checksumBytes = 4

var (
	ErrTokenChecksum  = errors.New("token checksum mismatch")
	ErrTokenClass     = errors.New("unexpected token class")
	ErrTokenAlgorithm = errors.New("unknown token algorithm")
	ErrTokenLength    = errors.New("bad token payload length")
)

// EncodeSecret renders a secret key as a self-describing token.
func EncodeSecret(k SecretKey) string {
	return encodeToken(classSecret, algByte(k.keyType), k.raw[:])
}

// DecodeSecret parses a secret-key token.
func DecodeSecret(s string) (SecretKey, error) {
	alg, payload, err := decodeToken(s, classSecret)
	if err != nil {
		return SecretKey{}, err
	}
	kt, err := keyTypeFromAlg(alg)
	if err != nil {
		return SecretKey{}, err
	}
	if len(payload) != 32 {
		return SecretKey{}, fmt.Errorf("%w: secret payload of %d bytes", ErrTokenLength, len(payload))
	}
	sk := SecretKey{keyType: kt}
	copy(sk.raw[:], payload)
	return sk, nil
}

// EncodePublic renders a public key as a self-describing token.
func EncodePublic(p PublicKey) string {
	return encodeToken(classPublic, algByte(p.KeyType), p.Raw)
}

// DecodePublic parses a public-key token.
func DecodePublic(s string) (PublicKey, error) {
	alg, payload, err := decodeToken(s, classPublic)
	if err != nil {
		return PublicKey{}, err
	}
	kt, err := keyTypeFromAlg(alg)
	if err != nil {
		return PublicKey{}, err
	}
	want := publicKeyLen(kt)
	if len(payload) != want {
		return PublicKey{}, fmt.Errorf("%w: %s public key of %d bytes", ErrTokenLength, kt, len(payload))
	}
	return PublicKey{KeyType: kt, Raw: payload}, nil
}

// EncodeSeed renders a generation seed, tagged with the key type the
// seed regenerates.
func EncodeSeed(seed Seed, kt domain.KeyType) string {
	return encodeToken(classSeed, algByte(kt), seed[:])
}

// DecodeSeed parses a seed token back into the seed and its key type.
func DecodeSeed(s string) (Seed, domain.KeyType, error) {
	alg, payload, err := decodeToken(s, classSeed)
	if err != nil {
		return Seed{}, 0, err
	}
	kt, err := keyTypeFromAlg(alg)
	if err != nil {
		return Seed{}, 0, err
	}
	if len(payload) != SeedBytes {
		return Seed{}, 0, fmt.Errorf("%w: seed payload of %d bytes", ErrTokenLength, len(payload))
	}
	var seed Seed
	copy(seed[:], payload)
	return seed, kt, nil
}

func publicKeyLen(kt domain.KeyType) int {
	if kt == domain.Secp256k1 {
		return 33
	}
	return 32
}

func algByte(kt domain.KeyType) byte {
	if kt == domain.Secp256k1 {
		return algSecp256k1
	}
	return algEd25519
}

func keyTypeFromAlg(alg byte) (domain.KeyType, error) {
	switch alg {
	case algEd25519:
		return domain.Ed25519, nil
	case algSecp256k1:
		return domain.Secp256k1, nil
	}
	return 0, fmt.Errorf("%w: 0x%02X", ErrTokenAlgorithm, alg)
}

func encodeToken(class, alg byte, payload []byte) string {
	buf := make([]byte, 0, 2+len(payload)+checksumBytes)
	buf = append(buf, class, alg)
	buf = append(buf, payload...)
	check := checksum(buf)
	return base58.Encode(append(buf, check[:]...))
}

func decodeToken(s string, wantClass byte) (alg byte, payload []byte, err error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrTokenChecksum, err)
	}
	if len(raw) < 2+checksumBytes {
		return 0, nil, fmt.Errorf("%w: token of %d bytes", ErrTokenLength, len(raw))
	}
	body, check := raw[:len(raw)-checksumBytes], raw[len(raw)-checksumBytes:]
	want := checksum(body)
	if !bytes.Equal(check, want[:]) {
		return 0, nil, ErrTokenChecksum
	}
	if body[0] != wantClass {
		return 0, nil, fmt.Errorf("%w: 0x%02X", ErrTokenClass, body[0])
	}
	return body[1], append([]byte(nil), body[2:]...), nil
}

func checksum(b []byte) [checksumBytes]byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	var out [checksumBytes]byte
	copy(out[:], second[:])
	return out
}
