package manifest

import (
	"errors"
	"fmt"

	"valkeys/internal/crypto"
	"valkeys/internal/domain"
)

// Signing payloads are domain-separated with this prefix.
var hashPrefix = []byte{'M', 'A', 'N', 0x00}

// Field headers, in canonical order. Blob fields are length-prefixed
// with a single byte; every payload here is well under that limit.
const (
	headerSequence      byte = 0x24
	headerPublicKey     byte = 0x71
	headerSigningPubKey byte = 0x73
	headerSignature     byte = 0x76
)

var headerMasterSignature = []byte{0x70, 0x12}

const maxBlobLen = 0xC0

var ErrMalformed = errors.New("malformed manifest")

func appendUint32Field(b []byte, v uint32) []byte {
	return append(b, headerSequence,
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendBlobField(b []byte, header []byte, blob []byte) []byte {
	if len(blob) >= maxBlobLen {
		panic(fmt.Sprintf("manifest blob field of %d bytes", len(blob)))
	}
	b = append(b, header...)
	b = append(b, byte(len(blob)))
	return append(b, blob...)
}

// signingPayload is what the ephemeral key signs: the domain prefix and
// the pre-signature fields.
func signingPayload(seq uint32, masterPub, ephPub crypto.PublicKey) []byte {
	b := append([]byte(nil), hashPrefix...)
	b = appendUint32Field(b, seq)
	b = appendBlobField(b, []byte{headerPublicKey}, masterPub.Raw)
	b = appendBlobField(b, []byte{headerSigningPubKey}, ephPub.Raw)
	return b
}

// masterSigningPayload extends signingPayload with the ephemeral
// signature field, so the master signature covers it.
func masterSigningPayload(seq uint32, masterPub, ephPub crypto.PublicKey, ephSig []byte) []byte {
	b := signingPayload(seq, masterPub, ephPub)
	return appendBlobField(b, []byte{headerSignature}, ephSig)
}

// serialize renders the complete manifest, all fields in canonical
// order, without the signing prefix.
func serialize(m Manifest) []byte {
	b := appendUint32Field(nil, m.Sequence)
	b = appendBlobField(b, []byte{headerPublicKey}, m.MasterPublicKey.Raw)
	b = appendBlobField(b, []byte{headerSigningPubKey}, m.EphemeralPublicKey.Raw)
	b = appendBlobField(b, []byte{headerSignature}, m.EphemeralSignature)
	b = appendBlobField(b, headerMasterSignature, m.MasterSignature)
	return b
}

type reader struct {
	buf []byte
	pos int
}

func (r *reader) expect(header ...byte) error {
	for _, h := range header {
		if r.pos >= len(r.buf) || r.buf[r.pos] != h {
			return fmt.Errorf("%w: field header mismatch at offset %d", ErrMalformed, r.pos)
		}
		r.pos++
	}
	return nil
}

func (r *reader) uint32Field() (uint32, error) {
	if err := r.expect(headerSequence); err != nil {
		return 0, err
	}
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("%w: truncated sequence field", ErrMalformed)
	}
	v := uint32(r.buf[r.pos])<<24 | uint32(r.buf[r.pos+1])<<16 |
		uint32(r.buf[r.pos+2])<<8 | uint32(r.buf[r.pos+3])
	r.pos += 4
	return v, nil
}

func (r *reader) blobField(header ...byte) ([]byte, error) {
	if err := r.expect(header...); err != nil {
		return nil, err
	}
	if r.pos >= len(r.buf) {
		return nil, fmt.Errorf("%w: truncated blob length", ErrMalformed)
	}
	n := int(r.buf[r.pos])
	r.pos++
	if n >= maxBlobLen || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("%w: bad blob length %d", ErrMalformed, n)
	}
	blob := append([]byte(nil), r.buf[r.pos:r.pos+n]...)
	r.pos += n
	return blob, nil
}

func (r *reader) done() error {
	if r.pos != len(r.buf) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(r.buf)-r.pos)
	}
	return nil
}

// publicKeyFromBlob infers the algorithm from the serialized length:
// 32 bytes is an Ed25519 key, 33 a compressed secp256k1 point.
func publicKeyFromBlob(blob []byte) (crypto.PublicKey, error) {
	switch len(blob) {
	case 32:
		return crypto.PublicKey{KeyType: domain.Ed25519, Raw: blob}, nil
	case 33:
		return crypto.PublicKey{KeyType: domain.Secp256k1, Raw: blob}, nil
	}
	return crypto.PublicKey{}, fmt.Errorf("%w: public key of %d bytes", ErrMalformed, len(blob))
}
