package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub PublicKey) string {
	sum := blake2b.Sum256(pub.Raw)
	return hex.EncodeToString(sum[:10])
}
