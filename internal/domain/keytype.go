package domain

import "fmt"

// KeyType identifies a supported signature algorithm. The set is closed:
// adding an algorithm is a protocol change, not configuration.
type KeyType int

const (
	Ed25519 KeyType = iota
	Secp256k1
)

// ParseKeyType maps the textual tag used in key files to a KeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case "ed25519":
		return Ed25519, nil
	case "secp256k1":
		return Secp256k1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyType, s)
}

func (k KeyType) String() string {
	switch k {
	case Ed25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	}
	return fmt.Sprintf("KeyType(%d)", int(k))
}
