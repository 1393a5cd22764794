package crypto_test

import (
	"fmt"
	"testing"

	"valkeys/internal/crypto"
	"valkeys/internal/domain"
)

var keyTypes = []domain.KeyType{domain.Ed25519, domain.Secp256k1}

func TestSecretKeyFromSeed_Deterministic(t *testing.T) {
	for _, kt := range keyTypes {
		seed, err := crypto.NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		a := crypto.SecretKeyFromSeed(kt, seed)
		b := crypto.SecretKeyFromSeed(kt, seed)
		if !a.Public().Equal(b.Public()) {
			t.Fatalf("%s: same seed derived different keys", kt)
		}
	}
}

func TestSignVerify(t *testing.T) {
	msg := []byte("delegation payload")
	for _, kt := range keyTypes {
		sk, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate(%s): %v", kt, err)
		}
		pub := sk.Public()
		sig := sk.Sign(msg)
		if !crypto.Verify(pub, msg, sig) {
			t.Fatalf("%s: signature did not verify", kt)
		}
		if crypto.Verify(pub, []byte("other payload"), sig) {
			t.Fatalf("%s: signature verified for wrong message", kt)
		}
	}
}

func TestVerify_WrongKey(t *testing.T) {
	msg := []byte("delegation payload")
	for _, kt := range keyTypes {
		sk, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		other, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if crypto.Verify(other.Public(), msg, sk.Sign(msg)) {
			t.Fatalf("%s: signature verified under unrelated key", kt)
		}
	}
}

func TestPublicKeySizes(t *testing.T) {
	sizes := map[domain.KeyType]int{domain.Ed25519: 32, domain.Secp256k1: 33}
	for kt, want := range sizes {
		sk, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if got := len(sk.Public().Raw); got != want {
			t.Fatalf("%s public key is %d bytes, want %d", kt, got, want)
		}
	}
}

func TestSecretKey_PrintsRedacted(t *testing.T) {
	sk, _, err := crypto.Generate(domain.Ed25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, s := range []string{sk.String(), sk.GoString(), fmt.Sprintf("%v", sk), fmt.Sprintf("%#v", sk)} {
		if s != "SecretKey(ed25519)" {
			t.Fatalf("secret rendered as %q", s)
		}
	}
}
