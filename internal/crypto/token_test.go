package crypto_test

import (
	"errors"
	"testing"

	"valkeys/internal/crypto"
	"valkeys/internal/domain"
)

func TestSecretToken_RoundTrip(t *testing.T) {
	for _, kt := range keyTypes {
		sk, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		token := crypto.EncodeSecret(sk)
		decoded, err := crypto.DecodeSecret(token)
		if err != nil {
			t.Fatalf("DecodeSecret(%s): %v", kt, err)
		}
		if decoded.KeyType() != kt {
			t.Fatalf("decoded key type = %v, want %v", decoded.KeyType(), kt)
		}
		if !decoded.Public().Equal(sk.Public()) {
			t.Fatalf("%s: decoded secret derives a different public key", kt)
		}
	}
}

func TestPublicToken_RoundTrip(t *testing.T) {
	for _, kt := range keyTypes {
		sk, _, err := crypto.Generate(kt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		pub := sk.Public()
		decoded, err := crypto.DecodePublic(crypto.EncodePublic(pub))
		if err != nil {
			t.Fatalf("DecodePublic(%s): %v", kt, err)
		}
		if !decoded.Equal(pub) {
			t.Fatalf("%s: public key changed through encoding", kt)
		}
	}
}

func TestSeedToken_RoundTrip(t *testing.T) {
	seed, err := crypto.NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	token := crypto.EncodeSeed(seed, domain.Secp256k1)
	got, kt, err := crypto.DecodeSeed(token)
	if err != nil {
		t.Fatalf("DecodeSeed: %v", err)
	}
	if got != seed {
		t.Fatal("seed changed through encoding")
	}
	if kt != domain.Secp256k1 {
		t.Fatalf("key type = %v, want secp256k1", kt)
	}
}

func TestDecodeSecret_Corrupted(t *testing.T) {
	sk, _, err := crypto.Generate(domain.Ed25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	token := crypto.EncodeSecret(sk)

	// Flip one character; either the alphabet or the checksum rejects it.
	corrupt := []byte(token)
	if corrupt[3] == 'x' {
		corrupt[3] = 'y'
	} else {
		corrupt[3] = 'x'
	}
	if _, err := crypto.DecodeSecret(string(corrupt)); err == nil {
		t.Fatal("corrupted token decoded")
	}
}

func TestDecodeSecret_WrongClass(t *testing.T) {
	sk, _, err := crypto.Generate(domain.Ed25519)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// A public-key token is not a secret token.
	if _, err := crypto.DecodeSecret(crypto.EncodePublic(sk.Public())); !errors.Is(err, crypto.ErrTokenClass) {
		t.Fatalf("err = %v, want ErrTokenClass", err)
	}
}

func TestDecodeSecret_Garbage(t *testing.T) {
	for _, token := range []string{"", "abc", "not base58 0OIl"} {
		if _, err := crypto.DecodeSecret(token); err == nil {
			t.Fatalf("token %q decoded", token)
		}
	}
}
