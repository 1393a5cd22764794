// Package crypto exposes the key primitives used by valkeys.
//
// Contents
//
//   - Seed generation and deterministic secret-key derivation for the two
//     supported algorithms (NewSeed, SecretKeyFromSeed, Generate)
//   - Signing and verification (SecretKey.Sign, Verify)
//   - Self-describing base58check token encodings for secrets, public
//     keys and seeds (EncodeSecret, DecodePublic, ...)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// SecretKey is an opaque value type: the raw material never leaves the
// package except through signatures, and the type prints redacted. Treat
// returned secrets as sensitive and call Wipe when a copy is retired.
package crypto
