// Package manifest builds and verifies the signed record that binds an
// ephemeral signing key to a master identity at a sequence number.
//
// The wire form is a canonical field-tagged binary layout: sequence,
// master public key, ephemeral public key, ephemeral signature, master
// signature, in that fixed order, rendered as base64 for transport. The
// ephemeral signature covers the pre-signature fields; the master
// signature additionally covers the ephemeral signature, binding the two
// irrevocably. Signing payloads carry a 4-byte domain prefix so manifest
// signatures can never be confused with other signed material.
package manifest
