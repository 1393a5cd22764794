// Package identity manages the master validator identity: creation,
// recovery from a mnemonic, strict record validation on load, and the
// sequence transitions that gate manifest signing.
package identity
