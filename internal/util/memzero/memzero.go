// Package memzero provides best-effort wiping of sensitive byte slices.
package memzero

import "crypto/subtle"

// Wipe overwrites b with zeros. Best effort: earlier copies the runtime
// made are out of reach, but this shortens the window a secret lives in
// reachable memory.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
