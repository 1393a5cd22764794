package domain

import (
	"fmt"
	"math"
)

// RevokedSequence is the terminal sequence value. An identity whose
// sequence reaches it is permanently revoked; no transition out of it
// ever succeeds.
const RevokedSequence uint32 = math.MaxUint32

// NextSequence computes the sequence a new manifest should carry.
//
// With requested nil the counter advances by one, failing with
// ErrSequenceExhausted once current is at RevokedSequence. With requested
// set, the value must strictly exceed current or the transition fails
// with ErrSequenceNotIncreasing.
func NextSequence(current uint32, requested *uint32) (uint32, error) {
	if requested != nil {
		if *requested <= current {
			return 0, fmt.Errorf("%w: requested %d, current %d",
				ErrSequenceNotIncreasing, *requested, current)
		}
		return *requested, nil
	}
	if current == RevokedSequence {
		return 0, ErrSequenceExhausted
	}
	return current + 1, nil
}

// RevokeSequence returns the terminal sequence. Revoking an already
// revoked counter fails with ErrSequenceExhausted; a repeat revocation
// signals a logic error upstream and is never silently accepted.
func RevokeSequence(current uint32) (uint32, error) {
	if current == RevokedSequence {
		return 0, ErrSequenceExhausted
	}
	return RevokedSequence, nil
}

// IsRevoked reports whether seq is the terminal revocation value.
func IsRevoked(seq uint32) bool { return seq == RevokedSequence }
