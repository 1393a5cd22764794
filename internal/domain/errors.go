package domain

import "errors"

// Load errors. Callers wrap these with the offending field or value so
// errors.Is still matches the category.
var (
	ErrMissingField    = errors.New("key file is missing required field")
	ErrInvalidKeyType  = errors.New("invalid key type")
	ErrInvalidSecret   = errors.New("invalid master secret")
	ErrInvalidSequence = errors.New("invalid sequence")
	ErrParse           = errors.New("unable to parse key file")
)

// Sequence errors.
var (
	ErrSequenceNotIncreasing = errors.New("sequence should exceed current sequence")
	ErrSequenceExhausted     = errors.New("sequence is already at maximum value; master keys have been revoked")
)
