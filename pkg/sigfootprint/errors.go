package sigfootprint

import (
	"errors"

	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
)

var (
	// ErrInvalidKey is returned for malformed or out-of-range ECDSA secret keys.
	ErrInvalidKey = keyaudit.ErrInvalidKey

	// ErrKeyGeneration is returned when a lattice keypair cannot be generated.
	ErrKeyGeneration = keyaudit.ErrKeyGeneration

	// ErrSigningFailure is returned when a signature primitive rejects its input
	// or produces a signature that does not verify.
	ErrSigningFailure = errors.New("signing failed")

	// ErrDegenerateInput is returned when the bloat factor would divide by a
	// zero-length classical signature.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrEmptyMessage is returned when Analyze is given nothing to sign.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrUnknownEncoding is returned for unsupported ECDSA signature encodings.
	ErrUnknownEncoding = errors.New("unknown signature encoding")
)
