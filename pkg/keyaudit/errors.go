package keyaudit

import "errors"

var (
	// ErrKeyGeneration is returned when the entropy source fails or cannot
	// produce a valid scalar.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrInvalidKey is returned for secret keys that are not exactly 32 bytes,
	// are zero, or are not below the curve order.
	ErrInvalidKey = errors.New("invalid secret key")

	// ErrInvalidPublicKey is returned when a public key is not a 65-byte
	// uncompressed point on secp256k1.
	ErrInvalidPublicKey = errors.New("invalid public key")
)
