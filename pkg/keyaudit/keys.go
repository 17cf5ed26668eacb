package keyaudit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// SecretKeySize is the length of a serialized secp256k1 secret scalar.
	SecretKeySize = secp256k1.PrivKeyBytesLen

	// PublicKeySize is the length of an uncompressed public key (prefix + X + Y).
	PublicKeySize = secp256k1.PubKeyBytesLenUncompressed

	// RawPublicKeySize is the length of the public key without its format prefix.
	RawPublicKeySize = PublicKeySize - 1

	// uncompressedPrefix is the SEC1 tag for an uncompressed point.
	uncompressedPrefix = 0x04

	// maxSampleAttempts bounds rejection sampling. A uniform source hits a
	// rejected value with probability about 2^-128 per draw.
	maxSampleAttempts = 8
)

// KeyPair is a secp256k1 secret key and the uncompressed public key derived from it.
type KeyPair struct {
	SecretKey []byte // 32-byte big-endian scalar
	PublicKey []byte // 65 bytes: 0x04 || X || Y
}

// ParseSecretKey parses a 32-byte big-endian secret scalar.
// Unlike secp256k1.PrivKeyFromBytes it rejects zero and values that would be
// reduced modulo the curve order instead of silently accepting them.
func ParseSecretKey(secret []byte) (*secp256k1.PrivateKey, error) {
	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKey, SecretKeySize, len(secret))
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(secret); overflow {
		return nil, fmt.Errorf("%w: scalar is not below the curve order", ErrInvalidKey)
	}
	if k.IsZero() {
		return nil, fmt.Errorf("%w: scalar is zero", ErrInvalidKey)
	}

	return secp256k1.NewPrivateKey(&k), nil
}

// KeyPairFromSecret derives the keypair for an existing secret key.
func KeyPairFromSecret(secret []byte) (*KeyPair, error) {
	priv, err := ParseSecretKey(secret)
	if err != nil {
		return nil, err
	}
	return newKeyPair(priv), nil
}

// Validate checks that PublicKey is the key derived from SecretKey.
func (kp *KeyPair) Validate() error {
	priv, err := ParseSecretKey(kp.SecretKey)
	if err != nil {
		return err
	}

	derived := priv.PubKey().SerializeUncompressed()
	if !bytes.Equal(derived, kp.PublicKey) {
		return fmt.Errorf("%w: public key does not match secret key", ErrInvalidKey)
	}
	return nil
}

func newKeyPair(priv *secp256k1.PrivateKey) *KeyPair {
	return &KeyPair{
		SecretKey: priv.Serialize(),
		PublicKey: priv.PubKey().SerializeUncompressed(),
	}
}

// sampleSecretKey draws a scalar uniformly from [1, n-1] by rejection sampling.
func sampleSecretKey(entropy io.Reader) (*secp256k1.PrivateKey, error) {
	var buf [SecretKeySize]byte
	defer clear(buf[:])

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		if _, err := io.ReadFull(entropy, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: failed to read entropy: %w", ErrKeyGeneration, err)
		}

		var k secp256k1.ModNScalar
		if overflow := k.SetByteSlice(buf[:]); overflow || k.IsZero() {
			continue
		}
		return secp256k1.NewPrivateKey(&k), nil
	}

	return nil, fmt.Errorf("%w: no valid scalar after %d attempts", ErrKeyGeneration, maxSampleAttempts)
}
