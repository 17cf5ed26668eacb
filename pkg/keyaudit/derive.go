package keyaudit

import (
	"crypto/rand"
	"io"
)

// Derivation is the output of one key and address derivation run.
type Derivation struct {
	KeyPair
	Address Address
}

// Derive generates a fresh keypair from crypto/rand and derives its address.
func Derive() (*Derivation, error) {
	return DeriveFrom(rand.Reader)
}

// DeriveFrom is Derive with a caller-supplied entropy source.
// The reader must be safe for concurrent use if DeriveFrom is called concurrently.
func DeriveFrom(entropy io.Reader) (*Derivation, error) {
	priv, err := sampleSecretKey(entropy)
	if err != nil {
		return nil, err
	}

	kp := newKeyPair(priv)
	return &Derivation{
		KeyPair: *kp,
		Address: addressFromRaw(kp.PublicKey[1:]),
	}, nil
}

// RawPublicKey returns the 64 coordinate bytes (X || Y) without the format prefix.
func (d *Derivation) RawPublicKey() []byte {
	return append([]byte(nil), d.PublicKey[1:]...)
}

// Artifacts lists the secret key, address and raw public key with their
// exposure classification, in that order.
func (d *Derivation) Artifacts() []Artifact {
	return []Artifact{
		{Name: ArtifactSecretKey, Bytes: append([]byte(nil), d.SecretKey...), Exposure: ExposureNever},
		{Name: ArtifactAddress, Bytes: d.Address.Bytes(), Exposure: ExposureSafe},
		{Name: ArtifactRawPublicKey, Bytes: d.RawPublicKey(), Exposure: ExposureDangerous},
	}
}
