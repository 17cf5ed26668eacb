package sigfootprint

import (
	"crypto"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode2"
)

// Dilithium2 sizes (round-3 parameter set).
const (
	DilithiumPublicKeySize = mode2.PublicKeySize
	DilithiumSecretKeySize = mode2.PrivateKeySize
	DilithiumSignatureSize = mode2.SignatureSize
)

var _ Signer = (*DilithiumSigner)(nil)

// DilithiumSigner holds a Dilithium2 keypair.
type DilithiumSigner struct {
	pk      *mode2.PublicKey
	sk      *mode2.PrivateKey
	pkBytes []byte
	skBytes []byte
}

// NewDilithiumSigner generates a fresh keypair from entropy, or from
// crypto/rand when entropy is nil.
func NewDilithiumSigner(entropy io.Reader) (*DilithiumSigner, error) {
	if entropy == nil {
		entropy = rand.Reader
	}

	pk, sk, err := mode2.GenerateKey(entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrKeyGeneration, SchemeDilithium2, err)
	}

	pkBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to pack public key: %w", ErrKeyGeneration, err)
	}
	skBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to pack secret key: %w", ErrKeyGeneration, err)
	}

	return &DilithiumSigner{pk: pk, sk: sk, pkBytes: pkBytes, skBytes: skBytes}, nil
}

func (s *DilithiumSigner) Scheme() Scheme { return SchemeDilithium2 }

func (s *DilithiumSigner) PublicKey() []byte { return append([]byte(nil), s.pkBytes...) }

func (s *DilithiumSigner) SecretKey() []byte { return append([]byte(nil), s.skBytes...) }

// Sign signs message directly; Dilithium does not take a pre-hashed digest.
func (s *DilithiumSigner) Sign(message []byte) (*SignatureRecord, error) {
	raw, err := s.sk.Sign(nil, message, crypto.Hash(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSigningFailure, SchemeDilithium2, err)
	}

	rec := newSignatureRecord(SchemeDilithium2, raw)
	if !s.Verify(message, rec) {
		return nil, fmt.Errorf("%w: %s signature does not verify", ErrSigningFailure, SchemeDilithium2)
	}
	return rec, nil
}

func (s *DilithiumSigner) Verify(message []byte, sig *SignatureRecord) bool {
	if sig == nil || sig.Scheme != SchemeDilithium2 || len(sig.Raw) != DilithiumSignatureSize {
		return false
	}
	return mode2.Verify(s.pk, message, sig.Raw)
}
