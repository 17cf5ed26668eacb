package sigfootprint

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
)

// SignatureEncoding selects how ECDSA signatures are serialized, which decides
// the byte count that gets priced.
type SignatureEncoding uint8

const (
	// EncodingCompact is the fixed 64-byte r||s form.
	EncodingCompact SignatureEncoding = iota
	// EncodingDER is the ASN.1 DER form (70 to 72 bytes for low-S signatures).
	EncodingDER
)

// compactSize is the length of an r||s signature.
const compactSize = 64

// String returns the configuration name of the encoding.
func (e SignatureEncoding) String() string {
	switch e {
	case EncodingCompact:
		return "compact"
	case EncodingDER:
		return "der"
	default:
		return "unknown"
	}
}

// ParseSignatureEncoding parses "compact" or "der" (case-insensitive).
func ParseSignatureEncoding(s string) (SignatureEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "":
		return EncodingCompact, nil
	case "der":
		return EncodingDER, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
}

// HashMessage returns the SHA-256 digest ECDSA signs.
func HashMessage(message []byte) []byte {
	h := sha256.Sum256(message)
	return h[:]
}

var _ Signer = (*ECDSASigner)(nil)

// ECDSASigner signs with a fixed secp256k1 key using RFC 6979 nonces, so
// signing the same message twice yields the same bytes.
type ECDSASigner struct {
	priv     *secp256k1.PrivateKey
	encoding SignatureEncoding
}

// NewECDSASigner creates a signer from a 32-byte secret scalar.
func NewECDSASigner(secretKey []byte, encoding SignatureEncoding) (*ECDSASigner, error) {
	if encoding != EncodingCompact && encoding != EncodingDER {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, encoding)
	}

	priv, err := keyaudit.ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return &ECDSASigner{priv: priv, encoding: encoding}, nil
}

func (s *ECDSASigner) Scheme() Scheme { return SchemeECDSASecp256k1 }

// Encoding returns the serialization used by Sign.
func (s *ECDSASigner) Encoding() SignatureEncoding { return s.encoding }

// PublicKey returns the 65-byte uncompressed public key.
func (s *ECDSASigner) PublicKey() []byte { return s.priv.PubKey().SerializeUncompressed() }

// SecretKey returns the 32-byte secret scalar.
func (s *ECDSASigner) SecretKey() []byte { return s.priv.Serialize() }

// Sign signs SHA-256(message).
func (s *ECDSASigner) Sign(message []byte) (*SignatureRecord, error) {
	hash := HashMessage(message)

	var raw []byte
	switch s.encoding {
	case EncodingDER:
		raw = ecdsa.Sign(s.priv, hash).Serialize()
	default:
		// SignCompact prefixes the recovery code; r||s follows it.
		recoverable := ecdsa.SignCompact(s.priv, hash, false)
		if len(recoverable) != compactSize+1 {
			return nil, fmt.Errorf("%w: compact signature is %d bytes", ErrSigningFailure, len(recoverable))
		}
		raw = recoverable[1:]
	}

	rec := newSignatureRecord(SchemeECDSASecp256k1, raw)
	if !s.Verify(message, rec) {
		return nil, fmt.Errorf("%w: %s signature does not verify", ErrSigningFailure, SchemeECDSASecp256k1)
	}
	return rec, nil
}

// Verify checks sig against SHA-256(message) in the signer's encoding.
func (s *ECDSASigner) Verify(message []byte, sig *SignatureRecord) bool {
	if sig == nil || sig.Scheme != SchemeECDSASecp256k1 {
		return false
	}

	parsed, err := s.parse(sig.Raw)
	if err != nil {
		return false
	}
	return parsed.Verify(HashMessage(message), s.priv.PubKey())
}

func (s *ECDSASigner) parse(raw []byte) (*ecdsa.Signature, error) {
	if s.encoding == EncodingDER {
		return ecdsa.ParseDERSignature(raw)
	}

	if len(raw) != compactSize {
		return nil, fmt.Errorf("compact signature must be %d bytes, got %d", compactSize, len(raw))
	}

	var r, sc secp256k1.ModNScalar
	if overflow := r.SetByteSlice(raw[:32]); overflow || r.IsZero() {
		return nil, fmt.Errorf("signature r is out of range")
	}
	if overflow := sc.SetByteSlice(raw[32:]); overflow || sc.IsZero() {
		return nil, fmt.Errorf("signature s is out of range")
	}
	return ecdsa.NewSignature(&r, &sc), nil
}
