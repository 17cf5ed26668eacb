package sigfootprint

// Scheme identifies a signature scheme.
type Scheme uint8

const (
	SchemeECDSASecp256k1 Scheme = iota + 1
	SchemeDilithium2
)

// String returns the display name of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeECDSASecp256k1:
		return "ECDSA-secp256k1"
	case SchemeDilithium2:
		return "Dilithium2"
	default:
		return "Unknown"
	}
}

// Signer is the signing capability every scheme provides.
type Signer interface {
	// Scheme returns the scheme this signer implements.
	Scheme() Scheme
	// PublicKey returns the serialized public key.
	PublicKey() []byte
	// SecretKey returns the serialized secret key.
	SecretKey() []byte
	// Sign signs message and returns the serialized signature.
	Sign(message []byte) (*SignatureRecord, error)
	// Verify reports whether sig is a valid signature of message under PublicKey.
	Verify(message []byte, sig *SignatureRecord) bool
}

// SignatureRecord is a serialized signature and its size.
type SignatureRecord struct {
	Scheme    Scheme
	SizeBytes int
	Raw       []byte
}

func newSignatureRecord(scheme Scheme, raw []byte) *SignatureRecord {
	return &SignatureRecord{
		Scheme:    scheme,
		SizeBytes: len(raw),
		Raw:       raw,
	}
}
