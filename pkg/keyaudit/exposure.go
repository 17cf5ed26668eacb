package keyaudit

// Exposure classifies what publishing an artifact means against a quantum adversary.
type Exposure uint8

const (
	// ExposureSafe artifacts can be published; recovering the secret from them
	// requires inverting Keccak-256.
	ExposureSafe Exposure = iota
	// ExposureDangerous artifacts are the input Shor's algorithm needs to recover
	// the secret key.
	ExposureDangerous
	// ExposureNever artifacts are the secret itself.
	ExposureNever
)

// String returns the label used in audit reports.
func (e Exposure) String() string {
	switch e {
	case ExposureSafe:
		return "safe to expose"
	case ExposureDangerous:
		return "dangerous if exposed"
	case ExposureNever:
		return "must never be exposed"
	default:
		return "unknown"
	}
}

// Note explains the classification in one sentence.
func (e Exposure) Note() string {
	switch e {
	case ExposureSafe:
		return "If the chain only knows the address, the key is safe."
	case ExposureDangerous:
		return "Sending a transaction publishes the public key; Shor's algorithm turns it into the secret key."
	case ExposureNever:
		return "The secret key authorizes every transfer from the address."
	default:
		return ""
	}
}

// Artifact names used by Derivation.Artifacts.
const (
	ArtifactSecretKey    = "secret key"
	ArtifactAddress      = "address"
	ArtifactRawPublicKey = "public key"
)

// Artifact is one derived value with its exposure classification.
type Artifact struct {
	Name     string
	Bytes    []byte
	Exposure Exposure
}
