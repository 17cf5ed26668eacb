package sigfootprint

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
	"github.com/mahdiidarabi/pqc-audit/pkg/log"
)

// KeySizes are the serialized key lengths of both schemes.
type KeySizes struct {
	ECDSAPublicKey     int
	ECDSASecretKey     int
	DilithiumPublicKey int
	DilithiumSecretKey int
}

// Footprint is the result of one analysis run.
type Footprint struct {
	Message []byte

	// Address is the account address of the classical signing key.
	Address keyaudit.Address

	Keys      KeySizes
	ECDSA     *SignatureRecord
	Dilithium *SignatureRecord

	ECDSAGas     GasEstimate
	DilithiumGas GasEstimate
	Comparison   FootprintComparison
}

// Analyzer runs signature footprint analyses. Its settings are fixed once
// Analyze is called, and it keeps no state between runs.
type Analyzer struct {
	entropy  io.Reader
	encoding SignatureEncoding
	logger   log.Logger
}

// NewAnalyzer creates an analyzer using crypto/rand, compact ECDSA encoding
// and no logging.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		entropy:  rand.Reader,
		encoding: EncodingCompact,
		logger:   log.NewNoopLogger(),
	}
}

// WithRand sets the entropy source for lattice key generation.
func (a *Analyzer) WithRand(entropy io.Reader) *Analyzer {
	a.entropy = entropy
	return a
}

// WithEncoding sets the ECDSA signature encoding.
func (a *Analyzer) WithEncoding(encoding SignatureEncoding) *Analyzer {
	a.encoding = encoding
	return a
}

// WithLogger sets the logger used for debug output.
func (a *Analyzer) WithLogger(logger log.Logger) *Analyzer {
	a.logger = logger
	return a
}

// Analyze signs message with the ECDSA key ecdsaSecretKey and with a freshly
// generated Dilithium2 key, then measures and prices both.
func (a *Analyzer) Analyze(message, ecdsaSecretKey []byte) (*Footprint, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}

	classical, err := NewECDSASigner(ecdsaSecretKey, a.encoding)
	if err != nil {
		return nil, err
	}

	postQuantum, err := NewDilithiumSigner(a.entropy)
	if err != nil {
		return nil, err
	}

	return a.AnalyzeWith(message, classical, postQuantum)
}

// AnalyzeWith runs the analysis over two arbitrary signers. classical fills the
// ECDSA fields of the Footprint and postQuantum the Dilithium fields; Address
// is only set when classical is an ECDSA-secp256k1 signer.
func (a *Analyzer) AnalyzeWith(message []byte, classical, postQuantum Signer) (*Footprint, error) {
	if len(message) == 0 {
		return nil, ErrEmptyMessage
	}
	msg := append([]byte(nil), message...)

	logger := a.logger.WithName("footprint")

	classicalSig, err := classical.Sign(msg)
	if err != nil {
		return nil, err
	}
	logger.Debug("signature measured", "scheme", classical.Scheme().String(), "bytes", classicalSig.SizeBytes)

	pqSig, err := postQuantum.Sign(msg)
	if err != nil {
		return nil, err
	}
	logger.Debug("signature measured", "scheme", postQuantum.Scheme().String(), "bytes", pqSig.SizeBytes)

	classicalGas := EstimateGas(classicalSig)
	pqGas := EstimateGas(pqSig)

	cmp, err := Compare(classicalGas, pqGas)
	if err != nil {
		return nil, err
	}

	var addr keyaudit.Address
	if classical.Scheme() == SchemeECDSASecp256k1 {
		addr, err = keyaudit.AddressFromPublicKey(classical.PublicKey())
		if err != nil {
			return nil, fmt.Errorf("failed to derive signer address: %w", err)
		}
	}

	footprint := &Footprint{
		Message: msg,
		Address: addr,
		Keys: KeySizes{
			ECDSAPublicKey:     len(classical.PublicKey()),
			ECDSASecretKey:     len(classical.SecretKey()),
			DilithiumPublicKey: len(postQuantum.PublicKey()),
			DilithiumSecretKey: len(postQuantum.SecretKey()),
		},
		ECDSA:        classicalSig,
		Dilithium:    pqSig,
		ECDSAGas:     classicalGas,
		DilithiumGas: pqGas,
		Comparison:   cmp,
	}

	logger.Debug("footprint computed",
		"bloat_factor", cmp.BloatFactor,
		"extra_gas", cmp.ExtraGas,
		"exceeds_baseline", cmp.ExceedsBaseline,
	)
	return footprint, nil
}
