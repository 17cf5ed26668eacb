package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/pqc-audit/pkg/keyaudit"
	"github.com/mahdiidarabi/pqc-audit/pkg/sigfootprint"
)

func fixedDerivation(t *testing.T) *keyaudit.Derivation {
	t.Helper()

	secret := make([]byte, 32)
	secret[31] = 1
	kp, err := keyaudit.KeyPairFromSecret(secret)
	require.NoError(t, err)
	addr, err := keyaudit.AddressFromPublicKey(kp.PublicKey)
	require.NoError(t, err)

	return &keyaudit.Derivation{KeyPair: *kp, Address: addr}
}

func TestWriteKeyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteKeyReport(&buf, fixedDerivation(t)))
	out := buf.String()

	assert.Contains(t, out, "QUANTUM VULNERABILITY REPORT")
	assert.Contains(t, out, "0x0000000000000000000000000000000000000000000000000000000000000001")
	assert.Contains(t, out, "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf")
	// Generator point coordinates.
	assert.Contains(t, out, "0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada77")
	assert.Contains(t, out, "must never be exposed")
	assert.Contains(t, out, "safe to expose")
	assert.Contains(t, out, "dangerous if exposed")
	assert.Contains(t, out, "needs item #3 to find item #1")
	assert.Contains(t, out, keyaudit.ExposureSafe.Note())
	assert.Contains(t, out, keyaudit.ExposureDangerous.Note())
	assert.Contains(t, out, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf")
}

func TestWriteFootprintReport(t *testing.T) {
	fp, err := sigfootprint.NewAnalyzer().Analyze(
		[]byte("transfer(0xDEAd...BEEF, 50 ETH)"),
		bytes.Repeat([]byte{0x01}, 32),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFootprintReport(&buf, fp))
	out := buf.String()

	for _, want := range []string{
		"KEY DERIVATION",
		"Dilithium2 public key", "1312",
		"Dilithium2 secret key", "2528",
		"ECDSA-secp256k1 public key", "65",
		"DATA FOOTPRINT", "2420",
		"37.8x larger",
		"1024", "38720", "37696",
		"CRITICAL: Dilithium2 signature data alone (38720 gas) exceeds a standard L1 transfer (21000 gas)!",
		fp.Address.Checksum(),
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteFootprintReport_WithinBaseline(t *testing.T) {
	fp := &sigfootprint.Footprint{
		ECDSAGas:     sigfootprint.GasEstimate{Scheme: sigfootprint.SchemeECDSASecp256k1, ByteCount: 64, PerByteCost: 16, TotalGas: 1024},
		DilithiumGas: sigfootprint.GasEstimate{Scheme: sigfootprint.SchemeDilithium2, ByteCount: 1000, PerByteCost: 16, TotalGas: 16000},
		Comparison:   sigfootprint.FootprintComparison{BloatFactor: 15.625, ExtraGas: 14976},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFootprintReport(&buf, fp))
	out := buf.String()

	assert.NotContains(t, out, "CRITICAL")
	assert.Contains(t, out, "fits within a standard L1 transfer (21000 gas)")
	assert.Contains(t, out, "15.6x larger")
}

func TestBloat(t *testing.T) {
	assert.Equal(t, "37.8", bloat(37.8125))
	assert.Equal(t, "1.0", bloat(1))
	assert.Equal(t, "34.1", bloat(2420.0/71.0))
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	assert.Error(t, WriteKeyReport(failingWriter{}, fixedDerivation(t)))
	assert.Error(t, WriteFootprintReport(failingWriter{}, &sigfootprint.Footprint{}))
}
