package keyaudit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_Sizes(t *testing.T) {
	d, err := Derive()
	require.NoError(t, err)

	assert.Len(t, d.SecretKey, 32)
	assert.Len(t, d.PublicKey, 65)
	assert.Equal(t, byte(0x04), d.PublicKey[0])
	assert.Len(t, d.RawPublicKey(), 64)
	assert.Len(t, d.Address.Bytes(), 20)
	assert.NoError(t, d.Validate())
}

func TestDerive_AddressIsFunctionOfPublicKey(t *testing.T) {
	d, err := Derive()
	require.NoError(t, err)

	addr, err := AddressFromPublicKey(d.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, d.Address, addr)
}

func TestDerive_FreshKeys(t *testing.T) {
	d1, err := Derive()
	require.NoError(t, err)
	d2, err := Derive()
	require.NoError(t, err)

	assert.NotEqual(t, d1.SecretKey, d2.SecretKey)
	assert.NotEqual(t, d1.Address, d2.Address)
}

func TestDeriveFrom_RoundTrip(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)

	d, err := DeriveFrom(bytes.NewReader(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, d.SecretKey)

	kp, err := KeyPairFromSecret(d.SecretKey)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey, d.PublicKey)
}

func TestDeriveFrom_Failure(t *testing.T) {
	d, err := DeriveFrom(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrKeyGeneration)
	assert.Nil(t, d)
}

func TestDerivation_Artifacts(t *testing.T) {
	d, err := DeriveFrom(bytes.NewReader(bytes.Repeat([]byte{0x01}, 32)))
	require.NoError(t, err)

	artifacts := d.Artifacts()
	require.Len(t, artifacts, 3)

	assert.Equal(t, ArtifactSecretKey, artifacts[0].Name)
	assert.Equal(t, ExposureNever, artifacts[0].Exposure)
	assert.Equal(t, d.SecretKey, artifacts[0].Bytes)

	assert.Equal(t, ArtifactAddress, artifacts[1].Name)
	assert.Equal(t, ExposureSafe, artifacts[1].Exposure)
	assert.Equal(t, d.Address.Bytes(), artifacts[1].Bytes)

	assert.Equal(t, ArtifactRawPublicKey, artifacts[2].Name)
	assert.Equal(t, ExposureDangerous, artifacts[2].Exposure)
	assert.Equal(t, d.PublicKey[1:], artifacts[2].Bytes)

	// Artifacts hand out copies.
	artifacts[0].Bytes[0] ^= 0xff
	assert.Equal(t, byte(0x01), d.SecretKey[0])
}

func TestExposure_String(t *testing.T) {
	tests := []struct {
		exposure Exposure
		expected string
	}{
		{ExposureSafe, "safe to expose"},
		{ExposureDangerous, "dangerous if exposed"},
		{ExposureNever, "must never be exposed"},
		{Exposure(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.exposure.String())
	}
	assert.NotEmpty(t, ExposureDangerous.Note())
	assert.Empty(t, Exposure(99).Note())
}
