package keytext

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secp256k1GeneratorPointCompressed is the standard base point G, a known
// valid point on the curve, used to exercise ParsePublicKey's K1 point
// validation without depending on key generation.
const secp256k1GeneratorPointCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestPublicKeyRoundTripK1(t *testing.T) {
	data, err := hex.DecodeString(secp256k1GeneratorPointCompressed)
	require.NoError(t, err)

	text, err := FormatPublicKey(CurveK1, data)
	require.NoError(t, err)
	assert.Contains(t, text, "PUB_K1_")

	curve, got, err := ParsePublicKey(text)
	require.NoError(t, err)
	assert.Equal(t, CurveK1, curve)
	assert.Equal(t, data, got)
}

func TestPublicKeyRejectsInvalidPoint(t *testing.T) {
	notAPoint := make([]byte, PublicKeyDataLen)
	notAPoint[0] = 0x02 // valid compressed-point prefix, garbage x-coordinate
	text, err := FormatPublicKey(CurveK1, notAPoint)
	require.NoError(t, err)

	_, _, err = ParsePublicKey(text)
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	data := make([]byte, PrivateKeyDataLen)
	for i := range data {
		data[i] = byte(i + 1)
	}
	text, err := FormatPrivateKey(CurveK1, data)
	require.NoError(t, err)
	assert.Contains(t, text, "PVT_K1_")

	curve, got, err := ParsePrivateKey(text)
	require.NoError(t, err)
	assert.Equal(t, CurveK1, curve)
	assert.Equal(t, data, got)
}

func TestSignatureRoundTrip(t *testing.T) {
	data := make([]byte, SignatureDataLen)
	for i := range data {
		data[i] = byte(255 - i)
	}
	text, err := FormatSignature(CurveR1, data)
	require.NoError(t, err)
	assert.Contains(t, text, "SIG_R1_")

	curve, got, err := ParseSignature(text)
	require.NoError(t, err)
	assert.Equal(t, CurveR1, curve)
	assert.Equal(t, data, got)
}

func TestDecodeRejectsTamperedChecksum(t *testing.T) {
	data := make([]byte, PrivateKeyDataLen)
	text, err := FormatPrivateKey(CurveK1, data)
	require.NoError(t, err)

	tampered := text[:len(text)-1] + "1"
	_, _, err = ParsePrivateKey(tampered)
	require.Error(t, err)
}

func TestDecodeRejectsWrongPrefix(t *testing.T) {
	data := make([]byte, PrivateKeyDataLen)
	text, err := FormatPrivateKey(CurveK1, data)
	require.NoError(t, err)

	_, _, err = ParsePublicKey(text)
	require.ErrorIs(t, err, ErrBadPrefix)
}

func TestTagCurveRoundTrip(t *testing.T) {
	for _, c := range []Curve{CurveK1, CurveR1, CurveWA} {
		got, err := TagToCurve(CurveToTag(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestFormatRejectsWrongLength(t *testing.T) {
	_, err := FormatPublicKey(CurveK1, make([]byte, 10))
	require.ErrorIs(t, err, ErrBadLength)
}
