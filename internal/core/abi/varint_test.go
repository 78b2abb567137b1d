package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVaruint32(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want string
	}{
		{"zero", 0, "00"},
		{"single_byte", 127, "7f"},
		{"two_bytes", 128, "8001"},
		{"spec_vector", 0xdeadbeef, "effdb6f50d"},
		{"max", 0xffffffff, "ffffffff0f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeVaruint32(nil, tt.in)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

func TestVaruint32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 0xdeadbeef, 0xffffffff}
	for _, v := range values {
		enc := EncodeVaruint32(nil, v)
		got, n, err := DecodeVaruint32(enc)
		require.NoError(t, err)
		assert.Equal(t, len(enc), n)
		assert.Equal(t, v, got)
	}
}

func TestVarint32ZigZagRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, -64, 1000000, -1000000}
	for _, v := range values {
		enc := EncodeVarint32(nil, v)
		got, n, err := DecodeVarint32(enc)
		require.NoError(t, err)
		assert.Equal(t, len(enc), n)
		assert.Equal(t, v, got)
	}
}

func TestDecodeVaruint32TruncatedInput(t *testing.T) {
	_, _, err := DecodeVaruint32([]byte{0x80})
	require.Error(t, err)
}
