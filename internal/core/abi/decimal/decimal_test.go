package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint128RoundTrip(t *testing.T) {
	values := []string{"0", "1", "340282366920938463463374607431768211455", "123456789012345678901234567890"}
	for _, s := range values {
		enc, err := EncodeUint128(s)
		require.NoError(t, err)
		assert.Equal(t, s, DecodeUint128(enc[:]))
	}
}

func TestUint128Overflow(t *testing.T) {
	_, err := EncodeUint128("340282366920938463463374607431768211456") // 2^128
	require.ErrorIs(t, err, ErrOverflow)
}

func TestUint128RejectsNegative(t *testing.T) {
	_, err := EncodeUint128("-1")
	require.ErrorIs(t, err, ErrOverflow)
}

func TestInt128RoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "170141183460469231731687303715884105727", "-170141183460469231731687303715884105727"}
	for _, s := range values {
		enc, err := EncodeInt128(s)
		require.NoError(t, err)
		assert.Equal(t, s, DecodeInt128(enc[:]))
	}
}

func TestInt128RejectsTwosComplementMinimum(t *testing.T) {
	_, err := EncodeInt128("-170141183460469231731687303715884105728") // -2^127
	require.ErrorIs(t, err, ErrOverflow)
}

func TestInt128RejectsMalformed(t *testing.T) {
	_, err := EncodeInt128("not-a-number")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestUint128RejectsMalformed(t *testing.T) {
	_, err := EncodeUint128("12.5")
	require.ErrorIs(t, err, ErrMalformed)
}
