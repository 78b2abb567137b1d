package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint64
	}{
		{"eosio_token", "eosio.token", 0x5530EA033482A600},
		{"empty", "", 0},
		{"all_dots", "............", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stringToName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	// The 13th character only contributes 4 bits, so a value there above
	// alphabet index 15 ('j') cannot round-trip exactly — same truncation
	// abieos itself has. Names tested here either stay under 13
	// characters or end on a character that fits in 4 bits.
	for _, s := range []string{"eosio", "eosio.token", "a", "eosio.tokenj"} {
		v, err := stringToName(s)
		require.NoError(t, err)
		assert.Equal(t, s, nameToString(v))
	}
}

func TestStringToNameTooLong(t *testing.T) {
	_, err := stringToName("thisnameiswaytoolong")
	require.Error(t, err)
}

func TestStringToNameInvalidCharacter(t *testing.T) {
	_, err := stringToName("UPPER")
	require.Error(t, err)
}

func TestSymbolCodeRoundTrip(t *testing.T) {
	v, err := symbolCodeToValue("EOS")
	require.NoError(t, err)
	assert.Equal(t, "EOS", valueToSymbolCode(v))
}

func TestParseAndFormatAssetText(t *testing.T) {
	amount, precision, code, err := parseAssetText("1.0000 EOS")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), amount)
	assert.Equal(t, uint8(4), precision)
	assert.Equal(t, "EOS", code)
	assert.Equal(t, "1.0000 EOS", formatAssetText(amount, precision, code))
}

func TestParseAssetTextNegative(t *testing.T) {
	amount, precision, code, err := parseAssetText("-0.5000 EOS")
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), amount)
	assert.Equal(t, "-0.5000 EOS", formatAssetText(amount, precision, code))
}
