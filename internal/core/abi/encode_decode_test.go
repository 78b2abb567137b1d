package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

func testContract(t *testing.T) *Contract {
	t.Helper()
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "S", Fields: []abitypes.Field{
				{Name: "a", Type: "uint32"},
				{Name: "b", Type: "string?"},
			}},
		},
	}
	c, err := NewContract(raw)
	require.NoError(t, err)
	return c
}

func TestJSONToBinVaruint32(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "varuint32", []byte(`3735928559`))
	require.NoError(t, err)
	assert.Equal(t, "effdb6f50d", hex.EncodeToString(bin))
}

func TestJSONToBinStructWithNilOptional(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "S", []byte(`{"a": 1, "b": null}`))
	require.NoError(t, err)
	assert.Equal(t, "0100000000", hex.EncodeToString(bin))
}

func TestJSONToBinStructWithPresentOptional(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "S", []byte(`{"a": 1, "b": "hi"}`))
	require.NoError(t, err)
	assert.Equal(t, "0100000001026869", hex.EncodeToString(bin))
}

func TestJSONToBinRejectsOutOfOrderFields(t *testing.T) {
	c := testContract(t)
	_, err := JSONToBin(c, "S", []byte(`{"b": "hi", "a": 1}`))
	require.Error(t, err)
}

func TestJSONToBinRejectsMissingField(t *testing.T) {
	c := testContract(t)
	_, err := JSONToBin(c, "S", []byte(`{"a": 1}`))
	require.Error(t, err)
}

func TestBinToJSONStructRoundTrip(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "S", []byte(`{"a": 1, "b": "hi"}`))
	require.NoError(t, err)

	text, err := BinToJSON(c, "S", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":"hi"}`, text)
}

func TestUint64StringRoundTrip(t *testing.T) {
	c := testContract(t)
	in := `"18446744073709551615"`
	bin, err := JSONToBin(c, "uint64", []byte(in))
	require.NoError(t, err)
	assert.Equal(t, "ffffffffffffffff", hex.EncodeToString(bin))

	text, err := BinToJSON(c, "uint64", bin)
	require.NoError(t, err)
	assert.Equal(t, in, text)
}

func TestAssetEncode(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "asset", []byte(`"1.0000 EOS"`))
	require.NoError(t, err)
	assert.Equal(t, "1027000000000000"+"04454f5300000000", hex.EncodeToString(bin))
}

func TestBlockTimestampEncode(t *testing.T) {
	c := testContract(t)
	bin, err := JSONToBin(c, "block_timestamp_type", []byte(`"2020-01-01T00:00:00.000"`))
	require.NoError(t, err)
	assert.Equal(t, "003b3d4b", hex.EncodeToString(bin))
}

func TestArrayOfStructRoundTrip(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "S", Fields: []abitypes.Field{{Name: "a", Type: "uint32"}}},
		},
	}
	c, err := NewContract(raw)
	require.NoError(t, err)

	bin, err := JSONToBin(c, "S[]", []byte(`[{"a":1},{"a":2},{"a":3}]`))
	require.NoError(t, err)

	text, err := BinToJSON(c, "S[]", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":1},{"a":2},{"a":3}]`, text)
}
