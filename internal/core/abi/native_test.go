package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nativeSampleABI = `{
	"version": "eosio::abi/1.0",
	"types": [{"new_type_name": "account_name", "type": "name"}],
	"structs": [
		{"name": "transfer", "base": "", "fields": [
			{"name": "from", "type": "account_name"},
			{"name": "to", "type": "name"}
		]}
	],
	"actions": [{"name": "transfer", "type": "transfer", "ricardian_contract": ""}],
	"tables": [{"name": "accounts", "index_type": "i64", "key_names": ["owner"], "key_types": ["uint64"], "type": "transfer"}],
	"ricardian_clauses": [{"id": "clause1", "body": "body text"}],
	"error_messages": [{"error_code": 1, "error_msg": "bad thing happened"}],
	"abi_extensions": [[5, "deadbeef"]]
}`

func TestLoadRawAbiParsesEveryRecordKind(t *testing.T) {
	raw, err := LoadRawAbi([]byte(nativeSampleABI))
	require.NoError(t, err)

	assert.Equal(t, "eosio::abi/1.0", raw.Version)
	require.Len(t, raw.Types, 1)
	assert.Equal(t, "account_name", raw.Types[0].NewTypeName)
	require.Len(t, raw.Structs, 1)
	require.Len(t, raw.Structs[0].Fields, 2)
	require.Len(t, raw.Actions, 1)
	require.Len(t, raw.Tables, 1)
	assert.Equal(t, []string{"owner"}, raw.Tables[0].KeyNames)
	require.Len(t, raw.RicardianClauses, 1)
	require.Len(t, raw.ErrorMessages, 1)
	assert.Equal(t, uint64(1), raw.ErrorMessages[0].ErrorCode)
	require.Len(t, raw.ABIExtensions, 1)
	assert.Equal(t, uint16(5), raw.ABIExtensions[0].Type)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, raw.ABIExtensions[0].Data)
}

func TestLoadRawAbiRejectsUnknownField(t *testing.T) {
	_, err := LoadRawAbi([]byte(`{"version": "x", "bogus_field": 1}`))
	require.Error(t, err)
}

func TestDumpRawAbiRoundTrip(t *testing.T) {
	raw, err := LoadRawAbi([]byte(nativeSampleABI))
	require.NoError(t, err)

	dumped := DumpRawAbi(raw)
	reloaded, err := LoadRawAbi([]byte(dumped))
	require.NoError(t, err)

	assert.Equal(t, raw.Version, reloaded.Version)
	assert.Equal(t, raw.Types, reloaded.Types)
	assert.Equal(t, raw.Structs, reloaded.Structs)
	assert.Equal(t, raw.Actions, reloaded.Actions)
	assert.Equal(t, raw.Tables, reloaded.Tables)
	assert.Equal(t, raw.RicardianClauses, reloaded.RicardianClauses)
	assert.Equal(t, raw.ErrorMessages, reloaded.ErrorMessages)
	assert.Equal(t, raw.ABIExtensions, reloaded.ABIExtensions)
}
