package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleABI = `{
	"version": "eosio::abi/1.0",
	"types": [{"new_type_name": "account_name", "type": "name"}],
	"structs": [
		{"name": "transfer", "base": "", "fields": [
			{"name": "from", "type": "account_name"},
			{"name": "to", "type": "name"},
			{"name": "quantity", "type": "asset"},
			{"name": "memo", "type": "string"}
		]}
	],
	"actions": [{"name": "transfer", "type": "transfer", "ricardian_contract": ""}],
	"tables": [],
	"ricardian_clauses": [],
	"error_messages": [],
	"abi_extensions": []
}`

func TestLoadAndActionType(t *testing.T) {
	contract, err := Load([]byte(sampleABI))
	require.NoError(t, err)

	typeName, ok := ActionType(contract, "transfer")
	require.True(t, ok)
	assert.Equal(t, "transfer", typeName)
}

func TestJSONToBinAndBack(t *testing.T) {
	contract, err := Load([]byte(sampleABI))
	require.NoError(t, err)

	in := `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"hi"}`
	bin, err := JSONToBin(contract, "transfer", []byte(in))
	require.NoError(t, err)

	out, err := BinToJSON(contract, "transfer", bin)
	require.NoError(t, err)
	assert.JSONEq(t, in, out)
}

func TestStringToNameFacade(t *testing.T) {
	v, err := StringToName("eosio.token")
	require.NoError(t, err)
	assert.Equal(t, "eosio.token", NameToString(v))
}

func TestValidateFacadeFindsDanglingReference(t *testing.T) {
	raw, err := LoadRaw([]byte(`{
		"version": "eosio::abi/1.0",
		"types": [], "structs": [],
		"actions": [{"name": "noop", "type": "ghost", "ricardian_contract": ""}],
		"tables": [], "ricardian_clauses": [], "error_messages": [], "abi_extensions": []
	}`))
	require.NoError(t, err)

	issues := Validate(raw)
	require.Len(t, issues, 1)
	assert.Equal(t, "unknown_action_type", issues[0].Rule)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
}

func TestDumpRoundTrip(t *testing.T) {
	contract, err := Load([]byte(sampleABI))
	require.NoError(t, err)

	dumped := Dump(contract)
	reloaded, err := Load([]byte(dumped))
	require.NoError(t, err)

	_, ok := ActionType(reloaded, "transfer")
	assert.True(t, ok)
}

func TestVaruint32SpecVector(t *testing.T) {
	contract, err := Load([]byte(sampleABI))
	require.NoError(t, err)

	bin, err := JSONToBin(contract, "varuint32", []byte(`3735928559`))
	require.NoError(t, err)
	assert.Equal(t, "effdb6f50d", hex.EncodeToString(bin))
}
