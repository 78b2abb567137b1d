package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManagerABI = `{
	"version": "eosio::abi/1.0",
	"types": [],
	"structs": [
		{"name": "S", "base": "", "fields": [{"name": "a", "type": "uint32"}]}
	],
	"actions": [],
	"tables": [],
	"ricardian_clauses": [],
	"error_messages": [],
	"abi_extensions": []
}`

func TestManagerLoadAndEncodeDecode(t *testing.T) {
	m := NewManager(nil, nil)

	_, err := m.LoadContract("token", []byte(testManagerABI))
	require.NoError(t, err)

	bin, err := m.EncodeJSON("token", "S", []byte(`{"a": 42}`))
	require.NoError(t, err)

	text, err := m.DecodeBinary("token", "S", bin)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":42}`, text)
}

func TestManagerUnregisteredContract(t *testing.T) {
	m := NewManager(nil, nil)
	_, err := m.EncodeJSON("missing", "S", []byte(`{}`))
	require.Error(t, err)
}

func TestManagerForget(t *testing.T) {
	m := NewManager(nil, nil)
	_, err := m.LoadContract("token", []byte(testManagerABI))
	require.NoError(t, err)

	_, ok := m.Contract("token")
	require.True(t, ok)

	m.Forget("token")
	_, ok = m.Contract("token")
	assert.False(t, ok)
}

func TestManagerEvictsLeastRecentlyTouched(t *testing.T) {
	m := NewManager(&ManagerConfig{MaxCachedContracts: 2}, nil)

	_, err := m.LoadContract("a", []byte(testManagerABI))
	require.NoError(t, err)
	_, err = m.LoadContract("b", []byte(testManagerABI))
	require.NoError(t, err)

	// touching "a" makes "b" the least recently used.
	_, ok := m.Contract("a")
	require.True(t, ok)

	_, err = m.LoadContract("c", []byte(testManagerABI))
	require.NoError(t, err)

	_, ok = m.Contract("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = m.Contract("a")
	assert.True(t, ok)
	_, ok = m.Contract("c")
	assert.True(t, ok)
}

func TestManagerStatsTracksCallsAndErrors(t *testing.T) {
	m := NewManager(nil, nil)
	_, err := m.LoadContract("token", []byte(testManagerABI))
	require.NoError(t, err)

	_, _ = m.EncodeJSON("token", "S", []byte(`{"a": 1}`))
	_, _ = m.EncodeJSON("missing", "S", []byte(`{}`))

	snap := m.Stats()
	assert.Equal(t, uint64(2), snap["calls"]["encode"])
	assert.Equal(t, uint64(1), snap["errors"]["encode"])
}
