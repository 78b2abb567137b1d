package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

func TestNewContractResolvesAliasArrayOptional(t *testing.T) {
	raw := &abitypes.RawAbi{
		Version: abitypes.DefaultVersion,
		Types: []abitypes.TypeDef{
			{NewTypeName: "account_name", Type: "name"},
		},
		Structs: []abitypes.StructDef{
			{Name: "transfer", Fields: []abitypes.Field{
				{Name: "from", Type: "account_name"},
				{Name: "to", Type: "name"},
				{Name: "memo", Type: "string?"},
				{Name: "tags", Type: "string[]"},
			}},
		},
		Actions: []abitypes.ActionDef{
			{Name: "transfer", Type: "transfer"},
		},
	}

	c, err := NewContract(raw)
	require.NoError(t, err)

	alias, ok := c.ResolvedType("account_name")
	require.True(t, ok)
	assert.Equal(t, KindAliasType, alias.Kind)
	assert.Equal(t, "name", alias.AliasOf.Name)

	tr, ok := c.ResolvedType("transfer")
	require.True(t, ok)
	require.Len(t, tr.Fields, 4)
	assert.Equal(t, KindOptionalType, tr.Fields[2].Type.Kind)
	assert.Equal(t, KindArrayType, tr.Fields[3].Type.Kind)

	typeName, ok := c.ActionType("transfer")
	require.True(t, ok)
	assert.Equal(t, "transfer", typeName)
}

func TestNewContractStructBaseFlattening(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "base_row", Fields: []abitypes.Field{{Name: "id", Type: "uint64"}}},
			{Name: "derived_row", Base: "base_row", Fields: []abitypes.Field{{Name: "extra", Type: "string"}}},
		},
	}
	c, err := NewContract(raw)
	require.NoError(t, err)

	derived, ok := c.ResolvedType("derived_row")
	require.True(t, ok)
	require.Len(t, derived.Fields, 2)
	assert.Equal(t, "id", derived.Fields[0].Name)
	assert.Equal(t, "extra", derived.Fields[1].Name)
}

func TestNewContractRejectsNestedOptional(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "bad", Fields: []abitypes.Field{{Name: "x", Type: "uint64??"}}},
		},
	}
	_, err := NewContract(raw)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
}

func TestNewContractRejectsUnknownType(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "bad", Fields: []abitypes.Field{{Name: "x", Type: "not_a_real_type"}}},
		},
	}
	_, err := NewContract(raw)
	require.Error(t, err)
}

func TestNewContractRejectsDuplicateStruct(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "dup", Fields: []abitypes.Field{{Name: "x", Type: "uint64"}}},
			{Name: "dup", Fields: []abitypes.Field{{Name: "y", Type: "uint64"}}},
		},
	}
	_, err := NewContract(raw)
	require.Error(t, err)
}

func TestNewContractExtendedAssetBuiltIn(t *testing.T) {
	c, err := NewContract(&abitypes.RawAbi{})
	require.NoError(t, err)
	ea, ok := c.ResolvedType("extended_asset")
	require.True(t, ok)
	require.Len(t, ea.Fields, 2)
	assert.Equal(t, "quantity", ea.Fields[0].Name)
	assert.Equal(t, "contract", ea.Fields[1].Name)
}
