package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

func TestValidateCleanDocument(t *testing.T) {
	raw := &abitypes.RawAbi{
		Version: abitypes.DefaultVersion,
		Structs: []abitypes.StructDef{
			{Name: "transfer", Fields: []abitypes.Field{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
				{Name: "quantity", Type: "asset"},
			}},
		},
		Actions: []abitypes.ActionDef{{Name: "transfer", Type: "transfer"}},
	}
	assert.Empty(t, Validate(raw))
}

func TestValidateDuplicateStructName(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "dup", Fields: []abitypes.Field{{Name: "a", Type: "uint64"}}},
			{Name: "dup", Fields: []abitypes.Field{{Name: "b", Type: "uint64"}}},
		},
	}
	issues := Validate(raw)
	assert.NotEmpty(t, issues)
	found := false
	for _, iss := range issues {
		if iss.Rule == "duplicate_struct_name" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateDuplicateFieldName(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{
			{Name: "S", Fields: []abitypes.Field{
				{Name: "a", Type: "uint64"},
				{Name: "a", Type: "uint32"},
			}},
		},
	}
	issues := Validate(raw)
	var found bool
	for _, iss := range issues {
		if iss.Rule == "duplicate_field_name" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateUnknownBase(t *testing.T) {
	raw := &abitypes.RawAbi{
		Version: abitypes.DefaultVersion,
		Structs: []abitypes.StructDef{
			{Name: "S", Base: "does_not_exist", Fields: []abitypes.Field{{Name: "a", Type: "uint64"}}},
		},
	}
	issues := Validate(raw)
	require.NotEmpty(t, issues)
	assert.Equal(t, "unknown_base", issues[0].Rule)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestValidateUnknownActionTypeIsWarning(t *testing.T) {
	raw := &abitypes.RawAbi{
		Version: abitypes.DefaultVersion,
		Actions: []abitypes.ActionDef{{Name: "noop", Type: "ghost"}},
	}
	issues := Validate(raw)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
}

func TestValidateTableKeyLengthMismatch(t *testing.T) {
	raw := &abitypes.RawAbi{
		Structs: []abitypes.StructDef{{Name: "row", Fields: []abitypes.Field{{Name: "id", Type: "uint64"}}}},
		Tables: []abitypes.TableDef{{
			Name: "accounts", Type: "row",
			KeyNames: []string{"id"}, KeyTypes: []string{"uint64", "uint64"},
		}},
	}
	issues := Validate(raw)
	var found bool
	for _, iss := range issues {
		if iss.Rule == "key_length_mismatch" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateMissingVersionIsWarning(t *testing.T) {
	issues := Validate(&abitypes.RawAbi{})
	var found bool
	for _, iss := range issues {
		if iss.Rule == "version_required" {
			found = true
			assert.Equal(t, SeverityWarning, iss.Severity)
		}
	}
	assert.True(t, found)
}
