package abi

import "github.com/ledgerabi/abicodec/pkg/abitypes"

// Kind classifies an AbiType node. Exactly one of the kind-specific fields
// on AbiType is meaningful for a given Kind.
type Kind int

const (
	KindPrimitiveType Kind = iota
	KindAliasType
	KindOptionalType
	KindArrayType
	KindStructType
)

// PrimitiveCodec is the leaf codec pair for one built-in type (C1). It is
// registered once per type name into the global primitive table.
type PrimitiveCodec struct {
	Name   string
	Encode func(enc *jsonEncoder, ev Event) error
	Decode func(dec *binDecoder, w *jsonWriter) error
}

// FieldType is one flattened struct member: its declared name and its
// resolved type.
type FieldType struct {
	Name string
	Type *AbiType
}

// AbiType is a resolved node in the type graph. Nodes are created once by
// the resolver and never mutated afterward, except for the one-time struct
// fill described by Filled.
type AbiType struct {
	Name string
	Kind Kind

	Primitive *PrimitiveCodec // KindPrimitiveType
	AliasOf   *AbiType        // KindAliasType, always a non-alias terminal
	OptionalOf *AbiType       // KindOptionalType
	ArrayOf    *AbiType       // KindArrayType

	Base   *AbiType    // KindStructType, nil if no base
	Fields []FieldType // KindStructType, flattened (base fields first)
	Filled bool        // KindStructType: true once Fields has been computed
}

// effective strips one layer of indirection for kinds that are never
// dispatched on directly by the engines (alias is always chased away by
// the resolver before a node is handed to C5/C6, so this mainly documents
// the invariant rather than doing real work at call sites).
func (t *AbiType) effective() *AbiType {
	for t.Kind == KindAliasType {
		t = t.AliasOf
	}
	return t
}

// Contract is the post-resolution artifact: a read-only mapping from type
// name to AbiType plus the action-name → type-name table. It also carries
// the literal, never-codec'd records (tables, ricardian clauses, error
// messages, abi_extensions) so callers can introspect a loaded ABI beyond
// what the binary/JSON engines ever touch.
type Contract struct {
	types   map[string]*AbiType
	actions map[string]string

	// Raw carries the literal passthrough records (tables, ricardian
	// clauses, error messages, abi_extensions, action ricardian contracts)
	// that never participate in binary codec logic but are still part of
	// a loaded ABI document.
	Raw *abitypes.RawAbi
}

// ActionType returns the type name declared for action, and whether it
// was found — mirrors contract.action_type(action_name) from the spec's
// external-interface table.
func (c *Contract) ActionType(action string) (string, bool) {
	t, ok := c.actions[action]
	return t, ok
}

// ResolvedType returns the AbiType stored for name: built-ins, declared
// structs, and declared aliases (as their alias node). Synthesized `T?`/`T[]`
// nodes are not stored, so they are not found here.
func (c *Contract) ResolvedType(name string) (*AbiType, bool) {
	t, ok := c.types[name]
	return t, ok
}
