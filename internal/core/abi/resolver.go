package abi

import (
	"strings"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

const maxSchemaDepth = 32

// extendedAssetStruct is the implicit built-in named by the spec's
// built-in type set but not elaborated as a struct_def: {quantity: asset,
// contract: name}. It is registered into every contract unless the ABI
// document itself declares a struct by that name.
var extendedAssetStruct = abitypes.StructDef{
	Name: "extended_asset",
	Fields: []abitypes.Field{
		{Name: "quantity", Type: "asset"},
		{Name: "contract", Type: "name"},
	},
}

// resolveCtx holds the literal sources (C3 output) and the table of nodes
// resolved so far (C4's working state) for one NewContract call.
type resolveCtx struct {
	types     map[string]*AbiType
	aliasSrc  map[string]string
	structSrc map[string]*abitypes.StructDef
}

// NewContract builds the resolved type graph and action table from a
// loaded RawAbi (C4). The returned Contract is immutable once built.
func NewContract(raw *abitypes.RawAbi) (*Contract, error) {
	rc := &resolveCtx{
		types:     make(map[string]*AbiType),
		aliasSrc:  make(map[string]string),
		structSrc: make(map[string]*abitypes.StructDef),
	}

	for name, codec := range primitives {
		rc.types[name] = &AbiType{Name: name, Kind: KindPrimitiveType, Primitive: codec}
	}

	rc.structSrc["extended_asset"] = &extendedAssetStruct

	for i := range raw.Types {
		td := raw.Types[i]
		if _, exists := rc.types[td.NewTypeName]; exists {
			return nil, newErr(KindDuplicateType, "type %q already a built-in", td.NewTypeName)
		}
		if _, exists := rc.aliasSrc[td.NewTypeName]; exists {
			return nil, newErr(KindDuplicateType, "duplicate type_def %q", td.NewTypeName)
		}
		rc.aliasSrc[td.NewTypeName] = td.Type
	}
	for i := range raw.Structs {
		sd := &raw.Structs[i]
		if _, exists := rc.types[sd.Name]; exists {
			return nil, newErr(KindDuplicateType, "struct %q already a built-in", sd.Name)
		}
		if _, exists := rc.structSrc[sd.Name]; exists && sd.Name != "extended_asset" {
			return nil, newErr(KindDuplicateType, "duplicate struct_def %q", sd.Name)
		}
		rc.structSrc[sd.Name] = sd
	}

	for name := range rc.aliasSrc {
		if _, err := rc.resolve(name, 0); err != nil {
			return nil, err
		}
	}
	for name := range rc.structSrc {
		if _, err := rc.resolve(name, 0); err != nil {
			return nil, err
		}
	}

	actions := make(map[string]string, len(raw.Actions))
	for _, a := range raw.Actions {
		if _, err := rc.resolve(a.Type, 0); err != nil {
			return nil, newErr(KindUnknownType, "action %q: %v", a.Name, err)
		}
		actions[a.Name] = a.Type
	}

	return &Contract{types: rc.types, actions: actions, Raw: raw}, nil
}

// resolve returns the AbiType for name, chasing aliases to their non-alias
// terminal and synthesizing optional/array nodes for `T?`/`T[]` suffixes.
func (rc *resolveCtx) resolve(name string, depth int) (*AbiType, error) {
	if depth > maxSchemaDepth {
		return nil, newErr(KindRecursionLimit, "schema recursion exceeds %d while resolving %q", maxSchemaDepth, name)
	}

	if strings.HasSuffix(name, "?") {
		inner, err := rc.resolve(name[:len(name)-1], depth+1)
		if err != nil {
			return nil, err
		}
		if inner.Kind == KindOptionalType || inner.Kind == KindArrayType {
			return nil, newErr(KindNestedOptionalOrArray, "%q nests optional/array", name)
		}
		return &AbiType{Name: name, Kind: KindOptionalType, OptionalOf: inner}, nil
	}
	if strings.HasSuffix(name, "[]") {
		inner, err := rc.resolve(name[:len(name)-2], depth+1)
		if err != nil {
			return nil, err
		}
		if inner.Kind == KindOptionalType || inner.Kind == KindArrayType {
			return nil, newErr(KindNestedOptionalOrArray, "%q nests optional/array", name)
		}
		return &AbiType{Name: name, Kind: KindArrayType, ArrayOf: inner}, nil
	}

	if t, ok := rc.types[name]; ok {
		if t.Kind == KindStructType && !t.Filled {
			def := rc.structSrc[name]
			if err := rc.fillStruct(t, def, depth); err != nil {
				return nil, err
			}
		}
		return t.effective(), nil
	}

	if aliasOf, ok := rc.aliasSrc[name]; ok {
		target, err := rc.resolve(aliasOf, depth+1)
		if err != nil {
			return nil, err
		}
		node := &AbiType{Name: name, Kind: KindAliasType, AliasOf: target.effective()}
		rc.types[name] = node
		return node.effective(), nil
	}

	if def, ok := rc.structSrc[name]; ok {
		node := &AbiType{Name: name, Kind: KindStructType}
		rc.types[name] = node
		if err := rc.fillStruct(node, def, depth); err != nil {
			return nil, err
		}
		return node, nil
	}

	return nil, newErr(KindUnknownType, "unknown type %q", name)
}

// fillStruct is the one-time computation of a struct's flattened field
// list: the base's fields (recursively resolved), then the struct's own.
// Repeated calls on an already-filled node are a no-op, matching the
// spec's "filled exactly once" invariant.
func (rc *resolveCtx) fillStruct(node *AbiType, def *abitypes.StructDef, depth int) error {
	if node.Filled {
		return nil
	}
	var fields []FieldType
	if def.Base != "" {
		base, err := rc.resolve(def.Base, depth+1)
		if err != nil {
			return err
		}
		if base.Kind != KindStructType {
			return newErr(KindTypeMismatch, "base %q of %q is not a struct", def.Base, def.Name)
		}
		fields = append(fields, base.Fields...)
		node.Base = base
	}
	for _, f := range def.Fields {
		ft, err := rc.resolve(f.Type, depth+1)
		if err != nil {
			return err
		}
		fields = append(fields, FieldType{Name: f.Name, Type: ft})
	}
	node.Fields = fields
	node.Filled = true
	return nil
}
