package abi

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/ledgerabi/abicodec/pkg/abitypes"
)

// Package native.go is C7: the reflection-free facility that loads a
// RawAbi from JSON (and dumps one back), used because there is no Contract
// yet to drive the generic C5/C6 engine with. Each aggregate type exposes
// its fields as a map of field name to a closure that reads that field's
// value off the token stream, so JSON keys are matched by name in any
// order (DumpRawAbi writes them in a fixed order) — a data-driven stand-in for the
// source's template-based field walk (see Design Notes).
//
// Unknown fields are rejected (KindUnknownField), matching the source's
// behavior rather than silently skipping forward-compatible extensions —
// documented as the resolved open question on native-decode field policy.

type fieldSetter func(pump *tokenPump) error

func decodeObject(pump *tokenPump, setters map[string]fieldSetter) error {
	ev, err := pump.Next()
	if err != nil {
		return err
	}
	if ev.Kind != EvStartObject {
		return newErr(KindTypeMismatch, "expected object")
	}
	for {
		ev, err := pump.Next()
		if err != nil {
			return err
		}
		if ev.Kind == EvEndObject {
			return nil
		}
		if ev.Kind != EvKey {
			return newErr(KindParseError, "expected object key")
		}
		setter, ok := setters[ev.Str]
		if !ok {
			return newErr(KindUnknownField, "unknown field %q", ev.Str)
		}
		if err := setter(pump); err != nil {
			return err
		}
	}
}

func decodeArray[T any](pump *tokenPump, elemDecode func(*tokenPump) (T, error)) ([]T, error) {
	first, err := pump.Next()
	if err != nil {
		return nil, err
	}
	if first.Kind != EvStartArray {
		return nil, newErr(KindTypeMismatch, "expected array")
	}
	var out []T
	for {
		ev, err := pump.Next()
		if err != nil {
			return nil, err
		}
		if ev.Kind == EvEndArray {
			return out, nil
		}
		pump.pushBack(ev)
		v, err := elemDecode(pump)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func decodeStringElem(pump *tokenPump) (string, error) {
	ev, err := pump.Next()
	if err != nil {
		return "", err
	}
	if ev.Kind != EvString {
		return "", newErr(KindTypeMismatch, "expected string")
	}
	return ev.Str, nil
}

func decodeUint64Elem(pump *tokenPump) (uint64, error) {
	ev, err := pump.Next()
	if err != nil {
		return 0, err
	}
	if ev.Kind != EvString {
		return 0, newErr(KindTypeMismatch, "expected numeric value")
	}
	v, err := strconv.ParseUint(ev.Str, 10, 64)
	if err != nil {
		return 0, newErr(KindOutOfRange, "bad uint64 %q", ev.Str)
	}
	return v, nil
}

func setString(dst *string) fieldSetter {
	return func(pump *tokenPump) error {
		s, err := decodeStringElem(pump)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}
}

func setStringArray(dst *[]string) fieldSetter {
	return func(pump *tokenPump) error {
		v, err := decodeArray(pump, decodeStringElem)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func decodeField(pump *tokenPump) (abitypes.Field, error) {
	var f abitypes.Field
	err := decodeObject(pump, map[string]fieldSetter{
		"name": setString(&f.Name),
		"type": setString(&f.Type),
	})
	return f, err
}

func decodeTypeDef(pump *tokenPump) (abitypes.TypeDef, error) {
	var td abitypes.TypeDef
	err := decodeObject(pump, map[string]fieldSetter{
		"new_type_name": setString(&td.NewTypeName),
		"type":          setString(&td.Type),
	})
	return td, err
}

func decodeStructDef(pump *tokenPump) (abitypes.StructDef, error) {
	var sd abitypes.StructDef
	err := decodeObject(pump, map[string]fieldSetter{
		"name": setString(&sd.Name),
		"base": setString(&sd.Base),
		"fields": func(p *tokenPump) error {
			fs, err := decodeArray(p, decodeField)
			if err != nil {
				return err
			}
			sd.Fields = fs
			return nil
		},
	})
	return sd, err
}

func decodeActionDef(pump *tokenPump) (abitypes.ActionDef, error) {
	var ad abitypes.ActionDef
	err := decodeObject(pump, map[string]fieldSetter{
		"name":               setString(&ad.Name),
		"type":               setString(&ad.Type),
		"ricardian_contract": setString(&ad.RicardianContract),
	})
	return ad, err
}

func decodeTableDef(pump *tokenPump) (abitypes.TableDef, error) {
	var td abitypes.TableDef
	err := decodeObject(pump, map[string]fieldSetter{
		"name":       setString(&td.Name),
		"index_type": setString(&td.IndexType),
		"type":       setString(&td.Type),
		"key_names":  setStringArray(&td.KeyNames),
		"key_types":  setStringArray(&td.KeyTypes),
	})
	return td, err
}

func decodeClausePair(pump *tokenPump) (abitypes.ClausePair, error) {
	var cp abitypes.ClausePair
	err := decodeObject(pump, map[string]fieldSetter{
		"id":   setString(&cp.ID),
		"body": setString(&cp.Body),
	})
	return cp, err
}

func decodeErrorMessage(pump *tokenPump) (abitypes.ErrorMessage, error) {
	var em abitypes.ErrorMessage
	err := decodeObject(pump, map[string]fieldSetter{
		"error_code": func(p *tokenPump) error {
			v, err := decodeUint64Elem(p)
			if err != nil {
				return err
			}
			em.ErrorCode = v
			return nil
		},
		"error_msg": setString(&em.ErrorMsg),
	})
	return em, err
}

// decodeExtensionPair decodes one `[uint16, hex_bytes]` entry of
// abi_extensions. This fully implements the pair-in-JSON path the source
// leaves unimplemented (see Design Notes): it is a bare two-element JSON
// array, not an object.
func decodeExtensionPair(pump *tokenPump) (abitypes.ExtensionPair, error) {
	var ep abitypes.ExtensionPair
	ev, err := pump.Next()
	if err != nil {
		return ep, err
	}
	if ev.Kind != EvStartArray {
		return ep, newErr(KindTypeMismatch, "expected [type, data] pair")
	}
	tagEv, err := pump.Next()
	if err != nil {
		return ep, err
	}
	if tagEv.Kind != EvString {
		return ep, newErr(KindTypeMismatch, "expected numeric extension type")
	}
	tag, err := strconv.ParseUint(tagEv.Str, 10, 16)
	if err != nil {
		return ep, newErr(KindOutOfRange, "bad extension type %q", tagEv.Str)
	}
	dataEv, err := pump.Next()
	if err != nil {
		return ep, err
	}
	if dataEv.Kind != EvString {
		return ep, newErr(KindTypeMismatch, "expected hex extension data")
	}
	data, err := hex.DecodeString(dataEv.Str)
	if err != nil {
		return ep, newErr(KindOutOfRange, "bad hex in extension data: %v", err)
	}
	endEv, err := pump.Next()
	if err != nil {
		return ep, err
	}
	if endEv.Kind != EvEndArray {
		return ep, newErr(KindParseError, "extension pair has more than 2 elements")
	}
	ep.Type, ep.Data = uint16(tag), data
	return ep, nil
}

// LoadRawAbi parses an ABI JSON document into a RawAbi (C3, built on C7).
func LoadRawAbi(jsonText []byte) (*abitypes.RawAbi, error) {
	pump := newTokenPump(bytes.NewReader(jsonText))
	raw := &abitypes.RawAbi{Version: abitypes.DefaultVersion}
	err := decodeObject(pump, map[string]fieldSetter{
		"version": setString(&raw.Version),
		"types": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeTypeDef)
			if err != nil {
				return err
			}
			raw.Types = v
			return nil
		},
		"structs": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeStructDef)
			if err != nil {
				return err
			}
			raw.Structs = v
			return nil
		},
		"actions": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeActionDef)
			if err != nil {
				return err
			}
			raw.Actions = v
			return nil
		},
		"tables": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeTableDef)
			if err != nil {
				return err
			}
			raw.Tables = v
			return nil
		},
		"ricardian_clauses": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeClausePair)
			if err != nil {
				return err
			}
			raw.RicardianClauses = v
			return nil
		},
		"error_messages": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeErrorMessage)
			if err != nil {
				return err
			}
			raw.ErrorMessages = v
			return nil
		},
		"abi_extensions": func(p *tokenPump) error {
			v, err := decodeArray(p, decodeExtensionPair)
			if err != nil {
				return err
			}
			raw.ABIExtensions = v
			return nil
		},
	})
	if err != nil {
		return nil, wrapErr(KindParseError, err)
	}
	return raw, nil
}

// DumpRawAbi is the symmetric inverse of LoadRawAbi.
func DumpRawAbi(raw *abitypes.RawAbi) string {
	w := newJSONWriter()
	w.StartObject()

	w.WriteKey("version")
	w.WriteString(raw.Version)

	w.WriteKey("types")
	w.StartArray()
	for _, td := range raw.Types {
		w.StartObject()
		w.WriteKey("new_type_name")
		w.WriteString(td.NewTypeName)
		w.WriteKey("type")
		w.WriteString(td.Type)
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("structs")
	w.StartArray()
	for _, sd := range raw.Structs {
		w.StartObject()
		w.WriteKey("name")
		w.WriteString(sd.Name)
		w.WriteKey("base")
		w.WriteString(sd.Base)
		w.WriteKey("fields")
		w.StartArray()
		for _, f := range sd.Fields {
			w.StartObject()
			w.WriteKey("name")
			w.WriteString(f.Name)
			w.WriteKey("type")
			w.WriteString(f.Type)
			w.EndObject()
		}
		w.EndArray()
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("actions")
	w.StartArray()
	for _, ad := range raw.Actions {
		w.StartObject()
		w.WriteKey("name")
		w.WriteString(ad.Name)
		w.WriteKey("type")
		w.WriteString(ad.Type)
		w.WriteKey("ricardian_contract")
		w.WriteString(ad.RicardianContract)
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("tables")
	w.StartArray()
	for _, td := range raw.Tables {
		w.StartObject()
		w.WriteKey("name")
		w.WriteString(td.Name)
		w.WriteKey("index_type")
		w.WriteString(td.IndexType)
		w.WriteKey("key_names")
		w.StartArray()
		for _, k := range td.KeyNames {
			w.WriteString(k)
		}
		w.EndArray()
		w.WriteKey("key_types")
		w.StartArray()
		for _, k := range td.KeyTypes {
			w.WriteString(k)
		}
		w.EndArray()
		w.WriteKey("type")
		w.WriteString(td.Type)
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("ricardian_clauses")
	w.StartArray()
	for _, cp := range raw.RicardianClauses {
		w.StartObject()
		w.WriteKey("id")
		w.WriteString(cp.ID)
		w.WriteKey("body")
		w.WriteString(cp.Body)
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("error_messages")
	w.StartArray()
	for _, em := range raw.ErrorMessages {
		w.StartObject()
		w.WriteKey("error_code")
		w.WriteString(strconv.FormatUint(em.ErrorCode, 10))
		w.WriteKey("error_msg")
		w.WriteString(em.ErrorMsg)
		w.EndObject()
	}
	w.EndArray()

	w.WriteKey("abi_extensions")
	w.StartArray()
	for _, ep := range raw.ABIExtensions {
		w.StartArray()
		w.WriteRawNumber(strconv.FormatUint(uint64(ep.Type), 10))
		w.WriteString(hex.EncodeToString(ep.Data))
		w.EndArray()
	}
	w.EndArray()

	w.EndObject()
	return w.String()
}
