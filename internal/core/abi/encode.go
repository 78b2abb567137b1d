package abi

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

const maxDispatchDepth = 128

type frameKind int

const (
	frameStruct frameKind = iota
	frameArray
)

// encFrame is one open composite on the encoder's work stack: a struct
// waiting for its next key/value pair, or an array waiting for its next
// element (or end_array).
type encFrame struct {
	kind frameKind
	typ  *AbiType

	// struct
	pos           int
	awaitingValue bool

	// array
	count  int
	insIdx int
}

// sizeInsertion records where an array's varuint32 length prefix belongs;
// it is spliced into bin once the array's element count is known.
type sizeInsertion struct {
	offset int
	count  uint32
}

type jsonEncoder struct {
	bin            []byte
	stack          []encFrame
	sizeInsertions []sizeInsertion
}

func (enc *jsonEncoder) push(f encFrame) error {
	if len(enc.stack) >= maxDispatchDepth {
		return newErr(KindRecursionLimit, "encode dispatch exceeds %d frames", maxDispatchDepth)
	}
	enc.stack = append(enc.stack, f)
	return nil
}

// consumeValue dispatches one JSON event against the expected type t. For
// primitives it encodes immediately and returns; for optional it may
// recurse once into the inner type; for struct/array it pushes a new frame
// and returns, leaving the body to later events.
func (enc *jsonEncoder) consumeValue(t *AbiType, ev Event) error {
	switch t.Kind {
	case KindOptionalType:
		if ev.Kind == EvNull {
			enc.bin = append(enc.bin, 0x00)
			return nil
		}
		enc.bin = append(enc.bin, 0x01)
		return enc.consumeValue(t.OptionalOf, ev)
	case KindArrayType:
		if ev.Kind != EvStartArray {
			return newErr(KindTypeMismatch, "expected array for %q", t.Name)
		}
		idx := len(enc.sizeInsertions)
		enc.sizeInsertions = append(enc.sizeInsertions, sizeInsertion{offset: len(enc.bin)})
		return enc.push(encFrame{kind: frameArray, typ: t, insIdx: idx})
	case KindStructType:
		if ev.Kind != EvStartObject {
			return newErr(KindTypeMismatch, "expected object for %q", t.Name)
		}
		return enc.push(encFrame{kind: frameStruct, typ: t, pos: -1})
	case KindPrimitiveType:
		return t.Primitive.Encode(enc, ev)
	default:
		return newErr(KindTypeMismatch, "unresolved type %q", t.Name)
	}
}

// dispatchToTop routes ev to the frame currently on top of the stack,
// possibly pushing a new frame (via consumeValue) or popping the current
// one (on end_object/end_array).
func (enc *jsonEncoder) dispatchToTop(ev Event) error {
	top := &enc.stack[len(enc.stack)-1]
	switch top.kind {
	case frameStruct:
		if !top.awaitingValue {
			switch ev.Kind {
			case EvEndObject:
				if top.pos+1 != len(top.typ.Fields) {
					return newErr(KindMissingField, "missing field(s) after %q", fieldNameAt(top))
				}
				enc.stack = enc.stack[:len(enc.stack)-1]
				return nil
			case EvKey:
				next := top.pos + 1
				if next >= len(top.typ.Fields) || top.typ.Fields[next].Name != ev.Str {
					return newErr(KindUnknownField, "unexpected key %q", ev.Str)
				}
				top.pos = next
				top.awaitingValue = true
				return nil
			default:
				return newErr(KindTypeMismatch, "expected key or end of object")
			}
		}
		top.awaitingValue = false
		return enc.consumeValue(top.typ.Fields[top.pos].Type, ev)
	case frameArray:
		if ev.Kind == EvEndArray {
			enc.sizeInsertions[top.insIdx].count = uint32(top.count)
			enc.stack = enc.stack[:len(enc.stack)-1]
			return nil
		}
		top.count++
		return enc.consumeValue(top.typ.ArrayOf, ev)
	default:
		return newErr(KindTypeMismatch, "corrupt encoder state")
	}
}

func fieldNameAt(f *encFrame) string {
	if f.pos >= 0 && f.pos < len(f.typ.Fields) {
		return f.typ.Fields[f.pos].Name
	}
	return f.typ.Name
}

// emit splices the recorded size insertions into bin, in ascending offset
// order, producing the final byte buffer.
func (enc *jsonEncoder) emit() []byte {
	sort.Slice(enc.sizeInsertions, func(i, j int) bool {
		return enc.sizeInsertions[i].offset < enc.sizeInsertions[j].offset
	})
	out := make([]byte, 0, len(enc.bin)+5*len(enc.sizeInsertions))
	prev := 0
	for _, ins := range enc.sizeInsertions {
		out = append(out, enc.bin[prev:ins.offset]...)
		out = EncodeVaruint32(out, ins.count)
		prev = ins.offset
	}
	out = append(out, enc.bin[prev:]...)
	return out
}

// buildErrorPath walks the encoder's stack (C8) to annotate a failure with
// the schema path at which it occurred.
func buildErrorPath(rootName string, stack []encFrame) string {
	pb := newPathBuilder(rootName)
	for _, f := range stack {
		switch f.kind {
		case frameStruct:
			if f.pos >= 0 && f.pos < len(f.typ.Fields) {
				pb.pushField(f.typ.Fields[f.pos].Name)
			}
		case frameArray:
			idx := f.count - 1
			if idx < 0 {
				idx = 0
			}
			pb.pushIndex(idx)
		}
	}
	return pb.String()
}

// lookupRootType finds typeName in contract for C5/C6, chasing an alias to
// its terminal and building the array/optional node for a trailing `[]`/`?`
// over a type the contract holds.
func lookupRootType(contract *Contract, typeName string) (*AbiType, error) {
	if t, ok := contract.types[typeName]; ok {
		return t.effective(), nil
	}
	if inner, ok := contract.types[strings.TrimSuffix(typeName, "[]")]; ok && strings.HasSuffix(typeName, "[]") {
		return &AbiType{Name: typeName, Kind: KindArrayType, ArrayOf: inner.effective()}, nil
	}
	if inner, ok := contract.types[strings.TrimSuffix(typeName, "?")]; ok && strings.HasSuffix(typeName, "?") {
		return &AbiType{Name: typeName, Kind: KindOptionalType, OptionalOf: inner.effective()}, nil
	}
	return nil, newErr(KindUnknownType, "unknown type %q", typeName)
}

// JSONToBin encodes json under the named type using contract's resolved
// schema (C5's public entry point).
func JSONToBin(contract *Contract, typeName string, json []byte) ([]byte, error) {
	rootType, err := lookupRootType(contract, typeName)
	if err != nil {
		return nil, err
	}

	pump := newTokenPump(bytes.NewReader(json))
	enc := &jsonEncoder{}

	first := true
	for {
		if !first && len(enc.stack) == 0 {
			break
		}
		ev, err := pump.Next()
		if err != nil {
			if err == io.EOF {
				if len(enc.stack) != 0 {
					return nil, fmt.Errorf("%s: unexpected end of json", typeName)
				}
				break
			}
			return nil, withPath(newErr(KindParseError, "%v", err), buildErrorPath(typeName, enc.stack))
		}

		if len(enc.stack) == 0 {
			if err := enc.consumeValue(rootType, ev); err != nil {
				return nil, withPath(err, typeName)
			}
		} else {
			if err := enc.dispatchToTop(ev); err != nil {
				return nil, withPath(err, buildErrorPath(typeName, enc.stack))
			}
		}
		first = false
	}

	return enc.emit(), nil
}
