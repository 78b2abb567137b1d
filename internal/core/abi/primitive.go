package abi

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/ledgerabi/abicodec/internal/core/abi/decimal"
)

// primitives is the closed table of built-in leaf codecs (C1), keyed by
// their ABI type name. It is populated once by buildPrimitives and never
// mutated afterward.
var primitives = buildPrimitives()

func buildPrimitives() map[string]*PrimitiveCodec {
	m := make(map[string]*PrimitiveCodec)
	reg := func(c *PrimitiveCodec) { m[c.Name] = c }

	reg(boolCodec())
	for _, w := range []intWidth{
		{"int8", 1, true}, {"uint8", 1, false},
		{"int16", 2, true}, {"uint16", 2, false},
		{"int32", 4, true}, {"uint32", 4, false},
		{"int64", 8, true}, {"uint64", 8, false},
	} {
		reg(intCodec(w))
	}
	reg(varuint32Codec())
	reg(varint32Codec())
	reg(floatCodec("float32", 4))
	reg(floatCodec("float64", 8))
	reg(fixedBinaryCodec("float128", 16))
	reg(fixedBinaryCodec("checksum160", 20))
	reg(fixedBinaryCodec("checksum256", 32))
	reg(fixedBinaryCodec("checksum512", 64))
	reg(stringCodec())
	reg(bytesCodec())
	reg(uint128Codec())
	reg(int128Codec())
	reg(nameCodec())
	reg(symbolCodeCodec())
	reg(symbolCodec())
	reg(assetCodec())
	reg(timePointSecCodec())
	reg(timePointCodec())
	reg(blockTimestampCodec())
	reg(publicKeyCodec())
	reg(privateKeyCodec())
	reg(signatureCodec())
	return m
}

// lookupPrimitive returns the registered codec for name, or nil.
func lookupPrimitive(name string) *PrimitiveCodec { return primitives[name] }

// --- generic helpers ------------------------------------------------------

func eventToInt64(ev Event) (int64, error) {
	switch ev.Kind {
	case EvBool:
		if ev.Bool {
			return 1, nil
		}
		return 0, nil
	case EvString:
		v, err := strconv.ParseInt(ev.Str, 10, 64)
		if err != nil {
			return 0, newErr(KindOutOfRange, "not an integer: %q", ev.Str)
		}
		return v, nil
	default:
		return 0, newErr(KindTypeMismatch, "expected bool or numeric string")
	}
}

func eventToUint64(ev Event) (uint64, error) {
	switch ev.Kind {
	case EvBool:
		if ev.Bool {
			return 1, nil
		}
		return 0, nil
	case EvString:
		v, err := strconv.ParseUint(ev.Str, 10, 64)
		if err != nil {
			return 0, newErr(KindOutOfRange, "not an unsigned integer: %q", ev.Str)
		}
		return v, nil
	default:
		return 0, newErr(KindTypeMismatch, "expected bool or numeric string")
	}
}

func eventToFloat64(ev Event) (float64, error) {
	switch ev.Kind {
	case EvBool:
		if ev.Bool {
			return 1, nil
		}
		return 0, nil
	case EvString:
		v, err := strconv.ParseFloat(ev.Str, 64)
		if err != nil {
			return 0, newErr(KindOutOfRange, "not a float: %q", ev.Str)
		}
		return v, nil
	default:
		return 0, newErr(KindTypeMismatch, "expected bool or numeric string")
	}
}

// --- bool ------------------------------------------------------------------

func boolCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "bool",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvBool {
				return newErr(KindTypeMismatch, "expected bool")
			}
			if ev.Bool {
				enc.bin = append(enc.bin, 1)
			} else {
				enc.bin = append(enc.bin, 0)
			}
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readByte()
			if err != nil {
				return err
			}
			if b != 0 && b != 1 {
				return newErr(KindTypeMismatch, "invalid bool byte %d", b)
			}
			w.WriteBool(b == 1)
			return nil
		},
	}
}

// --- fixed-width integers ---------------------------------------------------

type intWidth struct {
	name   string
	bytes  int
	signed bool
}

func intCodec(w intWidth) *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: w.name,
		Encode: func(enc *jsonEncoder, ev Event) error {
			buf := make([]byte, w.bytes)
			if w.signed {
				v, err := eventToInt64(ev)
				if err != nil {
					return err
				}
				if !signedFits(v, w.bytes) {
					return newErr(KindOutOfRange, "%d does not fit in %s", v, w.name)
				}
				putIntLE(buf, v)
			} else {
				v, err := eventToUint64(ev)
				if err != nil {
					return err
				}
				if !unsignedFits(v, w.bytes) {
					return newErr(KindOutOfRange, "%d does not fit in %s", v, w.name)
				}
				putUintLE(buf, v)
			}
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, jw *jsonWriter) error {
			b, err := dec.readN(w.bytes)
			if err != nil {
				return err
			}
			if w.signed {
				v := getIntLE(b, w.bytes)
				emitInt(jw, v, w.bytes)
			} else {
				v := getUintLE(b, w.bytes)
				emitUint(jw, v, w.bytes)
			}
			return nil
		},
	}
}

func putUintLE(buf []byte, v uint64) {
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
}
func putIntLE(buf []byte, v int64) { putUintLE(buf, uint64(v)) }

func getUintLE(b []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func getIntLE(b []byte, n int) int64 {
	v := getUintLE(b, n)
	// sign-extend from n bytes to 64 bits
	shift := uint(64 - 8*n)
	return int64(v<<shift) >> shift
}

func signedFits(v int64, n int) bool {
	if n == 8 {
		return true
	}
	bits := uint(8 * n)
	min := -(int64(1) << (bits - 1))
	max := (int64(1) << (bits - 1)) - 1
	return v >= min && v <= max
}

func unsignedFits(v uint64, n int) bool {
	if n == 8 {
		return true
	}
	bits := uint(8 * n)
	max := (uint64(1) << bits) - 1
	return v <= max
}

// emitInt/emitUint follow the spec's string-numeric policy: 64-bit values
// are emitted as JSON strings, everything smaller as JSON numbers.
func emitInt(w *jsonWriter, v int64, n int) {
	if n == 8 {
		w.WriteString(strconv.FormatInt(v, 10))
		return
	}
	w.WriteRawNumber(strconv.FormatInt(v, 10))
}

func emitUint(w *jsonWriter, v uint64, n int) {
	if n == 8 {
		w.WriteString(strconv.FormatUint(v, 10))
		return
	}
	w.WriteRawNumber(strconv.FormatUint(v, 10))
}

// --- varuint32 / varint32 ---------------------------------------------------

func varuint32Codec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "varuint32",
		Encode: func(enc *jsonEncoder, ev Event) error {
			v, err := eventToUint64(ev)
			if err != nil {
				return err
			}
			if v > math.MaxUint32 {
				return newErr(KindOutOfRange, "%d does not fit in varuint32", v)
			}
			enc.bin = EncodeVaruint32(enc.bin, uint32(v))
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			v, err := dec.readVaruint32()
			if err != nil {
				return err
			}
			w.WriteRawNumber(strconv.FormatUint(uint64(v), 10))
			return nil
		},
	}
}

func varint32Codec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "varint32",
		Encode: func(enc *jsonEncoder, ev Event) error {
			v, err := eventToInt64(ev)
			if err != nil {
				return err
			}
			if v > math.MaxInt32 || v < math.MinInt32 {
				return newErr(KindOutOfRange, "%d does not fit in varint32", v)
			}
			enc.bin = EncodeVarint32(enc.bin, int32(v))
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			v, err := dec.readVarint32()
			if err != nil {
				return err
			}
			w.WriteRawNumber(strconv.FormatInt(int64(v), 10))
			return nil
		},
	}
}

// --- floats ------------------------------------------------------------------

func floatCodec(name string, n int) *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: name,
		Encode: func(enc *jsonEncoder, ev Event) error {
			v, err := eventToFloat64(ev)
			if err != nil {
				return err
			}
			buf := make([]byte, n)
			if n == 4 {
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
			} else {
				binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			}
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(n)
			if err != nil {
				return err
			}
			var v float64
			if n == 4 {
				v = float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
				w.WriteRawNumber(strconv.FormatFloat(v, 'g', -1, 32))
			} else {
				v = math.Float64frombits(binary.LittleEndian.Uint64(b))
				w.WriteRawNumber(strconv.FormatFloat(v, 'g', -1, 64))
			}
			return nil
		},
	}
}

// --- fixed-size opaque byte blobs (checksum160/256/512, float128) ----------

func fixedBinaryCodec(name string, n int) *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: name,
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected hex string")
			}
			if len(ev.Str) != 2*n {
				return newErr(KindOutOfRange, "%s requires %d hex chars, got %d", name, 2*n, len(ev.Str))
			}
			b, err := hex.DecodeString(ev.Str)
			if err != nil {
				return newErr(KindOutOfRange, "invalid hex for %s: %v", name, err)
			}
			enc.bin = append(enc.bin, b...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(n)
			if err != nil {
				return err
			}
			w.WriteString(strings.ToUpper(hex.EncodeToString(b)))
			return nil
		},
	}
}

// --- string / bytes ----------------------------------------------------------

func stringCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "string",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			enc.bin = EncodeVaruint32(enc.bin, uint32(len(ev.Str)))
			enc.bin = append(enc.bin, []byte(ev.Str)...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			n, err := dec.readVaruint32()
			if err != nil {
				return err
			}
			b, err := dec.readN(int(n))
			if err != nil {
				return err
			}
			w.WriteString(string(b))
			return nil
		},
	}
}

func bytesCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "bytes",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected hex string")
			}
			if len(ev.Str)%2 != 0 {
				return newErr(KindOutOfRange, "hex string must have even length")
			}
			b, err := hex.DecodeString(ev.Str)
			if err != nil {
				return newErr(KindOutOfRange, "invalid hex for bytes: %v", err)
			}
			enc.bin = EncodeVaruint32(enc.bin, uint32(len(b)))
			enc.bin = append(enc.bin, b...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			n, err := dec.readVaruint32()
			if err != nil {
				return err
			}
			b, err := dec.readN(int(n))
			if err != nil {
				return err
			}
			w.WriteString(strings.ToUpper(hex.EncodeToString(b)))
			return nil
		},
	}
}

// --- 128-bit integers ---------------------------------------------------------

func uint128Codec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "uint128",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected decimal string")
			}
			b, err := decimal.EncodeUint128(ev.Str)
			if err != nil {
				return newErr(KindOutOfRange, "uint128: %v", err)
			}
			enc.bin = append(enc.bin, b[:]...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(16)
			if err != nil {
				return err
			}
			w.WriteString(decimal.DecodeUint128(b))
			return nil
		},
	}
}

func int128Codec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "int128",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected decimal string")
			}
			b, err := decimal.EncodeInt128(ev.Str)
			if err != nil {
				return newErr(KindOutOfRange, "int128: %v", err)
			}
			enc.bin = append(enc.bin, b[:]...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(16)
			if err != nil {
				return err
			}
			w.WriteString(decimal.DecodeInt128(b))
			return nil
		},
	}
}
