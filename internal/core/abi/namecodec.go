package abi

import "strings"

// nameAlphabet is the 32-symbol alphabet `name` values are packed from:
// position 0..11 contribute 5 bits each, position 12 contributes 4 bits,
// all packed into the low end of the 64-bit word.
const nameAlphabet = ".12345abcdefghijklmnopqrstuvwxyz"

var nameCharValue = func() map[byte]uint64 {
	m := make(map[byte]uint64, len(nameAlphabet))
	for i := 0; i < len(nameAlphabet); i++ {
		m[nameAlphabet[i]] = uint64(i)
	}
	return m
}()

// stringToName packs a textual name (at most 13 characters from
// nameAlphabet) into its 64-bit value.
func stringToName(s string) (uint64, error) {
	if len(s) > 13 {
		return 0, newErr(KindOutOfRange, "name %q longer than 13 characters", s)
	}
	var value uint64
	for i := 0; i < 13; i++ {
		var c byte
		if i < len(s) {
			c = s[i]
		}
		v, ok := nameCharValue[c]
		if c != 0 && !ok {
			return 0, newErr(KindOutOfRange, "invalid name character %q", c)
		}
		if i < 12 {
			v &= 0x1f
			value |= v << (64 - 5*(uint(i)+1))
		} else {
			v &= 0x0f
			value |= v
		}
	}
	return value, nil
}

// nameToString is the inverse of stringToName: it unpacks the 64-bit value
// and trims trailing '.' characters, unless the whole string is dots.
func nameToString(value uint64) string {
	var b strings.Builder
	tmp := value
	for i := 0; i < 13; i++ {
		var idx uint64
		if i < 12 {
			idx = (tmp >> (64 - 5*(uint(i)+1))) & 0x1f
		} else {
			idx = tmp & 0x0f
		}
		b.WriteByte(nameAlphabet[idx])
	}
	s := b.String()
	trimmed := strings.TrimRight(s, ".")
	if trimmed == "" {
		// the whole name is dots: trimming would erase it entirely, so the
		// untrimmed form is returned instead.
		return s
	}
	return trimmed
}

// StringToName packs a textual name into its 64-bit wire value, exported
// for callers that want the conversion without a full Contract/schema
// round-trip (e.g. building action names for dispatch).
func StringToName(s string) (uint64, error) { return stringToName(s) }

// NameToString is the inverse of StringToName.
func NameToString(value uint64) string { return nameToString(value) }

func nameCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "name",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			v, err := stringToName(ev.Str)
			if err != nil {
				return err
			}
			buf := make([]byte, 8)
			putUintLE(buf, v)
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(8)
			if err != nil {
				return err
			}
			v := getUintLE(b, 8)
			w.WriteString(nameToString(v))
			return nil
		},
	}
}

// --- symbol_code / symbol / asset -------------------------------------------

func symbolCodeToValue(code string) (uint64, error) {
	if len(code) > 7 {
		return 0, newErr(KindOutOfRange, "symbol code %q longer than 7 characters", code)
	}
	var v uint64
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return 0, newErr(KindOutOfRange, "symbol code %q must be uppercase letters", code)
		}
		v |= uint64(c) << (8 * i)
	}
	return v, nil
}

func valueToSymbolCode(v uint64) string {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		c := byte(v >> (8 * i))
		if c == 0 {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

func symbolCodeCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "symbol_code",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			v, err := symbolCodeToValue(ev.Str)
			if err != nil {
				return err
			}
			buf := make([]byte, 8)
			putUintLE(buf, v)
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(8)
			if err != nil {
				return err
			}
			w.WriteString(valueToSymbolCode(getUintLE(b, 8)))
			return nil
		},
	}
}

// parseSymbolText splits "precision,CODE" into its parts.
func parseSymbolText(s string) (uint8, string, error) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return 0, "", newErr(KindParseError, "symbol %q missing ','", s)
	}
	precStr, code := s[:idx], s[idx+1:]
	prec, err := parseUint8(precStr)
	if err != nil {
		return 0, "", newErr(KindOutOfRange, "symbol precision %q invalid", precStr)
	}
	return prec, code, nil
}

func parseUint8(s string) (uint8, error) {
	var v uint64
	if s == "" {
		return 0, newErr(KindParseError, "empty precision")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, newErr(KindParseError, "non-digit in precision")
		}
		v = v*10 + uint64(s[i]-'0')
		if v > 255 {
			return 0, newErr(KindOutOfRange, "precision exceeds 255")
		}
	}
	return uint8(v), nil
}

func symbolToValue(precision uint8, code string) (uint64, error) {
	codeVal, err := symbolCodeToValue(code)
	if err != nil {
		return 0, err
	}
	return uint64(precision) | (codeVal << 8), nil
}

func valueToSymbol(v uint64) (uint8, string) {
	precision := uint8(v & 0xff)
	code := valueToSymbolCode(v >> 8)
	return precision, code
}

func symbolCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "symbol",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			prec, code, err := parseSymbolText(ev.Str)
			if err != nil {
				return err
			}
			v, err := symbolToValue(prec, code)
			if err != nil {
				return err
			}
			buf := make([]byte, 8)
			putUintLE(buf, v)
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(8)
			if err != nil {
				return err
			}
			prec, code := valueToSymbol(getUintLE(b, 8))
			w.WriteString(formatSymbolText(prec, code))
			return nil
		},
	}
}

func formatSymbolText(precision uint8, code string) string {
	var b strings.Builder
	b.WriteString(itoa64(int64(precision)))
	b.WriteByte(',')
	b.WriteString(code)
	return b.String()
}

func itoa64(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}

// parseAssetText splits "<[-]digits[.digits]> <CODE>" into amount/precision
// and code.
func parseAssetText(s string) (amount int64, precision uint8, code string, err error) {
	idx := strings.IndexByte(s, ' ')
	if idx < 0 {
		return 0, 0, "", newErr(KindParseError, "asset %q missing ' '", s)
	}
	amountStr, code := s[:idx], s[idx+1:]
	neg := false
	if strings.HasPrefix(amountStr, "-") {
		neg = true
		amountStr = amountStr[1:]
	}
	intPart, fracPart := amountStr, ""
	if dot := strings.IndexByte(amountStr, '.'); dot >= 0 {
		intPart, fracPart = amountStr[:dot], amountStr[dot+1:]
	}
	precision = uint8(len(fracPart))
	digits := intPart + fracPart
	if digits == "" {
		return 0, 0, "", newErr(KindParseError, "asset %q has no digits", s)
	}
	var v int64
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, "", newErr(KindParseError, "asset %q has non-digit amount", s)
		}
		v = v*10 + int64(digits[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, precision, code, nil
}

func formatAssetText(amount int64, precision uint8, code string) string {
	var b strings.Builder
	neg := amount < 0
	u := amount
	if neg {
		u = -u
		b.WriteByte('-')
	}
	s := itoa64(u)
	if precision == 0 {
		b.WriteString(s)
	} else {
		for len(s) <= int(precision) {
			s = "0" + s
		}
		intLen := len(s) - int(precision)
		b.WriteString(s[:intLen])
		b.WriteByte('.')
		b.WriteString(s[intLen:])
	}
	b.WriteByte(' ')
	b.WriteString(code)
	return b.String()
}

func assetCodec() *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: "asset",
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			amount, precision, code, err := parseAssetText(ev.Str)
			if err != nil {
				return err
			}
			symVal, err := symbolToValue(precision, code)
			if err != nil {
				return err
			}
			buf := make([]byte, 16)
			putIntLE(buf[0:8], amount)
			putUintLE(buf[8:16], symVal)
			enc.bin = append(enc.bin, buf...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			b, err := dec.readN(16)
			if err != nil {
				return err
			}
			amount := getIntLE(b[0:8], 8)
			precision, code := valueToSymbol(getUintLE(b[8:16], 8))
			w.WriteString(formatAssetText(amount, precision, code))
			return nil
		},
	}
}
