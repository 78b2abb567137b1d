package abi

// EncodeVaruint32 appends the LEB128 encoding of v to out and returns the
// extended slice. Seven data bits per byte, low-to-high; every byte except
// the last has its continuation bit (0x80) set.
func EncodeVaruint32(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		out = append(out, b)
		return out
	}
}

// DecodeVaruint32 reads a LEB128 value starting at data[0]. It returns the
// decoded value and the number of bytes consumed. Input that would require
// more than 5 bytes (i.e. sets a continuation bit past bit 35) is ill-formed.
func DecodeVaruint32(data []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for i := 0; i < len(data); i++ {
		if shift >= 35 {
			return 0, 0, newErr(KindOutOfRange, "varuint32 exceeds 5 bytes")
		}
		b := data[i]
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, newErr(KindEndOfInput, "varuint32: read past end of input")
}

// EncodeVarint32 zig-zag encodes v and appends its varuint32 form to out.
func EncodeVarint32(out []byte, v int32) []byte {
	zz := uint32((v << 1) ^ (v >> 31))
	return EncodeVaruint32(out, zz)
}

// DecodeVarint32 reverses EncodeVarint32.
func DecodeVarint32(data []byte) (int32, int, error) {
	u, n, err := DecodeVaruint32(data)
	if err != nil {
		return 0, 0, err
	}
	v := int32(u>>1) ^ -int32(u&1)
	return v, n, nil
}
