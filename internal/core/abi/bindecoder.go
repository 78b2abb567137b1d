package abi

// binDecoder is a forward-only cursor over a byte slice, used by every
// primitive's Decode function and by C6's struct/array/optional dispatch.
type binDecoder struct {
	data []byte
	pos  int
}

func newBinDecoder(data []byte) *binDecoder {
	return &binDecoder{data: data}
}

func (d *binDecoder) remaining() int { return len(d.data) - d.pos }

// readN returns the next n bytes and advances the cursor, or fails with
// EndOfInput if fewer than n bytes remain.
func (d *binDecoder) readN(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, newErr(KindEndOfInput, "expected %d bytes, %d remaining", n, d.remaining())
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *binDecoder) readByte() (byte, error) {
	b, err := d.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *binDecoder) readVaruint32() (uint32, error) {
	v, n, err := DecodeVaruint32(d.data[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

func (d *binDecoder) readVarint32() (int32, error) {
	v, n, err := DecodeVarint32(d.data[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}
