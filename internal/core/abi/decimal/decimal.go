// Package decimal converts between the decimal-string JSON form of
// uint128/int128 and their 16-byte little-endian two's-complement wire
// representation, grounded on the donor's client/core/builder.Amount
// big.Int-backed decimal arithmetic.
package decimal

import (
	"errors"
	"math/big"
)

var (
	// ErrMalformed means the input was not a base-10 integer literal.
	ErrMalformed = errors.New("malformed decimal integer")
	// ErrOverflow means the value does not fit the target width, or — for
	// int128 — is exactly the two's-complement minimum, which this package
	// deliberately rejects rather than silently accepting (see
	// EncodeInt128).
	ErrOverflow = errors.New("decimal value out of range")
)

var (
	twoPow128  = new(big.Int).Lsh(big.NewInt(1), 128)
	maxUint128 = new(big.Int).Sub(twoPow128, big.NewInt(1))
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// EncodeUint128 parses an unsigned base-10 string and returns its 16-byte
// little-endian encoding.
func EncodeUint128(s string) ([16]byte, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return [16]byte{}, ErrMalformed
	}
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return [16]byte{}, ErrOverflow
	}
	return leEncode(v), nil
}

// DecodeUint128 formats a 16-byte little-endian value as an unsigned
// base-10 string.
func DecodeUint128(b []byte) string {
	return leDecodeUnsigned(b).String()
}

// EncodeInt128 parses a signed base-10 string and returns its 16-byte
// little-endian two's-complement encoding. The unsigned magnitude is
// range-checked before the sign is applied, matching the source library's
// check — which means the true two's-complement minimum (-2^127) is reported as
// an overflow rather than silently accepted, since its magnitude (2^127)
// exceeds the 2^127-1 bound this check allows for either sign.
func EncodeInt128(s string) ([16]byte, error) {
	neg := false
	t := s
	if len(t) > 0 && t[0] == '-' {
		neg = true
		t = t[1:]
	}
	mag, ok := new(big.Int).SetString(t, 10)
	if !ok || mag.Sign() < 0 {
		return [16]byte{}, ErrMalformed
	}
	if mag.Cmp(maxInt128) > 0 {
		return [16]byte{}, ErrOverflow
	}
	v := new(big.Int).Set(mag)
	if neg {
		v.Neg(v)
	}
	return leEncode(v), nil
}

// DecodeInt128 formats a 16-byte little-endian two's-complement value as a
// signed base-10 string.
func DecodeInt128(b []byte) string {
	u := leDecodeUnsigned(b)
	half := new(big.Int).Lsh(big.NewInt(1), 127)
	if u.Cmp(half) >= 0 {
		u.Sub(u, twoPow128)
	}
	return u.String()
}

func leEncode(v *big.Int) [16]byte {
	w := new(big.Int).Set(v)
	if w.Sign() < 0 {
		w.Add(w, twoPow128)
	}
	be := w.Bytes()
	var be16 [16]byte
	copy(be16[16-len(be):], be)
	var out [16]byte
	for i := 0; i < 16; i++ {
		out[i] = be16[15-i]
	}
	return out
}

func leDecodeUnsigned(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
