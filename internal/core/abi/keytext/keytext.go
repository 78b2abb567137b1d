// Package keytext implements the "external crypto-text helper" the core
// spec treats as a collaborator interface: text↔bytes conversion for the
// public_key/private_key/signature primitive types. It is grounded on the
// donor's internal/core/infrastructure/crypto/key.KeyManager: base58 text
// framing, an appended checksum, and secp256k1 point validation on decode.
package keytext

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// Curve identifies which elliptic curve a key/signature blob belongs to.
// This mirrors the tag byte the wire format prefixes the blob with.
type Curve uint8

const (
	CurveK1 Curve = 0 // secp256k1
	CurveR1 Curve = 1 // secp256r1
	CurveWA Curve = 2 // WebAuthn, not supported by this package
)

func (c Curve) name() string {
	switch c {
	case CurveK1:
		return "K1"
	case CurveR1:
		return "R1"
	case CurveWA:
		return "WA"
	default:
		return "?"
	}
}

const (
	PublicKeyDataLen  = 33
	PrivateKeyDataLen = 32
	SignatureDataLen  = 65
)

var (
	ErrUnsupportedCurve = errors.New("keytext: unsupported curve tag")
	ErrBadPrefix        = errors.New("keytext: unrecognized text prefix")
	ErrBadLength        = errors.New("keytext: wrong data length for key type")
	ErrBadChecksum      = errors.New("keytext: checksum mismatch")
	ErrInvalidPoint     = errors.New("keytext: not a valid point on the curve")
)

// checksum4 is the checksum this package appends before base58 encoding,
// ripemd160(data || curveName) truncated to 4 bytes — the same hash family
// the donor's address package uses for its Hash160 step. The core spec
// only requires a fixed-size tagged blob on the wire and defers the text
// form entirely to this collaborator, so exact legacy-text compatibility
// is not a requirement here.
func checksum4(data []byte, curveName string) []byte {
	h := ripemd160.New()
	h.Write(data)
	h.Write([]byte(curveName))
	sum := h.Sum(nil)
	return sum[:4]
}

func encode(prefix string, curve Curve, data []byte) string {
	sum := checksum4(data, curve.name())
	payload := make([]byte, 0, len(data)+len(sum))
	payload = append(payload, data...)
	payload = append(payload, sum...)
	return prefix + curve.name() + "_" + base58.Encode(payload)
}

func decode(text, prefix string, wantLen int) (Curve, []byte, error) {
	if !strings.HasPrefix(text, prefix) {
		return 0, nil, ErrBadPrefix
	}
	rest := text[len(prefix):]
	idx := strings.IndexByte(rest, '_')
	if idx < 0 {
		return 0, nil, ErrBadPrefix
	}
	curveName, body := rest[:idx], rest[idx+1:]
	var curve Curve
	switch curveName {
	case "K1":
		curve = CurveK1
	case "R1":
		curve = CurveR1
	case "WA":
		curve = CurveWA
	default:
		return 0, nil, ErrUnsupportedCurve
	}
	if curve == CurveWA {
		return 0, nil, ErrUnsupportedCurve
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return 0, nil, err
	}
	if len(raw) != wantLen+4 {
		return 0, nil, ErrBadLength
	}
	data, sum := raw[:wantLen], raw[wantLen:]
	want := checksum4(data, curve.name())
	if !equalBytes(sum, want) {
		return 0, nil, ErrBadChecksum
	}
	return curve, data, nil
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParsePublicKey decodes a "PUB_<curve>_<base58>" string into its curve tag
// and fixed-size data. For K1 it additionally verifies the point lies on
// secp256k1.
func ParsePublicKey(text string) (Curve, []byte, error) {
	curve, data, err := decode(text, "PUB_", PublicKeyDataLen)
	if err != nil {
		return 0, nil, err
	}
	if curve == CurveK1 {
		if _, err := btcec.ParsePubKey(data); err != nil {
			return 0, nil, ErrInvalidPoint
		}
	}
	return curve, data, nil
}

// FormatPublicKey is the inverse of ParsePublicKey.
func FormatPublicKey(curve Curve, data []byte) (string, error) {
	if len(data) != PublicKeyDataLen {
		return "", ErrBadLength
	}
	if curve == CurveWA {
		return "", ErrUnsupportedCurve
	}
	return encode("PUB_", curve, data), nil
}

// ParsePrivateKey decodes a "PVT_<curve>_<base58>" string.
func ParsePrivateKey(text string) (Curve, []byte, error) {
	return decode(text, "PVT_", PrivateKeyDataLen)
}

// FormatPrivateKey is the inverse of ParsePrivateKey.
func FormatPrivateKey(curve Curve, data []byte) (string, error) {
	if len(data) != PrivateKeyDataLen {
		return "", ErrBadLength
	}
	if curve == CurveWA {
		return "", ErrUnsupportedCurve
	}
	return encode("PVT_", curve, data), nil
}

// ParseSignature decodes a "SIG_<curve>_<base58>" string.
func ParseSignature(text string) (Curve, []byte, error) {
	return decode(text, "SIG_", SignatureDataLen)
}

// FormatSignature is the inverse of ParseSignature.
func FormatSignature(curve Curve, data []byte) (string, error) {
	if len(data) != SignatureDataLen {
		return "", ErrBadLength
	}
	if curve == CurveWA {
		return "", ErrUnsupportedCurve
	}
	return encode("SIG_", curve, data), nil
}

// TagToCurve / CurveToTag let the wire-level primitive codec translate the
// single tag byte it stores to/from the Curve type above.
func TagToCurve(tag byte) (Curve, error) {
	switch tag {
	case 0:
		return CurveK1, nil
	case 1:
		return CurveR1, nil
	case 2:
		return CurveWA, nil
	default:
		return 0, ErrUnsupportedCurve
	}
}

func CurveToTag(c Curve) byte { return byte(c) }
