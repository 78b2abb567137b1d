package abi

import "github.com/ledgerabi/abicodec/internal/core/abi/keytext"

// keyBlobCodec builds the primitive pair for one of public_key/private_key/
// signature: a one-byte curve tag followed by a fixed-size data blob, with
// text↔bytes deferred to the keytext collaborator per the spec's external
// crypto-text helper interface.
func keyBlobCodec(name string, dataLen int, parse func(string) (keytext.Curve, []byte, error), format func(keytext.Curve, []byte) (string, error)) *PrimitiveCodec {
	return &PrimitiveCodec{
		Name: name,
		Encode: func(enc *jsonEncoder, ev Event) error {
			if ev.Kind != EvString {
				return newErr(KindTypeMismatch, "expected string")
			}
			curve, data, err := parse(ev.Str)
			if err != nil {
				return newErr(KindParseError, "%s %q: %v", name, ev.Str, err)
			}
			enc.bin = append(enc.bin, keytext.CurveToTag(curve))
			enc.bin = append(enc.bin, data...)
			return nil
		},
		Decode: func(dec *binDecoder, w *jsonWriter) error {
			tagByte, err := dec.readByte()
			if err != nil {
				return err
			}
			curve, err := keytext.TagToCurve(tagByte)
			if err != nil {
				return newErr(KindInvalidTag, "%s: %v", name, err)
			}
			data, err := dec.readN(dataLen)
			if err != nil {
				return err
			}
			text, err := format(curve, data)
			if err != nil {
				return newErr(KindTypeMismatch, "%s: %v", name, err)
			}
			w.WriteString(text)
			return nil
		},
	}
}

func publicKeyCodec() *PrimitiveCodec {
	return keyBlobCodec("public_key", keytext.PublicKeyDataLen, keytext.ParsePublicKey, keytext.FormatPublicKey)
}

func privateKeyCodec() *PrimitiveCodec {
	return keyBlobCodec("private_key", keytext.PrivateKeyDataLen, keytext.ParsePrivateKey, keytext.FormatPrivateKey)
}

func signatureCodec() *PrimitiveCodec {
	return keyBlobCodec("signature", keytext.SignatureDataLen, keytext.ParseSignature, keytext.FormatSignature)
}
