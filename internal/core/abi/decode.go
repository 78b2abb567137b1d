package abi

// decodeCtx threads the shared binary cursor, output writer, and recursion
// depth through C6's recursive mirror of C5. Recursion (rather than an
// explicit work stack) is used here because, unlike the encoder, nothing
// external drives the decoder one event at a time — it pulls its own bytes
// and can simply call itself.
type decodeCtx struct {
	dec   *binDecoder
	w     *jsonWriter
	path  *pathBuilder
	depth int
}

func (c *decodeCtx) decodeValue(t *AbiType) error {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > maxDispatchDepth {
		return newErr(KindRecursionLimit, "decode dispatch exceeds %d frames", maxDispatchDepth)
	}

	switch t.Kind {
	case KindOptionalType:
		tag, err := c.dec.readByte()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			c.w.WriteNull()
			return nil
		case 1:
			return c.decodeValue(t.OptionalOf)
		default:
			return newErr(KindInvalidTag, "optional tag byte %d", tag)
		}
	case KindArrayType:
		n, err := c.dec.readVaruint32()
		if err != nil {
			return err
		}
		c.w.StartArray()
		for i := 0; i < int(n); i++ {
			c.path.pushIndex(i)
			err := c.decodeValue(t.ArrayOf)
			c.path.pop()
			if err != nil {
				return err
			}
		}
		c.w.EndArray()
		return nil
	case KindStructType:
		c.w.StartObject()
		for _, f := range t.Fields {
			c.w.WriteKey(f.Name)
			c.path.pushField(f.Name)
			err := c.decodeValue(f.Type)
			c.path.pop()
			if err != nil {
				return err
			}
		}
		c.w.EndObject()
		return nil
	case KindPrimitiveType:
		return t.Primitive.Decode(c.dec, c.w)
	default:
		return newErr(KindTypeMismatch, "unresolved type %q", t.Name)
	}
}

// BinToJSON decodes bin under the named type using contract's resolved
// schema (C6's public entry point). Trailing bytes after a successful
// top-level decode are not checked here, per spec.
func BinToJSON(contract *Contract, typeName string, bin []byte) (string, error) {
	rootType, err := lookupRootType(contract, typeName)
	if err != nil {
		return "", err
	}

	ctx := &decodeCtx{
		dec:  newBinDecoder(bin),
		w:    newJSONWriter(),
		path: newPathBuilder(typeName),
	}
	if err := ctx.decodeValue(rootType); err != nil {
		return "", withPath(err, ctx.path.String())
	}
	return ctx.w.String(), nil
}
