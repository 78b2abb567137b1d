package abi

import (
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// jsonWriter builds a JSON text incrementally as C6 walks the schema. It
// owns comma/key-colon punctuation so the primitive codecs only ever emit
// bare values.
type jsonWriter struct {
	buf strings.Builder
	// needComma[i] is true once scope i has written its first element/pair,
	// so the next one needs a leading comma.
	needComma []bool
	// awaitingValue is true right after WriteKey: the colon already
	// separates key from value, so the value must not also insert a comma.
	awaitingValue bool
}

func newJSONWriter() *jsonWriter {
	return &jsonWriter{}
}

func (w *jsonWriter) beforeValue() {
	if w.awaitingValue {
		w.awaitingValue = false
		return
	}
	if len(w.needComma) == 0 {
		return
	}
	top := len(w.needComma) - 1
	if w.needComma[top] {
		w.buf.WriteByte(',')
	}
	w.needComma[top] = true
}

func (w *jsonWriter) WriteNull() {
	w.beforeValue()
	w.buf.WriteString("null")
}

func (w *jsonWriter) WriteBool(b bool) {
	w.beforeValue()
	if b {
		w.buf.WriteString("true")
	} else {
		w.buf.WriteString("false")
	}
}

// WriteRawNumber writes s verbatim as a JSON number token (used for values
// small enough that JSON-number precision loss is not a concern).
func (w *jsonWriter) WriteRawNumber(s string) {
	w.beforeValue()
	w.buf.WriteString(s)
}

func quoteJSON(s string) string {
	quoted, err := gojson.Marshal(s)
	if err != nil {
		// Marshal only fails on invalid UTF-8, which cannot happen
		// for values this package produces.
		return strconv.Quote(s)
	}
	return string(quoted)
}

// WriteString writes s as a properly escaped JSON string, including the
// quotes. Used both for genuine strings and for 64-bit+ numerics, which the
// wire format always quotes to survive round-tripping through JSON numbers.
func (w *jsonWriter) WriteString(s string) {
	w.beforeValue()
	w.buf.WriteString(quoteJSON(s))
}

func (w *jsonWriter) StartObject() {
	w.beforeValue()
	w.buf.WriteByte('{')
	w.needComma = append(w.needComma, false)
}

func (w *jsonWriter) WriteKey(name string) {
	top := len(w.needComma) - 1
	if w.needComma[top] {
		w.buf.WriteByte(',')
	}
	w.needComma[top] = true
	w.buf.WriteString(quoteJSON(name))
	w.buf.WriteByte(':')
	w.awaitingValue = true
}

func (w *jsonWriter) EndObject() {
	w.needComma = w.needComma[:len(w.needComma)-1]
	w.buf.WriteByte('}')
}

func (w *jsonWriter) StartArray() {
	w.beforeValue()
	w.buf.WriteByte('[')
	w.needComma = append(w.needComma, false)
}

func (w *jsonWriter) EndArray() {
	w.needComma = w.needComma[:len(w.needComma)-1]
	w.buf.WriteByte(']')
}

func (w *jsonWriter) String() string { return w.buf.String() }
