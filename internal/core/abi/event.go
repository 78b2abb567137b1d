package abi

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// EventKind enumerates the streaming JSON events C5 is driven by.
type EventKind int

const (
	EvNull EventKind = iota
	EvBool
	EvString // also carries numbers, since the decoder runs with UseNumber
	EvStartObject
	EvKey
	EvEndObject
	EvStartArray
	EvEndArray
)

// Event is one token of the cooperative producer-consumer stream between
// the JSON tokenizer and the encoder's dispatch loop.
type Event struct {
	Kind EventKind
	Bool bool
	Str  string
}

// pumpFrame tracks, for one open container, whether it is an object
// currently expecting a key (objects alternate key/value; arrays never
// have keys).
type pumpFrame struct {
	isObject  bool
	expectKey bool
}

// tokenPump turns encoding/json-style Token() output into the Event stream
// C5 expects, most importantly distinguishing an object key from an
// ordinary string value — something Token() alone does not label.
type tokenPump struct {
	dec     *gojson.Decoder
	stack   []pumpFrame
	pending *Event
}

func newTokenPump(r io.Reader) *tokenPump {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return &tokenPump{dec: dec}
}

func (p *tokenPump) topIsObjectAwaitingKey() bool {
	if len(p.stack) == 0 {
		return false
	}
	top := p.stack[len(p.stack)-1]
	return top.isObject && top.expectKey
}

func (p *tokenPump) markValueConsumed() {
	if len(p.stack) == 0 {
		return
	}
	top := &p.stack[len(p.stack)-1]
	if top.isObject {
		top.expectKey = true
	}
}

// pushBack replays ev on the next call to Next, used by native.go's
// decodeArray to peek one token ahead when deciding end_array vs. element.
func (p *tokenPump) pushBack(ev Event) {
	p.pending = &ev
}

// Next pulls and classifies one token. io.EOF signals a clean end of input.
func (p *tokenPump) Next() (Event, error) {
	if p.pending != nil {
		ev := *p.pending
		p.pending = nil
		return ev, nil
	}
	tok, err := p.dec.Token()
	if err != nil {
		return Event{}, err
	}
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			p.markValueConsumed()
			p.stack = append(p.stack, pumpFrame{isObject: true, expectKey: true})
			return Event{Kind: EvStartObject}, nil
		case '}':
			p.stack = p.stack[:len(p.stack)-1]
			p.markValueConsumed()
			return Event{Kind: EvEndObject}, nil
		case '[':
			p.markValueConsumed()
			p.stack = append(p.stack, pumpFrame{isObject: false})
			return Event{Kind: EvStartArray}, nil
		case ']':
			p.stack = p.stack[:len(p.stack)-1]
			p.markValueConsumed()
			return Event{Kind: EvEndArray}, nil
		}
		return Event{}, newErr(KindParseError, "unexpected delimiter %q", t)
	case bool:
		p.markValueConsumed()
		return Event{Kind: EvBool, Bool: t}, nil
	case string:
		if p.topIsObjectAwaitingKey() {
			p.stack[len(p.stack)-1].expectKey = false
			return Event{Kind: EvKey, Str: t}, nil
		}
		p.markValueConsumed()
		return Event{Kind: EvString, Str: t}, nil
	case gojson.Number:
		p.markValueConsumed()
		return Event{Kind: EvString, Str: t.String()}, nil
	case nil:
		p.markValueConsumed()
		return Event{Kind: EvNull}, nil
	default:
		return Event{}, newErr(KindParseError, "unrecognized json token %T", t)
	}
}
