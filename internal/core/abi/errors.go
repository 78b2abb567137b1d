package abi

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a codec failure. All kinds are terminal: the engine
// never retries or partially recovers once one is raised.
type ErrorKind int

const (
	KindParseError ErrorKind = iota
	KindTypeMismatch
	KindOutOfRange
	KindUnknownType
	KindUnknownField
	KindMissingField
	KindDuplicateType
	KindInvalidTag
	KindEndOfInput
	KindRecursionLimit
	KindNestedOptionalOrArray
)

func (k ErrorKind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindOutOfRange:
		return "OutOfRange"
	case KindUnknownType:
		return "UnknownType"
	case KindUnknownField:
		return "UnknownField"
	case KindMissingField:
		return "MissingField"
	case KindDuplicateType:
		return "DuplicateType"
	case KindInvalidTag:
		return "InvalidTag"
	case KindEndOfInput:
		return "EndOfInput"
	case KindRecursionLimit:
		return "RecursionLimit"
	case KindNestedOptionalOrArray:
		return "NestedOptionalOrArray"
	default:
		return "Unknown"
	}
}

// CodecError is the single error type the engine raises. Path is the
// schema-path annotation C8 builds on top of the underlying cause; it is
// empty for failures raised before any path exists (e.g. during abi_load).
type CodecError struct {
	Kind  ErrorKind
	Path  string
	Cause error
	Msg   string
}

func newErr(kind ErrorKind, format string, args ...interface{}) *CodecError {
	return &CodecError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(kind ErrorKind, cause error) *CodecError {
	return &CodecError{Kind: kind, Cause: cause}
}

func (e *CodecError) message() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Msg
}

func (e *CodecError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.message())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.message())
}

func (e *CodecError) Unwrap() error { return e.Cause }

// withPath returns a copy of err annotated with path, unless it already
// carries one — C8 only ever attaches a path once, at the point where the
// failure first crosses back out through the stack-walking call site.
func withPath(err error, path string) error {
	if err == nil || path == "" {
		return err
	}
	if ce, ok := err.(*CodecError); ok {
		if ce.Path != "" {
			return ce
		}
		annotated := *ce
		annotated.Path = path
		return &annotated
	}
	return &CodecError{Kind: KindTypeMismatch, Path: path, Cause: err}
}

// pathBuilder accumulates dotted/bracketed schema-path segments for C8.
type pathBuilder struct {
	root string
	segs []string
}

func newPathBuilder(root string) *pathBuilder {
	return &pathBuilder{root: root}
}

func (p *pathBuilder) pushField(name string) { p.segs = append(p.segs, "."+name) }
func (p *pathBuilder) pushIndex(i int)        { p.segs = append(p.segs, fmt.Sprintf("[%d]", i)) }
func (p *pathBuilder) pop()                   { p.segs = p.segs[:len(p.segs)-1] }

func (p *pathBuilder) String() string {
	var b strings.Builder
	b.WriteString(p.root)
	for _, s := range p.segs {
		b.WriteString(s)
	}
	return b.String()
}
