package abi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilderNestedSegments(t *testing.T) {
	p := newPathBuilder("transfer")
	p.pushField("memo")
	assert.Equal(t, "transfer.memo", p.String())
	p.pop()
	p.pushIndex(3)
	assert.Equal(t, "transfer[3]", p.String())
}

func TestWithPathOnlyAnnotatesOnce(t *testing.T) {
	err := newErr(KindTypeMismatch, "boom")
	annotated := withPath(err, "a.b")
	var ce *CodecError
	ok := errors.As(annotated, &ce)
	assert.True(t, ok)
	assert.Equal(t, "a.b", ce.Path)

	reAnnotated := withPath(annotated, "c.d")
	errors.As(reAnnotated, &ce)
	assert.Equal(t, "a.b", ce.Path, "path should not be overwritten once set")
}

func TestCodecErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	wrapped := wrapErr(KindParseError, cause)
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "UnknownType", KindUnknownType.String())
	assert.Equal(t, "Unknown", ErrorKind(999).String())
}
