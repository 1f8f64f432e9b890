package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "E1"}
	wrapped := Wrap(base, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestJoin_DropsNil(t *testing.T) {
	assert.NoError(t, Join(nil, nil))

	first := New("first")
	joined := Join(nil, first)
	assert.True(t, Is(joined, first))
}
