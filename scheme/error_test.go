package scheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesOnCodeOnly(t *testing.T) {
	a := newError("read", WouldBlock, "queue empty")
	b := &Error{Code: WouldBlock}
	assert.True(t, errors.Is(a, b))

	c := &Error{Code: BadHandle}
	assert.False(t, errors.Is(a, c))
}

func TestErrorMessageIncludesOpAndCode(t *testing.T) {
	e := newError("open", InvalidArgument, "bad url")
	assert.Contains(t, e.Error(), "open")
	assert.Contains(t, e.Error(), "invalid argument")
	assert.Contains(t, e.Error(), "bad url")
}
