package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/countdown/internal/apperr"
)

var errBad = &apperr.Error{
	Message: "bad value for %s: %d",
}

func TestFmt(t *testing.T) {
	err := errBad.Fmt("duration", -1)

	assert.Equal(t, "bad value for duration: -1", err.Error())
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, "bad value for %s: %d", errBad.Message)
}

func TestWrap(t *testing.T) {
	errRead := &apperr.Error{Message: "reading config failed"}

	err := errRead.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading config failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, errRead)
	assert.NotErrorIs(t, err, errBad)
	assert.False(t, errors.Is(errRead, io.ErrUnexpectedEOF))
}
