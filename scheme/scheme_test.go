package scheme

import (
	"errors"
	"testing"

	"github.com/orbitald/compositor/compositor"
	"github.com/orbitald/compositor/decor"
	"github.com/orbitald/compositor/inputevt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c := compositor.New(800, 600, nil, decor.Images{}, zap.NewNop())
	return NewServer(c)
}

func TestOpenParsesFlagsAndGeometry(t *testing.T) {
	s := newTestServer(t)
	id, err := s.Open("ar/10/20/100/50/Hi")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	var buf [256]byte
	n, err := s.FPath(id, buf[:])
	require.NoError(t, err)
	assert.Equal(t, "ar/10/20/100/50/Hi", string(buf[:n]))
}

func TestOpenUnparseableGeometryDefaultsToZero(t *testing.T) {
	s := newTestServer(t)
	id, err := s.Open("/x/y/w/h/Title")
	require.NoError(t, err)

	var buf [256]byte
	n, _ := s.FPath(id, buf[:])
	assert.Equal(t, "/0/0/0/0/Title", string(buf[:n]))
}

func TestOpenTooFewSegmentsDefaultsTheRest(t *testing.T) {
	s := newTestServer(t)
	id, err := s.Open("a/1/2")
	require.NoError(t, err)

	var buf [256]byte
	n, err := s.FPath(id, buf[:])
	require.NoError(t, err)
	assert.Equal(t, "a/1/2/0/0/", string(buf[:n]))
}

func TestWriteMoveUpdatesPosition(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.Open("/10/10/50/50/w")

	n, err := s.Write(id, []byte("P,200,150"))
	require.NoError(t, err)
	assert.Equal(t, len("P,200,150"), n)

	var buf [256]byte
	pn, _ := s.FPath(id, buf[:])
	assert.Equal(t, "/200/150/50/50/w", string(buf[:pn]))
}

func TestWriteUnknownTokenIsInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.Open("/0/0/10/10/w")

	_, err := s.Write(id, []byte("Q,1,2"))
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, InvalidArgument, se.Code)
}

func TestWriteRetitle(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.Open("/0/0/10/10/old")

	_, err := s.Write(id, []byte("T,hello"))
	require.NoError(t, err)

	var buf [256]byte
	n, _ := s.FPath(id, buf[:])
	assert.Equal(t, "/0/0/10/10/hello", string(buf[:n]))
}

func TestOperationsOnUnknownIDReturnBadHandle(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Read(99, make([]byte, 64))
	assertBadHandle(t, err)

	_, err = s.Write(99, []byte("P,1,2"))
	assertBadHandle(t, err)

	assertBadHandle(t, s.Close(99))
	assertBadHandle(t, s.FSync(99))

	_, err = s.FEvent(99)
	assertBadHandle(t, err)

	_, err = s.FMap(99, 0, 4)
	assertBadHandle(t, err)

	_, err = s.FPath(99, make([]byte, 16))
	assertBadHandle(t, err)
}

func assertBadHandle(t *testing.T, err error) {
	t.Helper()
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, BadHandle, se.Code)
}

func TestReadEmptyQueueWouldBlockThenReturnsEvent(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.Open("a/0/0/10/10/w")

	_, err := s.Read(id, make([]byte, inputevt.Size))
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, WouldBlock, se.Code)

	w, _ := s.c.Window(id)
	w.Enqueue(inputevt.Key(0x10, true))

	buf := make([]byte, inputevt.Size)
	n, err := s.Read(id, buf)
	require.NoError(t, err)
	assert.Equal(t, inputevt.Size, n)

	ev, uerr := inputevt.Unmarshal(buf[:n])
	require.NoError(t, uerr)
	assert.Equal(t, int64(0x10), ev.Scancode())

	_, err = s.Read(id, buf)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, WouldBlock, se.Code)
}

func TestCloseThenOperationsReturnBadHandle(t *testing.T) {
	s := newTestServer(t)
	id, _ := s.Open("/0/0/10/10/w")
	require.NoError(t, s.Close(id))
	assertBadHandle(t, s.Close(id))
	assertBadHandle(t, s.FSync(id))
}
