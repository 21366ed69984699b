package scheme

import (
	"bytes"
	"fmt"

	"github.com/orbitald/compositor/compositor"
	"github.com/orbitald/compositor/inputevt"
	"github.com/orbitald/compositor/winstack"
)

// Server drives a compositor.Compositor from parsed protocol requests. Like
// Compositor itself, it is not safe for concurrent use: every method must
// be called from the single goroutine that owns the compositor.
type Server struct {
	c *compositor.Compositor
}

// NewServer wraps c in a protocol-facing Server.
func NewServer(c *compositor.Compositor) *Server {
	return &Server{c: c}
}

// Open parses url per the <flags>/<x>/<y>/<width>/<height>/<title> grammar
// and creates a new window, returning its id.
func (s *Server) Open(url string) (int, error) {
	req, perr := parseOpenURL(url)
	if perr != nil {
		return 0, perr
	}

	id := s.c.OpenWindow(req.x, req.y, req.width, req.height, req.title, req.async, req.resizable)
	return id, nil
}

func (s *Server) window(op string, id int) (*winstack.Window, *Error) {
	w, ok := s.c.Window(id)
	if !ok {
		return nil, newError(op, BadHandle, fmt.Sprintf("no such window: %d", id))
	}
	return w, nil
}

// Read drains queued events for id into buf, one fixed-size encoded event
// at a time, stopping when the next event would not fit. It returns
// WouldBlock if the queue is currently empty: for async windows this is
// returned straight to the client; for non-async windows the outer loop is
// expected to stash the request and retry after FEvent reports readability,
// since the core itself never blocks.
func (s *Server) Read(id int, buf []byte) (int, error) {
	w, err := s.window("read", id)
	if err != nil {
		return 0, err
	}

	if !w.HasEvents() {
		return 0, newError("read", WouldBlock, "")
	}

	n := 0
	for n+inputevt.Size <= len(buf) {
		ev, ok := w.Dequeue()
		if !ok {
			break
		}
		copy(buf[n:], ev.Marshal())
		n += inputevt.Size
	}
	return n, nil
}

// Write interprets buf as the P/S/T ASCII grammar and applies it to id.
func (s *Server) Write(id int, buf []byte) (int, error) {
	w, err := s.window("write", id)
	if err != nil {
		return 0, err
	}

	fallA, fallB := w.X, w.Y
	if bytes.HasPrefix(buf, []byte("S,")) {
		fallA, fallB = w.Width, w.Height
	}
	msg, perr := parseWriteMessage(buf, fallA, fallB)
	if perr != nil {
		return 0, perr
	}

	switch msg.kind {
	case 'P':
		_ = s.c.MoveWindow(id, msg.a, msg.b)
	case 'S':
		_ = s.c.ResizeWindow(id, msg.a, msg.b)
	case 'T':
		_ = s.c.RetitleWindow(id, msg.text)
	}
	return len(buf), nil
}

// Close removes id from the compositor.
func (s *Server) Close(id int) error {
	if err := s.c.CloseWindow(id); err != nil {
		return newError("close", BadHandle, fmt.Sprintf("no such window: %d", id))
	}
	return nil
}

// FEvent registers read interest and returns id unchanged if the window
// exists.
func (s *Server) FEvent(id int) (int, error) {
	if _, err := s.window("fevent", id); err != nil {
		return 0, err
	}
	return id, nil
}

// FMap returns a byte slice aliasing the client pixel buffer starting at
// offset, sized to size, standing in for an address-space mapping: the
// real mmap-equivalent transport is an external collaborator, modeled here
// with Go's reference-sharing slices instead of a raw pointer.
func (s *Server) FMap(id, offset, size int) ([]byte, error) {
	w, err := s.window("fmap", id)
	if err != nil {
		return nil, err
	}
	pix := w.ClientBuffer().Pixels().RGBA().Pix
	if offset < 0 || offset > len(pix) {
		return nil, newError("fmap", InvalidArgument, "offset out of range")
	}
	end := offset + size
	if end > len(pix) || end < offset {
		end = len(pix)
	}
	return pix[offset:end], nil
}

// FPath writes a canonical textual description of the window's current
// geometry and flags into buf, in the same grammar open accepts, and
// returns the number of bytes written.
func (s *Server) FPath(id int, buf []byte) (int, error) {
	w, err := s.window("fpath", id)
	if err != nil {
		return 0, err
	}

	flags := ""
	if w.Async {
		flags += "a"
	}
	if w.Resizable {
		flags += "r"
	}
	text := fmt.Sprintf("%s/%d/%d/%d/%d/%s", flags, w.X, w.Y, w.Width, w.Height, w.Title)
	n := copy(buf, text)
	return n, nil
}

// FSync schedules a full client-rectangle redraw for id, signaling that the
// client has finished a batch of pixel writes.
func (s *Server) FSync(id int) error {
	if err := s.c.Sync(id); err != nil {
		return newError("fsync", BadHandle, fmt.Sprintf("no such window: %d", id))
	}
	return nil
}
