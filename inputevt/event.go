// Package inputevt defines the event envelope the compositor exchanges with
// clients and with the outer input transport. The wire format is otherwise
// unconstrained, so this package commits to one concrete, fixed-size
// encoding so read() can copy queued events straight into a
// caller-supplied []byte, the way orbclient's C-compatible event struct
// lets a client reinterpret the bytes it reads.
package inputevt

import (
	"encoding/binary"
	"errors"
)

// Code identifies the meaning of an Event's payload fields.
type Code int64

const (
	CodeKey Code = iota + 1
	CodeMouse
	CodeScroll
	CodeFocus
	CodeQuit
	CodeMove
	CodeResize
)

// ModifierScancode is the scancode that identifies the windowing modifier
// key.
const ModifierScancode = 0x38

// Scancodes for the windowing key combos.
const (
	ScancodeEsc       = 0x01
	ScancodeTab       = 0x0F
	ScancodeBackspace = 0x0E
)

// Size is the wire size, in bytes, of an encoded Event.
const Size = 8 * 5

// Event is a fixed-shape union of up to four int64 payload fields, tagged by
// Code. Mouse coordinates are always absolute in screen space until they
// cross into a window's queue, at which point the compositor has already
// translated them into window-local space.
type Event struct {
	Code Code
	A, B, C, D int64
}

// Key builds a CodeKey event. Pressed is encoded as 1/0 in B.
func Key(scancode int64, pressed bool) Event {
	return Event{Code: CodeKey, A: scancode, B: boolToInt(pressed)}
}

// Scancode returns A for a CodeKey event.
func (e Event) Scancode() int64 { return e.A }

// Pressed returns whether B is non-zero for a CodeKey event.
func (e Event) Pressed() bool { return e.B != 0 }

// MouseButtons is a bitmask of currently-held mouse buttons.
type MouseButtons int64

const (
	ButtonLeft MouseButtons = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Mouse builds a CodeMouse event with absolute (or window-local, once
// translated) coordinates and the current button mask.
func Mouse(x, y int64, buttons MouseButtons) Event {
	return Event{Code: CodeMouse, A: x, B: y, C: int64(buttons)}
}

// XY returns A, B as coordinates for position-carrying events (Mouse, Move).
func (e Event) XY() (int64, int64) { return e.A, e.B }

// Buttons returns C as a MouseButtons mask for a CodeMouse event.
func (e Event) Buttons() MouseButtons { return MouseButtons(e.C) }

func (b MouseButtons) Has(f MouseButtons) bool { return b&f != 0 }

// Scroll builds a CodeScroll event.
func Scroll(dx, dy int64) Event {
	return Event{Code: CodeScroll, A: dx, B: dy}
}

// Focus builds a compositor-synthesized CodeFocus event.
func Focus(focused bool) Event {
	return Event{Code: CodeFocus, A: boolToInt(focused)}
}

// Focused returns A for a CodeFocus event.
func (e Event) Focused() bool { return e.A != 0 }

// Quit builds a compositor-synthesized CodeQuit event.
func Quit() Event { return Event{Code: CodeQuit} }

// Move builds a compositor-synthesized CodeMove event carrying the window's
// new position.
func Move(x, y int64) Event { return Event{Code: CodeMove, A: x, B: y} }

// Resize builds a compositor-synthesized CodeResize event carrying the
// window's proposed new client size.
func Resize(w, h int64) Event { return Event{Code: CodeResize, A: w, B: h} }

// Dimensions returns A, B as dimensions for a CodeResize event.
func (e Event) Dimensions() (int64, int64) { return e.A, e.B }

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Marshal encodes e into its fixed-size wire form.
func (e Event) Marshal() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Code))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(e.A))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(e.B))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(e.C))
	binary.LittleEndian.PutUint64(buf[32:40], uint64(e.D))
	return buf
}

// ErrShortBuffer is returned by Unmarshal when buf is smaller than Size.
var ErrShortBuffer = errors.New("inputevt: buffer too short for an event")

// Unmarshal decodes an Event from buf, which must be at least Size bytes.
func Unmarshal(buf []byte) (Event, error) {
	if len(buf) < Size {
		return Event{}, ErrShortBuffer
	}
	return Event{
		Code: Code(binary.LittleEndian.Uint64(buf[0:8])),
		A:    int64(binary.LittleEndian.Uint64(buf[8:16])),
		B:    int64(binary.LittleEndian.Uint64(buf[16:24])),
		C:    int64(binary.LittleEndian.Uint64(buf[24:32])),
		D:    int64(binary.LittleEndian.Uint64(buf[32:40])),
	}, nil
}
