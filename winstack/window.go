// Package winstack implements per-client Window state: geometry, title
// rendering, the client pixel buffer, the event queue, and the derived
// hit-test rectangles every drag and redraw operation depends on.
package winstack

import (
	"image/color"

	"github.com/orbitald/compositor/decor"
	"github.com/orbitald/compositor/geom"
	"github.com/orbitald/compositor/inputevt"
	"github.com/orbitald/compositor/raster"
)

// Layout constants. The exact pixel layout is an implementation detail;
// the only requirement is that every hit test below stays consistent with
// it.
const (
	TitleHeight = 18
	BorderWidth = 4
	CloseSize   = 14
	closeMargin = 2
)

// Colors used to render window chrome.
var (
	BarColor           = color.RGBA{R: 0x2e, G: 0x34, B: 0x36, A: 0xff}
	BarHighlightColor  = color.RGBA{R: 0x34, G: 0x65, B: 0xa4, A: 0xff}
	TextColor          = color.RGBA{R: 0xd3, G: 0xd7, B: 0xcf, A: 0xff}
	TextHighlightColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ClientBuffer is the borrowed, client-owned pixel memory a Window
// composites from. A real implementation maps shared memory to the client
// via fmap; the in-memory implementation in this package stands in for it
// when no such transport is wired up.
type ClientBuffer interface {
	Bounds() geom.Rect
	Pixels() *raster.Buffer
	Resize(w, h int)
}

// inMemoryClientBuffer is the default ClientBuffer: a private raster.Buffer
// with no real shared-memory mapping.
type inMemoryClientBuffer struct {
	buf *raster.Buffer
}

// NewClientBuffer returns a default, private-memory ClientBuffer of the
// given size.
func NewClientBuffer(w, h int) ClientBuffer {
	return &inMemoryClientBuffer{buf: raster.NewBuffer(w, h)}
}

func (c *inMemoryClientBuffer) Bounds() geom.Rect       { return c.buf.Bounds() }
func (c *inMemoryClientBuffer) Pixels() *raster.Buffer  { return c.buf }
func (c *inMemoryClientBuffer) Resize(w, h int)         { c.buf = raster.NewBuffer(w, h) }

// Window is one client's compositor-side window state.
type Window struct {
	ID int

	X, Y          int
	Width, Height int
	Title         string
	Async         bool
	Resizable     bool

	client ClientBuffer
	title  *raster.Buffer
	queue  *eventQueue
}

// New constructs a Window. The client pixel buffer starts as a default
// in-memory ClientBuffer of (width, height); callers that wire a real
// shared-memory implementation should replace it via SetClientBuffer.
func New(id, x, y, width, height int, title string, async, resizable bool) *Window {
	w := &Window{
		ID:        id,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Async:     async,
		Resizable: resizable,
		client:    NewClientBuffer(width, height),
		queue:     newEventQueue(async),
	}
	w.SetTitle(title)
	return w
}

// SetClientBuffer replaces the window's pixel memory backing, e.g. with one
// mapped from a real client process.
func (w *Window) SetClientBuffer(c ClientBuffer) { w.client = c }

// ClientBuffer returns the window's current pixel memory.
func (w *Window) ClientBuffer() ClientBuffer { return w.client }

// SetTitle updates the title string and re-renders the title-bar text
// image.
func (w *Window) SetTitle(title string) {
	w.Title = title
	label := title
	if label == "" {
		label = "[unnamed]"
	}
	w.title = decor.RenderText(label, TextColor)
}

// TitleImage returns the last-rendered title text image.
func (w *Window) TitleImage() *raster.Buffer { return w.title }

// SetSize resizes the client buffer to (w, h). Non-positive dimensions are
// ignored, since a degenerate client area would make every hit test below
// ambiguous.
func (w *Window) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.Width, w.Height = width, height
	w.client.Resize(width, height)
}

// Enqueue pushes ev onto the window's event queue, honoring the async
// queue's eviction policy.
func (w *Window) Enqueue(ev inputevt.Event) { w.queue.Push(ev) }

// HasEvents reports whether the queue holds a pending event.
func (w *Window) HasEvents() bool { return !w.queue.Empty() }

// DequeueAll drains every pending event in FIFO order and returns them.
func (w *Window) DequeueAll() []inputevt.Event {
	var out []inputevt.Event
	for !w.queue.Empty() {
		out = append(out, w.queue.Pop())
	}
	return out
}

// Dequeue pops a single event in FIFO order, for callers that serialize
// events one at a time and need to stop partway through a full queue.
func (w *Window) Dequeue() (inputevt.Event, bool) {
	if w.queue.Empty() {
		return inputevt.Event{}, false
	}
	return w.queue.Pop(), true
}

// ClientRect is the window's client area.
func (w *Window) ClientRect() geom.Rect {
	return geom.New(w.X, w.Y, w.Width, w.Height)
}

// TitleRect sits immediately above the client area and spans the client
// width plus the right border strip, so the title bar visually caps the
// window's full horizontal extent.
func (w *Window) TitleRect() geom.Rect {
	return geom.New(w.X, w.Y-TitleHeight, w.Width+BorderWidth, TitleHeight)
}

// RightBorderRect is the resize strip to the right of the client area.
func (w *Window) RightBorderRect() geom.Rect {
	return geom.New(w.X+w.Width, w.Y, BorderWidth, w.Height)
}

// BottomBorderRect is the resize strip below the client area.
func (w *Window) BottomBorderRect() geom.Rect {
	return geom.New(w.X, w.Y+w.Height, w.Width, BorderWidth)
}

// BottomRightBorderRect is the corner resize hitbox.
func (w *Window) BottomRightBorderRect() geom.Rect {
	return geom.New(w.X+w.Width, w.Y+w.Height, BorderWidth, BorderWidth)
}

// Extent is the client area plus its right, bottom and corner border
// strips — everything except the title bar. TitleRect and Extent are kept
// as two separate rectangles rather than pre-unioned, since every geometry
// change schedules them as independent damage.
func (w *Window) Extent() geom.Rect {
	return geom.New(w.X, w.Y, w.Width+BorderWidth, w.Height+BorderWidth)
}

// ExitRect is the close "X" hotspot within the title bar: a fixed-size
// square inset from the title bar's right edge. Its exact region is a
// window-internal policy; the only contract is that it is a deterministic
// function of the current title-bar layout.
func (w *Window) ExitRect() geom.Rect {
	tr := w.TitleRect()
	return geom.New(tr.Right()-CloseSize-closeMargin, tr.Y+(tr.H-CloseSize)/2, CloseSize, CloseSize)
}

// ExitContains reports whether (x, y) — in screen space — falls inside the
// close hotspot.
func (w *Window) ExitContains(x, y int) bool {
	return w.ExitRect().Contains(x, y)
}
