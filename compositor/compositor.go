// Package compositor implements the redraw scheduler, the window z-order
// and focus manager, and the drag/input state machine. It is the engine
// the scheme package drives; it never talks to a real display or input
// transport directly, only through the Display interface defined here.
package compositor

import (
	"errors"
	"image/color"

	"github.com/orbitald/compositor/background"
	"github.com/orbitald/compositor/decor"
	"github.com/orbitald/compositor/geom"
	"github.com/orbitald/compositor/inputevt"
	"github.com/orbitald/compositor/raster"
	"github.com/orbitald/compositor/redraw"
	"github.com/orbitald/compositor/winstack"
	"go.uber.org/zap"
)

// ErrNotFound is returned by every Compositor operation that references a
// window id absent from the window map. The scheme package translates it
// into the protocol-level BadHandle error.
var ErrNotFound = errors.New("compositor: window not found")

// BackgroundColor is the solid fill drawn under the active background
// image.
var BackgroundColor = color.RGBA{R: 0x2f, G: 0x2f, B: 0x2f, A: 0xff}

// Display is the external collaborator that receives composited frames. A
// real implementation talks to the raw display transport; cmd/orbitald
// supplies one.
type Display interface {
	Flush(fb *raster.Buffer, dirty []geom.Rect) error
}

// DragMode identifies what, if anything, the next mouse motion means.
type DragMode int

const (
	DragNone DragMode = iota
	DragTitle
	DragRightBorder
	DragBottomBorder
	DragBottomRightBorder
)

type dragState struct {
	mode         DragMode
	id           int
	grabX, grabY int // Title
	offX, offY   int // border modes
}

// Compositor owns the framebuffer, the window z-order and focus, the
// pending damage set, and the input interpretation state machine. It is not
// safe for concurrent use: it runs a single-threaded cooperative model, and
// the caller (cmd/orbitald's run loop) is the only goroutine that may call
// into it.
type Compositor struct {
	screen      geom.Rect
	framebuffer *raster.Buffer

	backgrounds *background.Stack
	decorations decor.Images

	cursorX, cursorY                      int
	cursorLeft, cursorMiddle, cursorRight bool

	order   []int // order[0] is focused; draw order is reverse
	windows map[int]*winstack.Window

	redraws *redraw.Scheduler

	dragging dragState

	winKey     bool
	winTabbing bool

	nextID   int32
	nextX    int
	nextY    int

	log *zap.Logger
}

// New constructs a Compositor for a display of (width, height), with the
// given background stack and decoration assets. The entire screen is
// scheduled as dirty so the first Redraw paints a full frame.
func New(width, height int, backgrounds *background.Stack, decorations decor.Images, log *zap.Logger) *Compositor {
	c := &Compositor{
		screen:      geom.New(0, 0, width, height),
		framebuffer: raster.NewBuffer(width, height),
		backgrounds: backgrounds,
		decorations: decorations,
		windows:     make(map[int]*winstack.Window),
		redraws:     redraw.New(),
		nextID:      1,
		nextX:       20,
		nextY:       20,
		log:         log,
	}
	c.redraws.Schedule(c.screen)
	return c
}

// Framebuffer returns the owned framebuffer, mostly for tests.
func (c *Compositor) Framebuffer() *raster.Buffer { return c.framebuffer }

// Window looks up a window by id.
func (c *Compositor) Window(id int) (*winstack.Window, bool) {
	w, ok := c.windows[id]
	return w, ok
}

// Order returns the current front-to-back focus order (order[0] is
// focused). The returned slice is a copy.
func (c *Compositor) Order() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Compositor) scheduleWindowDamage(w *winstack.Window) {
	c.redraws.Schedule(w.TitleRect())
	c.redraws.Schedule(w.Extent())
}

func (c *Compositor) cursorRect() geom.Rect {
	cur := c.decorations.Cursor
	if cur == nil {
		return geom.Rect{}
	}
	b := cur.Bounds()
	return geom.New(c.cursorX, c.cursorY, b.W, b.H)
}

func (c *Compositor) backgroundRect() geom.Rect {
	if c.backgrounds == nil {
		return geom.Rect{}
	}
	bg := c.backgrounds.Active()
	if bg == nil {
		return geom.Rect{}
	}
	b := bg.Bounds()
	x := c.screen.W/2 - b.W/2
	y := c.screen.H/2 - b.H/2
	return geom.New(x, y, b.W, b.H)
}

func removeID(order []int, id int) []int {
	for i, e := range order {
		if e == id {
			out := make([]int, 0, len(order)-1)
			out = append(out, order[:i]...)
			out = append(out, order[i+1:]...)
			return out
		}
	}
	return order
}
