package compositor

import (
	"github.com/orbitald/compositor/background"
	"github.com/orbitald/compositor/inputevt"
)

// HandleKey interprets a key event: the modifier key toggles winKey and
// winTabbing, and the windowing combos fire while it is held. Every other
// key event that arrives while the modifier is held is consumed; key events
// without the modifier are forwarded to the focused window.
func (c *Compositor) HandleKey(ev inputevt.Event) {
	sc := ev.Scancode()
	pressed := ev.Pressed()

	if sc == inputevt.ModifierScancode {
		c.winKey = pressed
		if !pressed {
			c.winTabbing = false
		}
		return
	}

	if c.winKey {
		if !pressed {
			return
		}
		switch sc {
		case inputevt.ScancodeEsc:
			c.deliverToFocused(inputevt.Quit())
		case inputevt.ScancodeTab:
			c.winTabbing = true
			c.rotateFocus()
		case inputevt.ScancodeBackspace:
			c.cycleBackground()
		}
		return
	}

	c.deliverToFocused(ev)
}

// HandleScroll forwards a scroll event verbatim to the focused window.
func (c *Compositor) HandleScroll(ev inputevt.Event) {
	c.deliverToFocused(ev)
}

func (c *Compositor) deliverToFocused(ev inputevt.Event) {
	if len(c.order) == 0 {
		return
	}
	if w, ok := c.windows[c.order[0]]; ok {
		w.Enqueue(ev)
	}
}

// rotateFocus implements Win+Tab: pop the front, deliver Focus(false),
// push to back, deliver Focus(true) to the new front, scheduling damage
// for both.
func (c *Compositor) rotateFocus() {
	if len(c.order) < 2 {
		return
	}
	c.dragging = dragState{}

	oldID := c.order[0]
	c.order = append(c.order[1:], oldID)
	if w, ok := c.windows[oldID]; ok {
		c.scheduleWindowDamage(w)
		w.Enqueue(inputevt.Focus(false))
	}

	newID := c.order[0]
	if w, ok := c.windows[newID]; ok {
		c.scheduleWindowDamage(w)
		w.Enqueue(inputevt.Focus(true))
	}
}

func (c *Compositor) cycleBackground() {
	if c.backgrounds == nil {
		return
	}
	c.redraws.Schedule(c.backgroundRect())
	c.backgrounds.Advance()
	c.redraws.Schedule(c.backgroundRect())
}

// SetBackgrounds replaces the background stack (e.g. after background.Watcher
// reports a directory change) and schedules the union of the old and new
// background rectangles as damage.
func (c *Compositor) SetBackgrounds(stack *background.Stack) {
	old := c.backgroundRect()
	c.backgrounds = stack
	c.redraws.Schedule(old)
	c.redraws.Schedule(c.backgroundRect())
}

// HandleMouse interprets a mouse event: hit testing and focus changes
// while not dragging, and the four drag continuations otherwise, followed
// by cursor bookkeeping.
func (c *Compositor) HandleMouse(ev inputevt.Event) {
	xi, yi := ev.XY()
	x, y := int(xi), int(yi)
	buttons := ev.Buttons()

	switch c.dragging.mode {
	case DragNone:
		c.mouseHitTest(x, y, buttons)
	case DragTitle:
		c.dragTitle(x, y, buttons)
	case DragRightBorder:
		c.dragRightBorder(x, y, buttons)
	case DragBottomBorder:
		c.dragBottomBorder(x, y, buttons)
	case DragBottomRightBorder:
		c.dragBottomRightBorder(x, y, buttons)
	}

	c.updateCursor(x, y)
	c.cursorLeft = buttons.Has(inputevt.ButtonLeft)
	c.cursorMiddle = buttons.Has(inputevt.ButtonMiddle)
	c.cursorRight = buttons.Has(inputevt.ButtonRight)
}

func (c *Compositor) mouseHitTest(x, y int, buttons inputevt.MouseButtons) {
	leftEdgeDown := buttons.Has(inputevt.ButtonLeft) && !c.cursorLeft
	anyEdgeDown := leftEdgeDown ||
		(buttons.Has(inputevt.ButtonMiddle) && !c.cursorMiddle) ||
		(buttons.Has(inputevt.ButtonRight) && !c.cursorRight)

	for i, id := range c.order {
		w, ok := c.windows[id]
		if !ok {
			continue
		}

		switch {
		case w.ClientRect().Contains(x, y):
			w.Enqueue(inputevt.Mouse(int64(x-w.X), int64(y-w.Y), buttons))
			if anyEdgeDown {
				c.refocus(i)
			}
			return

		case w.TitleRect().Contains(x, y):
			if leftEdgeDown {
				if w.ExitContains(x, y) {
					w.Enqueue(inputevt.Quit())
				} else {
					c.dragging = dragState{mode: DragTitle, id: id, grabX: x, grabY: y}
				}
				c.refocus(i)
			}
			return

		case w.RightBorderRect().Contains(x, y):
			if leftEdgeDown {
				c.dragging = dragState{mode: DragRightBorder, id: id, offX: x - (w.X + w.Width)}
				c.refocus(i)
			}
			return

		case w.BottomBorderRect().Contains(x, y):
			if leftEdgeDown {
				c.dragging = dragState{mode: DragBottomBorder, id: id, offY: y - (w.Y + w.Height)}
				c.refocus(i)
			}
			return

		case w.BottomRightBorderRect().Contains(x, y):
			if leftEdgeDown {
				c.dragging = dragState{
					mode: DragBottomRightBorder, id: id,
					offX: x - (w.X + w.Width), offY: y - (w.Y + w.Height),
				}
				c.refocus(i)
			}
			return
		}
	}
}

// refocus moves the window at order index idx to the front, delivering
// Focus(false)/Focus(true) and scheduling both windows' damage. A no-op
// when idx is already 0.
func (c *Compositor) refocus(idx int) {
	if idx == 0 {
		return
	}
	if w, ok := c.windows[c.order[0]]; ok {
		c.scheduleWindowDamage(w)
		w.Enqueue(inputevt.Focus(false))
	}

	id := c.order[idx]
	c.order = append(c.order[:idx:idx], c.order[idx+1:]...)
	if w, ok := c.windows[id]; ok {
		c.scheduleWindowDamage(w)
		w.Enqueue(inputevt.Focus(true))
	}
	c.order = append([]int{id}, c.order...)
}

func (c *Compositor) dragTitle(x, y int, buttons inputevt.MouseButtons) {
	if !buttons.Has(inputevt.ButtonLeft) {
		c.dragging = dragState{}
		return
	}
	w, ok := c.windows[c.dragging.id]
	if !ok {
		c.dragging = dragState{}
		return
	}
	if x == c.dragging.grabX && y == c.dragging.grabY {
		return
	}

	c.scheduleWindowDamage(w)
	w.X += x - c.dragging.grabX
	w.Y += y - c.dragging.grabY
	w.Enqueue(inputevt.Move(int64(w.X), int64(w.Y)))
	c.dragging.grabX, c.dragging.grabY = x, y
	c.scheduleWindowDamage(w)
}

func (c *Compositor) dragRightBorder(x, y int, buttons inputevt.MouseButtons) {
	if !buttons.Has(inputevt.ButtonLeft) {
		c.dragging = dragState{}
		return
	}
	w, ok := c.windows[c.dragging.id]
	if !ok {
		c.dragging = dragState{}
		return
	}
	width := x - c.dragging.offX - w.X
	if width > 0 && width != w.Width {
		w.Enqueue(inputevt.Resize(int64(width), int64(w.Height)))
	}
}

func (c *Compositor) dragBottomBorder(x, y int, buttons inputevt.MouseButtons) {
	if !buttons.Has(inputevt.ButtonLeft) {
		c.dragging = dragState{}
		return
	}
	w, ok := c.windows[c.dragging.id]
	if !ok {
		c.dragging = dragState{}
		return
	}
	height := y - c.dragging.offY - w.Y
	if height > 0 && height != w.Height {
		w.Enqueue(inputevt.Resize(int64(w.Width), int64(height)))
	}
}

func (c *Compositor) dragBottomRightBorder(x, y int, buttons inputevt.MouseButtons) {
	if !buttons.Has(inputevt.ButtonLeft) {
		c.dragging = dragState{}
		return
	}
	w, ok := c.windows[c.dragging.id]
	if !ok {
		c.dragging = dragState{}
		return
	}
	width := x - c.dragging.offX - w.X
	height := y - c.dragging.offY - w.Y
	if width > 0 && height > 0 && (width != w.Width || height != w.Height) {
		w.Enqueue(inputevt.Resize(int64(width), int64(height)))
	}
}

func (c *Compositor) updateCursor(x, y int) {
	if x != c.cursorX || y != c.cursorY {
		c.redraws.Schedule(c.cursorRect())
		c.cursorX, c.cursorY = x, y
		c.redraws.Schedule(c.cursorRect())
	}
}
