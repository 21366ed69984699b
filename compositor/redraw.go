package compositor

import (
	"fmt"

	"github.com/orbitald/compositor/decor"
	"github.com/orbitald/compositor/geom"
	"github.com/orbitald/compositor/raster"
	"github.com/orbitald/compositor/winstack"
)

// Redraw drains the pending damage set and, for every rectangle in it,
// repaints the background, every window back-to-front and the cursor,
// clipped to that rectangle. While Win+Tab is held it then draws the window
// switcher overlay on top and adds the overlay's rectangle to the flushed
// set. Finally it flushes the composited frame via display. A nil
// display is legal and skips the flush, for tests that only want to
// observe the framebuffer.
func (c *Compositor) Redraw(display Display) error {
	dirty := c.redraws.Drain()
	if len(dirty) == 0 {
		return nil
	}

	for _, r := range dirty {
		c.paintRect(r)
	}

	if c.winTabbing {
		dirty = append(dirty, c.drawWindowSwitcher())
	}

	if display == nil {
		return nil
	}
	return display.Flush(c.framebuffer, dirty)
}

// paintRect repaints one damage rectangle: background, windows back to
// front, then the cursor if it falls within the rect.
func (c *Compositor) paintRect(r geom.Rect) {
	roi := c.framebuffer.ROI(r)
	roi.Fill(r, BackgroundColor)

	if c.backgrounds != nil {
		if bg := c.backgrounds.Active(); bg != nil {
			br := c.backgroundRect()
			roi.Blit(br.X, br.Y, bg.AsView())
		}
	}

	for i := len(c.order) - 1; i >= 0; i-- {
		w, ok := c.windows[c.order[i]]
		if !ok {
			continue
		}
		c.paintWindow(roi, w, c.order[i] == c.focusedID())
	}

	if cur := c.decorations.Cursor; cur != nil && !cur.Bounds().Empty() {
		roi.Blend(c.cursorX, c.cursorY, cur.AsView())
	}
}

func (c *Compositor) focusedID() int {
	if len(c.order) == 0 {
		return -1
	}
	return c.order[0]
}

// paintWindow composites one window's title bar, close glyph and client
// area into roi, which is already clipped to the current damage rectangle.
// Drawing a window whose rectangles fall entirely outside roi is a no-op:
// every raster.View operation clips to its own bounds.
func (c *Compositor) paintWindow(roi raster.View, w *winstack.Window, focused bool) {
	bar := winstack.BarColor
	if focused {
		bar = winstack.BarHighlightColor
	}
	roi.Fill(w.TitleRect(), bar)

	if title := w.TitleImage(); title != nil && !title.Bounds().Empty() {
		tr := w.TitleRect()
		tx := tr.X + 4
		ty := tr.Y + (tr.H-title.Bounds().H)/2
		roi.Blend(tx, ty, title.AsView())
	}

	closeGlyph := c.decorations.CloseUnfocused
	if focused {
		closeGlyph = c.decorations.CloseFocused
	}
	if closeGlyph != nil && !closeGlyph.Bounds().Empty() {
		er := w.ExitRect()
		roi.Blend(er.X, er.Y, closeGlyph.AsView())
	}

	roi.Fill(w.Extent(), winstack.BarColor)
	cb := w.ClientBuffer()
	roi.Blit(w.X, w.Y, cb.Pixels().AsView())
}

const (
	switcherWidth      = 400
	switcherLineHeight = 20
	switcherPadding    = 4
)

// windowLabel returns w's title, or "[unnamed #id]" when it has none.
func windowLabel(w *winstack.Window) string {
	if w.Title != "" {
		return w.Title
	}
	return fmt.Sprintf("[unnamed #%d]", w.ID)
}

// drawWindowSwitcher draws the Win+Tab overlay listing every window's title
// in focus order, the focused one highlighted, centered on screen: a fixed
// 400px-wide rectangle, 20px per entry plus 4px padding.
func (c *Compositor) drawWindowSwitcher() geom.Rect {
	if len(c.order) == 0 {
		return geom.Rect{}
	}

	width := switcherWidth
	height := len(c.order)*switcherLineHeight + switcherPadding

	r := geom.New(c.screen.W/2-width/2, c.screen.H/2-height/2, width, height)
	c.redraws.Schedule(r)

	roi := c.framebuffer.ROI(r)
	roi.Fill(r, winstack.BarColor)

	y := r.Y + switcherPadding
	for i, id := range c.order {
		w, ok := c.windows[id]
		if !ok {
			continue
		}
		label := windowLabel(w)
		fg := winstack.TextColor
		if i == 0 {
			roi.Fill(geom.New(r.X, y, width, switcherLineHeight), winstack.BarHighlightColor)
			fg = winstack.TextHighlightColor
		}
		img := decor.RenderText(label, fg)
		roi.Blend(r.X+switcherPadding, y+(switcherLineHeight-img.Bounds().H)/2, img.AsView())
		y += switcherLineHeight
	}

	return r
}
