// Package raster implements owned and borrowed pixel-buffer primitives:
// rect_fill, blit (opaque copy), blend (alpha over) and roi (subrectangle
// view). It is built on golang.org/x/image/draw, the same compositing
// primitive golang.org/x/exp/shiny's window implementations (x11driver,
// windriver) use under their own Upload/Draw/Fill methods.
package raster

import (
	"image"
	"image/color"

	"github.com/orbitald/compositor/geom"
	"golang.org/x/image/draw"
)

// Buffer is an owned 32-bit RGBA pixel rectangle, always rooted at (0, 0).
type Buffer struct {
	img *image.RGBA
}

// NewBuffer allocates a zeroed (fully transparent black) buffer of the given
// size. Negative dimensions are clamped to zero, matching a 0×0 placeholder
// used when startup image loading fails.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FromRGBA wraps an existing *image.RGBA without copying, for buffers handed
// in by an external collaborator (e.g. a decoded background image or a
// client's mapped pixel memory).
func FromRGBA(img *image.RGBA) *Buffer {
	if img == nil {
		return NewBuffer(0, 0)
	}
	return &Buffer{img: img}
}

// RGBA exposes the backing *image.RGBA for callers (font drawers, decoders)
// that need direct standard-library image access.
func (b *Buffer) RGBA() *image.RGBA { return b.img }

// Bounds returns the buffer's rectangle, always with Min at the origin.
func (b *Buffer) Bounds() geom.Rect {
	r := b.img.Bounds()
	return geom.New(0, 0, r.Dx(), r.Dy())
}

// Fill performs an opaque fill of r (clipped to the buffer) with c.
func (b *Buffer) Fill(r geom.Rect, c color.Color) {
	View{img: b.img}.Fill(r, c)
}

// Blit copies src into this buffer at (x, y), opaque (alpha ignored),
// clipped to both rectangles.
func (b *Buffer) Blit(x, y int, src *Buffer) {
	View{img: b.img}.Blit(x, y, View{img: src.img})
}

// Blend alpha-composites src over this buffer at (x, y), source-over,
// clipped to both rectangles.
func (b *Buffer) Blend(x, y int, src *Buffer) {
	View{img: b.img}.Blend(x, y, View{img: src.img})
}

// ROI returns a mutable view restricted to r (clipped to the buffer's own
// bounds), re-exporting the same operations in the parent's coordinate
// space.
func (b *Buffer) ROI(r geom.Rect) View {
	return View{img: b.img}.ROI(r)
}

// AsView returns a View over the buffer's full extent, for callers that
// compose Buffer and View values through the same drawing call.
func (b *Buffer) AsView() View { return View{img: b.img} }

// View is a borrowed, possibly sub-rectangle, reference into a Buffer's
// pixels. All coordinates passed to its methods are in the *parent*
// buffer's space.
type View struct {
	img *image.RGBA
}

// Bounds returns the view's current rectangle in parent space.
func (v View) Bounds() geom.Rect {
	r := v.img.Bounds()
	return geom.New(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// ROI further restricts the view to r intersected with the current bounds.
func (v View) ROI(r geom.Rect) View {
	ir := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	return View{img: v.img.SubImage(ir).(*image.RGBA)}
}

// Fill performs an opaque fill of r (clipped to the view) with c.
func (v View) Fill(r geom.Rect, c color.Color) {
	ir := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(v.img.Bounds())
	if ir.Empty() {
		return
	}
	draw.Src.Draw(v.img, ir, &image.Uniform{C: c}, image.Point{})
}

// Blit copies src into the view at (x, y), opaque, clipped to both.
func (v View) Blit(x, y int, src View) {
	v.copy(x, y, src, draw.Src)
}

// Blend alpha-composites src over the view at (x, y), source-over, clipped
// to both.
func (v View) Blend(x, y int, src View) {
	v.copy(x, y, src, draw.Over)
}

func (v View) copy(x, y int, src View, op draw.Op) {
	sb := src.img.Bounds()
	dr := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Intersect(v.img.Bounds())
	if dr.Empty() {
		return
	}
	sp := sb.Min.Add(dr.Min.Sub(image.Pt(x, y)))
	op.Draw(v.img, dr, src.img, sp)
}
