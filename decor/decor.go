// Package decor renders the compositor's non-client decorations: title bar
// text and the window-switcher overlay. It uses the bundled bitmap font
// golang.org/x/image/font/inconsolata, a fixed 16-pixel-tall face, through a
// font.Drawer, mirroring how shiny/widget/text.go draws label text.
package decor

import (
	"image"
	"image/color"

	"github.com/orbitald/compositor/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Face is the bundled font face used for all text the compositor draws.
var Face font.Face = inconsolata.Regular8x16

// TextHeight is the pixel line height of Face.
const TextHeight = 16

// TextWidth returns the rendered pixel width of s in Face.
func TextWidth(s string) int {
	d := font.Drawer{Face: Face}
	return d.MeasureString(s).Ceil()
}

// RenderText rasterizes s in fg on a transparent background. The buffer is
// as wide as the text (at least 1px) and TextHeight+4 pixels tall, with the
// baseline at y=TextHeight, so ascenders and descenders are not clipped.
func RenderText(s string, fg color.Color) *raster.Buffer {
	w := TextWidth(s)
	if w < 1 {
		w = 1
	}
	h := TextHeight + 4
	buf := raster.NewBuffer(w, h)
	d := &font.Drawer{
		Dst:  buf.RGBA(),
		Src:  image.NewUniform(fg),
		Face: Face,
		Dot:  fixed.P(0, TextHeight),
	}
	d.DrawString(s)
	return buf
}
