package decor

import (
	"image"
	_ "image/png" // decoder for decoration and cursor assets
	"os"

	"github.com/orbitald/compositor/raster"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Images holds the decoration and cursor assets: the focused and unfocused
// close glyph and the cursor sprite, which the compositor blits each frame,
// and a minimize glyph, which is loaded but not drawn by the compositor.
type Images struct {
	CloseFocused   *raster.Buffer
	CloseUnfocused *raster.Buffer
	Minimize       *raster.Buffer
	Cursor         *raster.Buffer
}

// Paths configures where each Images asset is loaded from. A blank path, or
// a path that fails to load, substitutes a 0×0 placeholder: startup asset
// failures are logged and degrade gracefully rather than aborting.
type Paths struct {
	CloseFocused   string
	CloseUnfocused string
	Minimize       string
	Cursor         string
}

// Load reads every configured asset, logging a warning and substituting a
// 0×0 placeholder for any that are missing or fail to decode.
func Load(p Paths, log *zap.Logger) Images {
	return Images{
		CloseFocused:   loadOne(p.CloseFocused, log),
		CloseUnfocused: loadOne(p.CloseUnfocused, log),
		Minimize:       loadOne(p.Minimize, log),
		Cursor:         loadOne(p.Cursor, log),
	}
}

func loadOne(path string, log *zap.Logger) *raster.Buffer {
	if path == "" {
		return raster.NewBuffer(0, 0)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Warn("decor: failed to open image, using 0x0 placeholder", zap.String("path", path), zap.Error(err))
		return raster.NewBuffer(0, 0)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Warn("decor: failed to decode image, using 0x0 placeholder", zap.String("path", path), zap.Error(err))
		return raster.NewBuffer(0, 0)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(b)
		draw.Src.Draw(rgba, b, img, b.Min)
	}
	return raster.FromRGBA(rgba)
}
