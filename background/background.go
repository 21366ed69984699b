// Package background implements the compositor's background image stack:
// loading a configured list of files or directories, resizing each per the
// selected Mode, and serving the active one. Resizing uses
// github.com/nfnt/resize with the Lanczos3 resampling filter.
package background

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/nfnt/resize"
	"github.com/orbitald/compositor/raster"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Mode selects how a background image is fit to the display.
type Mode int

const (
	Center Mode = iota
	Fill
	Scale
	Zoom
)

// ModeFromString parses the background mode token; any unrecognized value
// (including the empty string) is treated as Center.
func ModeFromString(s string) Mode {
	switch s {
	case "fill":
		return Fill
	case "scale":
		return Scale
	case "zoom":
		return Zoom
	default:
		return Center
	}
}

// Stack holds the loaded, pre-resized background images and which one is
// active.
type Stack struct {
	images []*raster.Buffer
	active int
}

// Len returns the number of loaded backgrounds.
func (s *Stack) Len() int { return len(s.images) }

// Active returns the currently selected background, or nil if the stack is
// empty.
func (s *Stack) Active() *raster.Buffer {
	if len(s.images) == 0 {
		return nil
	}
	return s.images[s.active%len(s.images)]
}

// Advance moves to the next background, wrapping modulo the stack length.
func (s *Stack) Advance() {
	if len(s.images) == 0 {
		return
	}
	s.active = (s.active + 1) % len(s.images)
}

// Load expands configs (files or directories, sorted lexically once
// expanded), decodes each image and resizes it to fit (displayW, displayH)
// under mode. Entries that fail to open or decode are logged and skipped,
// shrinking the background list rather than failing startup.
func Load(configs []string, mode Mode, displayW, displayH int, log *zap.Logger) *Stack {
	paths := expandPaths(configs)
	sort.Strings(paths)

	s := &Stack{}
	for _, p := range paths {
		img, err := decode(p)
		if err != nil {
			log.Warn("background: skipping image", zap.String("path", p), zap.Error(err))
			continue
		}
		s.images = append(s.images, resizeToMode(img, mode, displayW, displayH))
	}
	return s
}

func expandPaths(configs []string) []string {
	var out []string
	for _, c := range configs {
		info, err := os.Stat(c)
		if err != nil {
			continue
		}
		if info.IsDir() {
			entries, err := os.ReadDir(c)
			if err != nil {
				continue
			}
			for _, e := range entries {
				out = append(out, filepath.Join(c, e.Name()))
			}
			continue
		}
		out = append(out, c)
	}
	return out
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func resizeToMode(img image.Image, mode Mode, displayW, displayH int) *raster.Buffer {
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw == 0 || ih == 0 {
		return raster.NewBuffer(0, 0)
	}

	tw, th := targetSize(mode, displayW, displayH, iw, ih)
	if tw == iw && th == ih {
		return toBuffer(img)
	}

	resized := resize.Resize(uint(tw), uint(th), img, resize.Lanczos3)
	return toBuffer(resized)
}

// targetSize implements the four BackgroundMode fit formulas.
func targetSize(mode Mode, dw, dh, iw, ih int) (int, int) {
	switch mode {
	case Fill:
		return dw, dh
	case Scale:
		scale := scaleFactor(dw, dh, iw, ih, false)
		return int(float64(iw) * scale), int(float64(ih) * scale)
	case Zoom:
		scale := scaleFactor(dw, dh, iw, ih, true)
		return int(float64(iw) * scale), int(float64(ih) * scale)
	default: // Center
		return iw, ih
	}
}

// scaleFactor implements:
//
//	Scale: min(d_w/i_w, d_h/i_h), expressed as d_h/i_h if d_w/d_h > i_w/i_h else d_w/i_w
//	Zoom:  max(d_w/i_w, d_h/i_h), expressed as d_h/i_h if d_w/d_h < i_w/i_h else d_w/i_w
func scaleFactor(dw, dh, iw, ih int, zoom bool) float64 {
	dW, dH, iW, iH := float64(dw), float64(dh), float64(iw), float64(ih)
	displayAspectGreater := dW/dH > iW/iH
	useHeightScale := displayAspectGreater
	if zoom {
		useHeightScale = dW/dH < iW/iH
	}
	if useHeightScale {
		return dH / iH
	}
	return dW / iW
}

func toBuffer(img image.Image) *raster.Buffer {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Src.Draw(rgba, rgba.Bounds(), img, b.Min)
	return raster.FromRGBA(rgba)
}
