package raster

import (
	"image/color"
	"testing"

	"github.com/orbitald/compositor/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillClipsToBuffer(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Fill(geom.New(-5, -5, 10, 10), color.RGBA{R: 255, A: 255})
	assert.Equal(t, color.RGBA{R: 255, A: 255}, b.RGBA().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, b.RGBA().RGBAAt(6, 6))
}

func TestBlitIgnoresAlpha(t *testing.T) {
	dst := NewBuffer(4, 4)
	dst.Fill(geom.New(0, 0, 4, 4), color.RGBA{R: 10, G: 10, B: 10, A: 255})

	src := NewBuffer(2, 2)
	src.Fill(geom.New(0, 0, 2, 2), color.RGBA{R: 200, G: 0, B: 0, A: 0})

	dst.Blit(1, 1, src)
	require.Equal(t, color.RGBA{R: 200, G: 0, B: 0, A: 0}, dst.RGBA().RGBAAt(1, 1))
}

func TestBlendComposites(t *testing.T) {
	dst := NewBuffer(2, 2)
	dst.Fill(geom.New(0, 0, 2, 2), color.RGBA{R: 0, G: 0, B: 0, A: 255})

	src := NewBuffer(2, 2)
	src.Fill(geom.New(0, 0, 2, 2), color.RGBA{R: 255, G: 255, B: 255, A: 255})

	dst.Blend(0, 0, src)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, dst.RGBA().RGBAAt(0, 0))
}

func TestROIWritesBackToParent(t *testing.T) {
	b := NewBuffer(10, 10)
	roi := b.ROI(geom.New(2, 2, 4, 4))
	roi.Fill(geom.New(2, 2, 4, 4), color.RGBA{G: 255, A: 255})
	assert.Equal(t, color.RGBA{G: 255, A: 255}, b.RGBA().RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, b.RGBA().RGBAAt(0, 0))
}

func TestBlitClippedWhenPartiallyOffBuffer(t *testing.T) {
	dst := NewBuffer(4, 4)
	src := NewBuffer(4, 4)
	src.Fill(geom.New(0, 0, 4, 4), color.RGBA{B: 255, A: 255})

	dst.Blit(2, 2, src)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, dst.RGBA().RGBAAt(3, 3))
}
