package winstack

import (
	"testing"

	"github.com/orbitald/compositor/geom"
	"github.com/orbitald/compositor/inputevt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedRectsAreConsistent(t *testing.T) {
	w := New(1, 10, 20, 100, 50, "Hi", false, true)

	assert.Equal(t, 10, w.ClientRect().X)
	assert.Equal(t, 20, w.ClientRect().Y)
	assert.Equal(t, 100, w.ClientRect().W)
	assert.Equal(t, 50, w.ClientRect().H)

	assert.Equal(t, 20-TitleHeight, w.TitleRect().Y)
	assert.True(t, w.TitleRect().Right() >= w.ClientRect().Right())

	assert.Equal(t, w.ClientRect().Right(), w.RightBorderRect().X)
	assert.Equal(t, w.ClientRect().Bottom(), w.BottomBorderRect().Y)
}

func TestExitHotspotInsideTitleBar(t *testing.T) {
	w := New(1, 10, 20, 100, 50, "Hi", false, true)
	exit := w.ExitRect()
	title := w.TitleRect()
	assert.True(t, exit.X >= title.X)
	assert.True(t, exit.Right() <= title.Right())
	assert.True(t, exit.Y >= title.Y)
	assert.True(t, exit.Bottom() <= title.Bottom())
}

func TestSetTitleHandlesEmpty(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "", false, false)
	require.NotNil(t, w.TitleImage())
	w.SetTitle("hello")
	assert.Equal(t, "hello", w.Title)
}

func TestSetSizeIgnoresNonPositive(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "x", false, true)
	w.SetSize(0, 5)
	assert.Equal(t, 10, w.Width)
	w.SetSize(30, 40)
	assert.Equal(t, 30, w.Width)
	assert.Equal(t, 40, w.Height)
	assert.Equal(t, geom.New(0, 0, 30, 40), w.ClientBuffer().Bounds())
}

func TestEnqueueDequeueFIFO(t *testing.T) {
	w := New(1, 0, 0, 10, 10, "x", false, true)
	w.Enqueue(inputevt.Key(1, true))
	w.Enqueue(inputevt.Key(2, true))
	require.True(t, w.HasEvents())
	got := w.DequeueAll()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Scancode())
	assert.Equal(t, int64(2), got[1].Scancode())
	assert.False(t, w.HasEvents())
}
