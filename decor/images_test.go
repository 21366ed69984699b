package decor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoadBlankPathYieldsPlaceholder(t *testing.T) {
	img := loadOne("", zap.NewNop())
	assert.Equal(t, 0, img.Bounds().W)
	assert.Equal(t, 0, img.Bounds().H)
}

func TestLoadMissingFileYieldsPlaceholder(t *testing.T) {
	img := loadOne("/no/such/file.png", zap.NewNop())
	assert.Equal(t, 0, img.Bounds().W)
	assert.Equal(t, 0, img.Bounds().H)
}

func TestLoadDegradesEveryMissingAsset(t *testing.T) {
	images := Load(Paths{}, zap.NewNop())
	assert.Equal(t, 0, images.CloseFocused.Bounds().W)
	assert.Equal(t, 0, images.CloseUnfocused.Bounds().W)
	assert.Equal(t, 0, images.Minimize.Bounds().W)
	assert.Equal(t, 0, images.Cursor.Bounds().W)
}
