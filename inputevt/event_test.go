package inputevt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	e := Mouse(42, -7, ButtonLeft|ButtonRight)
	buf := e.Marshal()
	require.Len(t, buf, Size)

	got, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalShortBuffer(t *testing.T) {
	_, err := Unmarshal(make([]byte, Size-1))
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestButtonMaskHas(t *testing.T) {
	b := ButtonLeft | ButtonMiddle
	assert.True(t, b.Has(ButtonLeft))
	assert.True(t, b.Has(ButtonMiddle))
	assert.False(t, b.Has(ButtonRight))
}

func TestKeyAccessors(t *testing.T) {
	e := Key(ModifierScancode, true)
	assert.Equal(t, int64(ModifierScancode), e.Scancode())
	assert.True(t, e.Pressed())
}
