package winstack

import (
	"testing"

	"github.com/orbitald/compositor/inputevt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnboundedQueueNeverDrops(t *testing.T) {
	q := newEventQueue(false)
	for i := 0; i < asyncQueueCap+50; i++ {
		q.Push(inputevt.Key(1, true))
	}
	assert.Equal(t, asyncQueueCap+50, q.Len())
}

func TestBoundedQueueDropsOldestMotionFirst(t *testing.T) {
	q := newEventQueue(true)
	q.Push(inputevt.Mouse(0, 0, 0)) // first mouse event, not "motion" (no prior state)
	for i := 1; i < asyncQueueCap; i++ {
		q.Push(inputevt.Mouse(int64(i), int64(i), 0)) // same buttons => motion
	}
	require.Equal(t, asyncQueueCap, q.Len())

	key := inputevt.Key(inputevt.ModifierScancode, true)
	q.Push(key)
	assert.Equal(t, asyncQueueCap, q.Len())

	// The key event itself must survive since a motion sample was evicted
	// to make room for it.
	found := false
	for !q.Empty() {
		if e := q.Pop(); e == key {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBoundedQueueDropsOldestWhenNoMotionAvailable(t *testing.T) {
	q := newEventQueue(true)
	for i := 0; i < asyncQueueCap; i++ {
		q.Push(inputevt.Key(int64(i), true))
	}
	first := inputevt.Key(0, true)
	q.Push(inputevt.Key(999, true))

	require.Equal(t, asyncQueueCap, q.Len())
	assert.NotEqual(t, first, q.Pop())
}

func TestPopOrderIsFIFO(t *testing.T) {
	q := newEventQueue(false)
	a := inputevt.Key(1, true)
	b := inputevt.Key(2, true)
	q.Push(a)
	q.Push(b)
	assert.Equal(t, a, q.Pop())
	assert.Equal(t, b, q.Pop())
}
