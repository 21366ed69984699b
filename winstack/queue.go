package winstack

import "github.com/orbitald/compositor/inputevt"

// asyncQueueCap bounds the event queue of an async window, dropping the
// oldest pure-motion mouse sample first to make room: a stale mouse
// position is the cheapest event to lose, which preserves button, key and
// focus transitions under pressure.
const asyncQueueCap = 256

type queuedEvent struct {
	ev     inputevt.Event
	motion bool // true if this is a mouse sample with no button-state change
}

// eventQueue is a FIFO of pending events for one window. Non-async windows
// are unbounded; async windows are capped at asyncQueueCap.
type eventQueue struct {
	items       []queuedEvent
	bounded     bool
	lastButtons inputevt.MouseButtons
	haveLast    bool
}

func newEventQueue(bounded bool) *eventQueue {
	return &eventQueue{bounded: bounded}
}

// Push enqueues ev, evicting a queued motion sample if the queue is bounded
// and full. It never blocks and never silently drops a non-motion event
// unless the queue is entirely full of non-motion events.
func (q *eventQueue) Push(ev inputevt.Event) {
	motion := false
	if ev.Code == inputevt.CodeMouse {
		buttons := ev.Buttons()
		motion = q.haveLast && buttons == q.lastButtons
		q.lastButtons = buttons
		q.haveLast = true
	}

	if q.bounded && len(q.items) >= asyncQueueCap {
		if !q.evictOldestMotion() {
			// No motion sample to evict; drop the oldest event outright.
			q.items = q.items[1:]
		}
	}
	q.items = append(q.items, queuedEvent{ev: ev, motion: motion})
}

func (q *eventQueue) evictOldestMotion() bool {
	for i, it := range q.items {
		if it.motion {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Empty reports whether the queue currently holds no events.
func (q *eventQueue) Empty() bool { return len(q.items) == 0 }

// Pop removes and returns the oldest event. It panics if the queue is
// empty; callers must check Empty first.
func (q *eventQueue) Pop() inputevt.Event {
	it := q.items[0]
	q.items = q.items[1:]
	return it.ev
}

// Len reports the number of pending events.
func (q *eventQueue) Len() int { return len(q.items) }
