// Package redraw implements a dirty-region coalescing scheduler: a
// one-pass heuristic that merges a new rectangle into an existing one when
// doing so does not increase total redraw cost, and otherwise appends it.
package redraw

import "github.com/orbitald/compositor/geom"

// Scheduler accumulates damage rectangles between flushes. It is not safe
// for concurrent use; the compositor runs a single-threaded cooperative
// model and Scheduler is called only from that one goroutine.
type Scheduler struct {
	pending []geom.Rect
}

// New returns an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Schedule coalesces r into the pending set. For each existing rectangle e,
// if the bounding union of e and r costs no more area to redraw than e and r
// redrawn separately, e is replaced by the union and no new entry is added.
// Otherwise r is appended. Order is not observable and duplicates are
// harmless.
func (s *Scheduler) Schedule(r geom.Rect) {
	if r.Empty() {
		return
	}
	for i, e := range s.pending {
		u := e.Container(r)
		if u.Area() <= e.Area()+r.Area() {
			s.pending[i] = u
			return
		}
	}
	s.pending = append(s.pending, r)
}

// Drain returns every pending rectangle and resets the scheduler to empty.
func (s *Scheduler) Drain() []geom.Rect {
	out := s.pending
	s.pending = nil
	return out
}

// Len reports how many rectangles are currently pending, mostly useful for
// tests and diagnostics.
func (s *Scheduler) Len() int {
	return len(s.pending)
}
