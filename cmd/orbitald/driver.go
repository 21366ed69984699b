package main

import (
	"github.com/orbitald/compositor/geom"
	"github.com/orbitald/compositor/inputevt"
	"github.com/orbitald/compositor/raster"
	"go.uber.org/zap"
)

// InputSource is the external collaborator that feeds the run loop input
// events. A real implementation reads from a kernel input transport; it is
// deliberately symmetrical with compositor.Display, the other half of the
// boundary the compositor core never crosses.
type InputSource interface {
	// Next blocks until an event is available, or returns ok=false once the
	// source is closed and will produce no more events.
	Next() (ev inputevt.Event, ok bool)
}

// loopbackDisplay implements compositor.Display by logging each flush
// instead of presenting pixels anywhere. It exists so orbitald runs end to
// end without a real display transport wired in, exercising the full
// redraw and damage-tracking path against a stand-in sink.
type loopbackDisplay struct {
	log    *zap.Logger
	frames int
}

func newLoopbackDisplay(log *zap.Logger) *loopbackDisplay {
	return &loopbackDisplay{log: log}
}

func (d *loopbackDisplay) Flush(fb *raster.Buffer, dirty []geom.Rect) error {
	d.frames++
	d.log.Debug("display: flush",
		zap.Int("frame", d.frames),
		zap.Int("dirty_rects", len(dirty)),
		zap.Int("fb_w", fb.Bounds().W),
		zap.Int("fb_h", fb.Bounds().H),
	)
	return nil
}

// loopbackInput is an InputSource fed programmatically via Push, standing
// in for a real input transport during local exercise. Closing it causes a
// pending or future Next to return ok=false so the run loop can exit
// cleanly.
type loopbackInput struct {
	events chan inputevt.Event
	closed chan struct{}
}

func newLoopbackInput() *loopbackInput {
	return &loopbackInput{
		events: make(chan inputevt.Event, 256),
		closed: make(chan struct{}),
	}
}

// Push enqueues ev for a future Next call. It is safe to call from any
// goroutine, unlike every compositor method, since the channel is the only
// thing crossing the boundary.
func (s *loopbackInput) Push(ev inputevt.Event) {
	select {
	case s.events <- ev:
	case <-s.closed:
	}
}

func (s *loopbackInput) Next() (inputevt.Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	case <-s.closed:
		return inputevt.Event{}, false
	}
}

// Close stops the source. It is safe to call more than once.
func (s *loopbackInput) Close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}
