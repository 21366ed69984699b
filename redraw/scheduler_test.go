package redraw

import (
	"testing"

	"github.com/orbitald/compositor/geom"
	"github.com/stretchr/testify/assert"
)

func union(rs []geom.Rect) geom.Rect {
	var u geom.Rect
	for _, r := range rs {
		u = u.Container(r)
	}
	return u
}

func TestScheduleIdempotentCoverage(t *testing.T) {
	s := New()
	r := geom.New(10, 10, 5, 5)
	s.Schedule(r)
	s.Schedule(r)
	got := s.Drain()
	assert.Equal(t, r, union(got))
}

func TestScheduleOverlappingRectsCoverBoundingUnion(t *testing.T) {
	s := New()
	s.Schedule(geom.New(0, 0, 10, 10))
	s.Schedule(geom.New(5, 5, 10, 10))
	got := s.Drain()
	assert.Equal(t, geom.New(0, 0, 15, 15), union(got))
}

func TestScheduleCoverageUnionPreserved(t *testing.T) {
	s := New()
	rects := []geom.Rect{
		geom.New(0, 0, 5, 5),
		geom.New(100, 100, 5, 5),
		geom.New(3, 3, 5, 5),
	}
	for _, r := range rects {
		s.Schedule(r)
	}
	want := union(rects)
	got := union(s.Drain())
	assert.Equal(t, want, got)
}

func TestScheduleIgnoresEmptyRect(t *testing.T) {
	s := New()
	s.Schedule(geom.Rect{})
	assert.Equal(t, 0, s.Len())
}

func TestDrainEmptiesScheduler(t *testing.T) {
	s := New()
	s.Schedule(geom.New(0, 0, 1, 1))
	_ = s.Drain()
	assert.Equal(t, 0, s.Len())
}
