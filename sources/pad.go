package sources

import (
	"github.com/cwbudde/algo-stream/stream"
)

// PadConstant surrounds an inner source with count copies of a fixed value on
// both sides. An empty inner source still yields both pads.
type PadConstant[T any] struct {
	inner stream.Source[T]
	value T
	front int
	back  int
	done  bool
}

// NewPadConstant wraps src, emitting count copies of value before and after
// it.
func NewPadConstant[T any](src stream.Source[T], value T, count int) *PadConstant[T] {
	return &PadConstant[T]{inner: src, value: value, front: count, back: count}
}

// Source emits the next padded sample.
func (s *PadConstant[T]) Source() (T, bool) {
	if s.front > 0 {
		s.front--
		return s.value, true
	}

	if !s.done {
		if v, ok := s.inner.Source(); ok {
			return v, true
		}
		s.done = true
	}

	if s.back > 0 {
		s.back--
		return s.value, true
	}

	var zero T
	return zero, false
}

// PadEdge surrounds an inner source with count copies of its first value
// before it and count copies of its last value after it. An empty inner
// source yields nothing at all.
type PadEdge[T any] struct {
	inner stream.Source[T]
	count int

	started bool
	done    bool
	front   int
	last    T
	back    int
}

// NewPadEdge wraps src, repeating its edge values count times on each side.
func NewPadEdge[T any](src stream.Source[T], count int) *PadEdge[T] {
	return &PadEdge[T]{inner: src, count: count}
}

// Source emits the next padded sample.
func (s *PadEdge[T]) Source() (T, bool) {
	if !s.started {
		s.started = true
		v, ok := s.inner.Source()
		if !ok {
			s.done = true
			var zero T
			return zero, false
		}
		s.front = s.count
		s.last = v

		return v, true
	}

	if s.front > 0 {
		s.front--
		return s.last, true
	}

	if !s.done {
		if v, ok := s.inner.Source(); ok {
			s.last = v
			return v, true
		}
		s.done = true
		s.back = s.count
	}

	if s.back > 0 {
		s.back--
		return s.last, true
	}

	var zero T
	return zero, false
}
