// Package sources provides signal generators and source combinators for
// driving pipelines: finite slices, constants, ramps, and wrappers that
// truncate, skip, repeat, cycle, concatenate, or pad another source.
package sources

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream"
)

// Slice emits the elements of a slice in order, then ends.
type Slice[T any] struct {
	values []T
	next   int
}

// NewSlice creates a source over values. The slice is not copied.
func NewSlice[T any](values []T) *Slice[T] {
	return &Slice[T]{values: values}
}

// Source emits the next element.
func (s *Slice[T]) Source() (T, bool) {
	if s.next >= len(s.values) {
		var zero T
		return zero, false
	}

	v := s.values[s.next]
	s.next++

	return v, true
}

// Constant emits the same value forever.
type Constant[T any] struct {
	value T
}

// NewConstant creates an endless source of value.
func NewConstant[T any](value T) *Constant[T] {
	return &Constant[T]{value: value}
}

// Source emits the constant.
func (s *Constant[T]) Source() (T, bool) {
	return s.value, true
}

// Increment emits an endless arithmetic ramp: the current value first, then
// stepped by the interval.
type Increment[T constraints.Integer | constraints.Float] struct {
	state    T
	interval T
}

// NewIncrement creates a ramp starting at start, growing by interval.
func NewIncrement[T constraints.Integer | constraints.Float](start, interval T) *Increment[T] {
	return &Increment[T]{state: start, interval: interval}
}

// Source emits the next ramp value.
func (s *Increment[T]) Source() (T, bool) {
	v := s.state
	s.state += s.interval

	return v, true
}

// Repeat emits one value a fixed number of times, then ends.
type Repeat[T any] struct {
	value T
	left  int
}

// NewRepeat creates a source of count copies of value.
func NewRepeat[T any](value T, count int) *Repeat[T] {
	return &Repeat[T]{value: value, left: count}
}

// Source emits the next copy.
func (s *Repeat[T]) Source() (T, bool) {
	if s.left <= 0 {
		var zero T
		return zero, false
	}
	s.left--

	return s.value, true
}

// Take truncates an inner source after count samples.
type Take[T any] struct {
	inner stream.Source[T]
	left  int
}

// NewTake wraps src, ending after at most count samples.
func NewTake[T any](src stream.Source[T], count int) *Take[T] {
	return &Take[T]{inner: src, left: count}
}

// Source emits the next sample while the budget lasts.
func (s *Take[T]) Source() (T, bool) {
	if s.left <= 0 {
		var zero T
		return zero, false
	}
	s.left--

	return s.inner.Source()
}

// Skip drops the first count samples of an inner source. The drop happens
// eagerly on the first pull.
type Skip[T any] struct {
	inner stream.Source[T]
	count int
}

// NewSkip wraps src, discarding its first count samples.
func NewSkip[T any](src stream.Source[T], count int) *Skip[T] {
	return &Skip[T]{inner: src, count: count}
}

// Source emits the next sample past the skipped prefix.
func (s *Skip[T]) Source() (T, bool) {
	for s.count > 0 {
		if _, ok := s.inner.Source(); !ok {
			break
		}
		s.count--
	}
	s.count = 0

	return s.inner.Source()
}

// Cycle endlessly replays a slice of values.
type Cycle[T any] struct {
	values []T
	next   int
}

// NewCycle creates an endless source cycling through values. An empty slice
// yields an immediately exhausted source.
func NewCycle[T any](values []T) *Cycle[T] {
	return &Cycle[T]{values: values}
}

// Source emits the next value, wrapping around at the end.
func (s *Cycle[T]) Source() (T, bool) {
	if len(s.values) == 0 {
		var zero T
		return zero, false
	}

	v := s.values[s.next]
	s.next++
	if s.next == len(s.values) {
		s.next = 0
	}

	return v, true
}

// Chain concatenates sources, draining each before starting the next.
type Chain[T any] struct {
	parts []stream.Source[T]
}

// NewChain creates a source that emits all of the first source, then all of
// the second, and so on.
func NewChain[T any](parts ...stream.Source[T]) *Chain[T] {
	return &Chain[T]{parts: parts}
}

// Source emits the next sample of the first non-exhausted part.
func (s *Chain[T]) Source() (T, bool) {
	for len(s.parts) > 0 {
		if v, ok := s.parts[0].Source(); ok {
			return v, true
		}
		s.parts = s.parts[1:]
	}

	var zero T
	return zero, false
}
