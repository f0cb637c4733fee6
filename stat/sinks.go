package stat

import (
	"golang.org/x/exp/constraints"
)

// Min tracks the smallest sample seen. The zero value is ready to use;
// Finalize reports false if no sample arrived.
type Min[T constraints.Ordered] struct {
	value T
	seen  bool
}

// Sink feeds one sample.
func (s *Min[T]) Sink(input T) {
	if !s.seen || input < s.value {
		s.value = input
	}
	s.seen = true
}

// Finalize returns the minimum and whether any sample was seen.
func (s *Min[T]) Finalize() (T, bool) {
	return s.value, s.seen
}

// Max tracks the largest sample seen. The zero value is ready to use;
// Finalize reports false if no sample arrived.
type Max[T constraints.Ordered] struct {
	value T
	seen  bool
}

// Sink feeds one sample.
func (s *Max[T]) Sink(input T) {
	if !s.seen || input > s.value {
		s.value = input
	}
	s.seen = true
}

// Finalize returns the maximum and whether any sample was seen.
func (s *Max[T]) Finalize() (T, bool) {
	return s.value, s.seen
}

// Extrema is the terminal snapshot of a Bounds sink.
type Extrema[T constraints.Ordered] struct {
	Min T
	Max T
}

// Bounds tracks the smallest and largest samples seen.
type Bounds[T constraints.Ordered] struct {
	min Min[T]
	max Max[T]
}

// Sink feeds one sample.
func (s *Bounds[T]) Sink(input T) {
	s.min.Sink(input)
	s.max.Sink(input)
}

// Finalize returns both extrema and whether any sample was seen.
func (s *Bounds[T]) Finalize() (Extrema[T], bool) {
	lo, ok := s.min.Finalize()
	hi, _ := s.max.Finalize()

	return Extrema[T]{Min: lo, Max: hi}, ok
}

// Sum accumulates the total of all samples. The zero value is ready to use.
type Sum[T constraints.Integer | constraints.Float] struct {
	total T
}

// Sink feeds one sample.
func (s *Sum[T]) Sink(input T) {
	s.total += input
}

// Finalize returns the running total, zero if no sample arrived.
func (s *Sum[T]) Finalize() T {
	return s.total
}

// Last remembers the most recent sample. Finalize reports false if no sample
// arrived.
type Last[T any] struct {
	value T
	seen  bool
}

// Sink feeds one sample.
func (s *Last[T]) Sink(input T) {
	s.value = input
	s.seen = true
}

// Finalize returns the last sample and whether any sample was seen.
func (s *Last[T]) Finalize() (T, bool) {
	return s.value, s.seen
}

// Collect appends every sample to a slice. It is the one sink in this package
// that allocates while sinking.
type Collect[T any] struct {
	values []T
}

// Sink feeds one sample.
func (s *Collect[T]) Sink(input T) {
	s.values = append(s.values, input)
}

// Finalize returns the collected samples in arrival order.
func (s *Collect[T]) Finalize() []T {
	return s.values
}
