package classify

import (
	"golang.org/x/exp/constraints"
)

type slope int

const (
	slopeNone slope = iota
	slopeRising
	slopeFalling
)

// Slopes classifies each sample by its direction relative to the previous
// one: outputs[0] for rising, outputs[1] for flat, outputs[2] for falling.
// The first sample, having no predecessor, is flat.
type Slopes[T constraints.Ordered, U any] struct {
	outputs [3]U
	prev    T
	seeded  bool
}

// NewSlopes creates a slope classifier.
func NewSlopes[T constraints.Ordered, U any](outputs [3]U) *Slopes[T, U] {
	return &Slopes[T, U]{outputs: outputs}
}

func (f *Slopes[T, U]) classify(input T) slope {
	if !f.seeded {
		f.prev = input
		f.seeded = true

		return slopeNone
	}

	var s slope
	switch {
	case f.prev < input:
		s = slopeRising
	case f.prev > input:
		s = slopeFalling
	}
	f.prev = input

	return s
}

// Filter classifies one sample. It always emits.
func (f *Slopes[T, U]) Filter(input T) (U, bool) {
	switch f.classify(input) {
	case slopeRising:
		return f.outputs[0], true
	case slopeFalling:
		return f.outputs[2], true
	default:
		return f.outputs[1], true
	}
}

// Reset forgets the previous sample.
func (f *Slopes[T, U]) Reset() {
	var zero T
	f.prev = zero
	f.seeded = false
}

// Peaks classifies each sample as a local extremum of the stream: outputs[0]
// at a local maximum (the slope turned from rising to falling), outputs[2] at
// a local minimum (falling to rising), outputs[1] everywhere else. A plateau
// between two slopes breaks the turn, so broad peaks report nothing.
type Peaks[T constraints.Ordered, U any] struct {
	slopes  Slopes[T, struct{}]
	outputs [3]U
	prev    slope
}

// NewPeaks creates a peak classifier.
func NewPeaks[T constraints.Ordered, U any](outputs [3]U) *Peaks[T, U] {
	return &Peaks[T, U]{outputs: outputs, prev: slopeNone}
}

// Filter classifies one sample. It always emits.
func (f *Peaks[T, U]) Filter(input T) (U, bool) {
	s := f.slopes.classify(input)

	index := 1
	switch {
	case f.prev == slopeRising && s == slopeFalling:
		index = 0
	case f.prev == slopeFalling && s == slopeRising:
		index = 2
	}
	f.prev = s

	return f.outputs[index], true
}

// Reset forgets all slope history.
func (f *Peaks[T, U]) Reset() {
	f.slopes.Reset()
	f.prev = slopeNone
}
