package stat

import (
	"golang.org/x/exp/constraints"
)

// Summary is the terminal snapshot of a Statistics sink.
type Summary[T constraints.Float] struct {
	Count    uint64
	Min      T
	Max      T
	Mean     T
	Variance T
	StdDev   T
}

// Statistics accumulates count, bounds, mean and variance in a single pass.
// The zero value is an empty accumulator, ready to use.
type Statistics[T constraints.Float] struct {
	moments MeanVariance[T]
	min     T
	max     T
}

// Update feeds one sample into the accumulator.
func (s *Statistics[T]) Update(x T) {
	if s.moments.Count() == 0 {
		s.min = x
		s.max = x
	} else {
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}
	s.moments.Update(x)
}

// Sink feeds one sample.
func (s *Statistics[T]) Sink(input T) {
	s.Update(input)
}

// Count returns the number of samples seen.
func (s *Statistics[T]) Count() uint64 {
	return s.moments.Count()
}

// Min returns the smallest sample seen so far.
func (s *Statistics[T]) Min() (T, error) {
	if s.moments.Count() < 1 {
		return 0, ErrInsufficientSamples
	}

	return s.min, nil
}

// Max returns the largest sample seen so far.
func (s *Statistics[T]) Max() (T, error) {
	if s.moments.Count() < 1 {
		return 0, ErrInsufficientSamples
	}

	return s.max, nil
}

// Mean returns the arithmetic mean of the samples seen so far.
func (s *Statistics[T]) Mean() (T, error) {
	return s.moments.Mean()
}

// Variance returns the sample variance of the samples seen so far.
func (s *Statistics[T]) Variance() (T, error) {
	return s.moments.Variance()
}

// Reset empties the accumulator.
func (s *Statistics[T]) Reset() {
	*s = Statistics[T]{}
}

// Finalize returns the terminal snapshot.
func (s *Statistics[T]) Finalize() Summary[T] {
	m := s.moments.Finalize()
	sd, _ := s.moments.StdDev()

	return Summary[T]{
		Count:    m.Count,
		Min:      s.min,
		Max:      s.max,
		Mean:     m.Mean,
		Variance: m.Variance,
		StdDev:   sd,
	}
}
