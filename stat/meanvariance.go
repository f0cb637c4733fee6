package stat

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrInsufficientSamples is returned when a summary is queried before enough
// samples arrived: the mean needs one, the variance needs two.
var ErrInsufficientSamples = errors.New("stat: insufficient samples")

// Moments is the terminal snapshot of a MeanVariance sink. With fewer than
// two samples Variance is zero; with none, Mean is zero too. Count tells the
// two cases apart.
type Moments[T constraints.Float] struct {
	Count    uint64
	Mean     T
	Variance T
}

// MeanVariance accumulates the running mean and variance of a stream using
// Welford's algorithm. The zero value is an empty accumulator, ready to use.
//
// Variance is the sample variance (divided by count-1).
type MeanVariance[T constraints.Float] struct {
	count uint64
	mean  T
	m2    T
}

// Update feeds one sample into the accumulator.
func (s *MeanVariance[T]) Update(x T) {
	s.count++
	delta := x - s.mean
	s.mean += delta / T(s.count)
	s.m2 += delta * (x - s.mean)
}

// Sink feeds one sample. It is Update under the name the stream package
// expects.
func (s *MeanVariance[T]) Sink(input T) {
	s.Update(input)
}

// Count returns the number of samples seen.
func (s *MeanVariance[T]) Count() uint64 {
	return s.count
}

// Mean returns the arithmetic mean of the samples seen so far.
func (s *MeanVariance[T]) Mean() (T, error) {
	if s.count < 1 {
		return 0, ErrInsufficientSamples
	}

	return s.mean, nil
}

// Variance returns the sample variance of the samples seen so far. At least
// two samples are required.
func (s *MeanVariance[T]) Variance() (T, error) {
	if s.count < 2 {
		return 0, ErrInsufficientSamples
	}

	return s.m2 / T(s.count-1), nil
}

// StdDev returns the sample standard deviation.
func (s *MeanVariance[T]) StdDev() (T, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}

	return T(math.Sqrt(float64(v))), nil
}

// Reset empties the accumulator.
func (s *MeanVariance[T]) Reset() {
	*s = MeanVariance[T]{}
}

// Finalize returns the terminal snapshot.
func (s *MeanVariance[T]) Finalize() Moments[T] {
	m := Moments[T]{Count: s.count, Mean: s.mean}
	if s.count > 1 {
		m.Variance = s.m2 / T(s.count-1)
	}

	return m
}
