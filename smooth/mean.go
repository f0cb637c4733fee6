package smooth

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidCoefficient is returned by constructors for smoothing
// coefficients outside (0, 1].
var ErrInvalidCoefficient = errors.New("smooth: coefficient must be in (0, 1]")

// Mean is an exponentially weighted moving average. Each sample pulls the
// estimate towards itself by the factor beta; the first sample seeds the
// estimate directly.
type Mean[T constraints.Float] struct {
	beta   T
	value  T
	seeded bool
}

// NewMean creates an exponential mean with smoothing coefficient beta.
// Larger beta follows the signal faster, smaller beta smooths harder.
func NewMean[T constraints.Float](beta T) (*Mean[T], error) {
	if beta <= 0 || beta > 1 {
		return nil, ErrInvalidCoefficient
	}

	return &Mean[T]{beta: beta}, nil
}

// Filter feeds one sample and returns the smoothed value. It always emits.
func (m *Mean[T]) Filter(input T) (T, bool) {
	if !m.seeded {
		m.value = input
		m.seeded = true
	} else {
		m.value += (input - m.value) * m.beta
	}

	return m.value, true
}

// Reset restores the filter to its freshly constructed state.
func (m *Mean[T]) Reset() {
	m.value = 0
	m.seeded = false
}

// MeanVariance tracks an exponential mean together with an exponential
// estimate of the signal's variance around it.
type MeanVariance[T constraints.Float] struct {
	mean     Mean[T]
	variance Mean[T]
	prev     T
	seeded   bool
}

// NewMeanVariance creates a combined mean/variance estimator with smoothing
// coefficient beta for both.
func NewMeanVariance[T constraints.Float](beta T) (*MeanVariance[T], error) {
	mean, err := NewMean(beta)
	if err != nil {
		return nil, err
	}
	variance, err := NewMean(beta)
	if err != nil {
		return nil, err
	}

	return &MeanVariance[T]{mean: *mean, variance: *variance}, nil
}

// Estimate is one output sample of a MeanVariance filter.
type Estimate[T constraints.Float] struct {
	Mean     T
	Variance T
}

// Filter feeds one sample and returns the current mean/variance estimate. It
// always emits.
//
// The variance term smooths the product of the sample's deviations from the
// previous and the updated mean, which is unbiased for an EWMA.
func (m *MeanVariance[T]) Filter(input T) (Estimate[T], bool) {
	old := m.prev
	if !m.seeded {
		old = input
		m.seeded = true
	}

	mean, _ := m.mean.Filter(input)
	variance, _ := m.variance.Filter((input - old) * (input - mean))
	m.prev = mean

	return Estimate[T]{Mean: mean, Variance: variance}, true
}

// Reset restores the filter to its freshly constructed state.
func (m *MeanVariance[T]) Reset() {
	m.mean.Reset()
	m.variance.Reset()
	m.prev = 0
	m.seeded = false
}
