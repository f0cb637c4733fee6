package smooth

import (
	"golang.org/x/exp/constraints"
)

// MedianConfig holds the three smoothing coefficients of the approximated
// median, each in (0, 1]. Recommended: Alpha = Beta, Gamma = Beta/2.
type MedianConfig[T constraints.Float] struct {
	// Alpha smooths the incoming signal into a mean estimate.
	Alpha T
	// Beta blends the mean estimate into the median approximation.
	Beta T
	// Gamma smooths the oscillation out of the approximation.
	Gamma T
}

// Median approximates the streaming median in O(1) time and space: an
// exponential mean estimates the central tendency, a second blend approaches
// the median, and a final mean damps the oscillation the blend introduces.
type Median[T constraints.Float] struct {
	cfg    MedianConfig[T]
	pre    Mean[T]
	post   Mean[T]
	median T
	seeded bool
}

// NewMedian creates an approximated median filter from cfg.
func NewMedian[T constraints.Float](cfg MedianConfig[T]) (*Median[T], error) {
	pre, err := NewMean(cfg.Alpha)
	if err != nil {
		return nil, err
	}
	if cfg.Beta <= 0 || cfg.Beta > 1 {
		return nil, ErrInvalidCoefficient
	}
	post, err := NewMean(cfg.Gamma)
	if err != nil {
		return nil, err
	}

	return &Median[T]{cfg: cfg, pre: *pre, post: *post}, nil
}

// Filter feeds one sample and returns the approximated median. It always
// emits.
func (m *Median[T]) Filter(input T) (T, bool) {
	mean, _ := m.pre.Filter(input)

	median := mean
	if m.seeded {
		median = m.median + (mean-m.median)*m.cfg.Beta
	}

	out, _ := m.post.Filter(median)
	m.median = out
	m.seeded = true

	return out, true
}

// Reset restores the filter to its freshly constructed state.
func (m *Median[T]) Reset() {
	m.pre.Reset()
	m.post.Reset()
	m.median = 0
	m.seeded = false
}
