package observe

import (
	"golang.org/x/exp/constraints"
)

// AlphaBetaConfig holds the two fixed gains of an alpha-beta tracker. Larger
// gains track transients faster; smaller gains reject more noise. Values are
// typically tuned experimentally.
type AlphaBetaConfig[T constraints.Float] struct {
	// Alpha corrects the position estimate. Must lie in (0, 1].
	Alpha T
	// Beta corrects the velocity estimate. Must not be negative.
	Beta T
}

// AlphaBeta is a fixed-gain position/velocity tracker. Each step predicts the
// position forward by the current velocity and corrects both position and
// velocity by the measurement residual.
type AlphaBeta[T constraints.Float] struct {
	cfg      AlphaBetaConfig[T]
	value    T
	velocity T
	seeded   bool
}

// NewAlphaBeta creates an alpha-beta tracker from cfg.
func NewAlphaBeta[T constraints.Float](cfg AlphaBetaConfig[T]) (*AlphaBeta[T], error) {
	if cfg.Alpha <= 0 || cfg.Alpha > 1 || cfg.Beta < 0 {
		return nil, ErrInvalidConfig
	}

	return &AlphaBeta[T]{cfg: cfg}, nil
}

// Filter feeds one measurement and returns the corrected position estimate.
// It always emits. The first measurement seeds the position with zero
// velocity.
func (f *AlphaBeta[T]) Filter(input T) (T, bool) {
	if !f.seeded {
		f.value = input
		f.seeded = true

		return f.value, true
	}

	predicted := f.value + f.velocity
	residual := input - predicted

	f.value = predicted + f.cfg.Alpha*residual
	f.velocity += f.cfg.Beta * residual

	return f.value, true
}

// Velocity returns the current velocity estimate.
func (f *AlphaBeta[T]) Velocity() T {
	return f.velocity
}

// Reset discards all state, keeping the configuration.
func (f *AlphaBeta[T]) Reset() {
	f.value = 0
	f.velocity = 0
	f.seeded = false
}
