package classify

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidConfig is returned by constructors for degenerate configurations.
var ErrInvalidConfig = errors.New("classify: invalid config")

// Threshold classifies each sample against a fixed threshold.
// outputs[0] is emitted below the threshold, outputs[1] at or above it.
type Threshold[T constraints.Ordered, U any] struct {
	threshold T
	outputs   [2]U
}

// NewThreshold creates a threshold classifier.
func NewThreshold[T constraints.Ordered, U any](threshold T, outputs [2]U) *Threshold[T, U] {
	return &Threshold[T, U]{threshold: threshold, outputs: outputs}
}

// Filter classifies one sample. It always emits.
func (f *Threshold[T, U]) Filter(input T) (U, bool) {
	if input >= f.threshold {
		return f.outputs[1], true
	}

	return f.outputs[0], true
}

// Schmitt is a threshold classifier with hysteresis. While off, it switches
// on only above the high threshold; while on, it stays on down to the low
// threshold. outputs[0] is emitted while off, outputs[1] while on.
type Schmitt[T constraints.Ordered, U any] struct {
	low     T
	high    T
	outputs [2]U
	on      bool
}

// NewSchmitt creates a Schmitt trigger with the given hysteresis band. The
// low threshold must not exceed the high one.
func NewSchmitt[T constraints.Ordered, U any](low, high T, outputs [2]U) (*Schmitt[T, U], error) {
	if low > high {
		return nil, ErrInvalidConfig
	}

	return &Schmitt[T, U]{low: low, high: high, outputs: outputs}, nil
}

// Filter classifies one sample. It always emits.
func (f *Schmitt[T, U]) Filter(input T) (U, bool) {
	if f.on {
		f.on = input >= f.low
	} else {
		f.on = input > f.high
	}

	if f.on {
		return f.outputs[1], true
	}

	return f.outputs[0], true
}

// Reset switches the trigger off.
func (f *Schmitt[T, U]) Reset() {
	f.on = false
}
