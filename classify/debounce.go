package classify

// Debounce suppresses glitches: it emits outputs[1] only once the predicate
// value has been seen threshold times in a row, and outputs[0] otherwise. Any
// other sample resets the run.
type Debounce[T comparable, U any] struct {
	predicate T
	threshold int
	outputs   [2]U
	count     int
}

// NewDebounce creates a debouncer that requires threshold consecutive
// occurrences of predicate.
func NewDebounce[T comparable, U any](predicate T, threshold int, outputs [2]U) (*Debounce[T, U], error) {
	if threshold < 1 {
		return nil, ErrInvalidConfig
	}

	return &Debounce[T, U]{predicate: predicate, threshold: threshold, outputs: outputs}, nil
}

// Filter classifies one sample. It always emits.
func (f *Debounce[T, U]) Filter(input T) (U, bool) {
	if input == f.predicate {
		if f.count < f.threshold {
			f.count++
		}
	} else {
		f.count = 0
	}

	if f.count >= f.threshold {
		return f.outputs[1], true
	}

	return f.outputs[0], true
}

// Reset clears the run counter.
func (f *Debounce[T, U]) Reset() {
	f.count = 0
}
