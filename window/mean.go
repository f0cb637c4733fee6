package window

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/ringbuf"
)

// Mean computes the moving average of the most recent samples, over a
// fixed-size sliding window. A running sum keeps each call O(1); the sample
// that leaves the window is subtracted as the new one is added.
type Mean[T constraints.Float] struct {
	taps *ringbuf.Ring[T]
	sum  T
}

// NewMean creates a moving-average filter over a window of the given size.
func NewMean[T constraints.Float](size int) (*Mean[T], error) {
	if size < 1 {
		return nil, ErrInvalidWindow
	}

	taps, err := ringbuf.New[T](size)
	if err != nil {
		return nil, err
	}

	return &Mean[T]{taps: taps}, nil
}

// Filter feeds one sample and returns the mean of the window. During warm-up
// the mean covers only the samples seen so far. It always emits.
func (m *Mean[T]) Filter(input T) (T, bool) {
	if m.taps.Full() {
		evicted, _ := m.taps.PopFront()
		m.sum -= evicted
	}

	m.taps.PushBack(input)
	m.sum += input

	return m.sum / T(m.taps.Len()), true
}

// Reset restores the filter to its freshly constructed state.
func (m *Mean[T]) Reset() {
	m.taps.Clear()
	m.sum = 0
}
