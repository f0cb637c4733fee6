// Package delay provides a fixed-length sample delay line.
package delay

import (
	"errors"

	"github.com/cwbudde/algo-stream/ringbuf"
)

// ErrInvalidLength is returned by New for delays below 1 sample.
var ErrInvalidLength = errors.New("delay: length must be at least 1")

// Delay postpones every sample by a fixed number of steps. While the line is
// filling it emits nothing, so the output stream is exactly the input stream
// shifted, never padded.
type Delay[T any] struct {
	taps *ringbuf.Ring[T]
}

// New creates a delay line of the given length.
func New[T any](length int) (*Delay[T], error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}

	taps, err := ringbuf.New[T](length)
	if err != nil {
		return nil, err
	}

	return &Delay[T]{taps: taps}, nil
}

// Len returns the delay length in samples.
func (d *Delay[T]) Len() int {
	return d.taps.Cap()
}

// Filter feeds one sample. Once the line is full, each input releases the
// sample that entered Len() steps earlier; before that it emits nothing.
func (d *Delay[T]) Filter(input T) (T, bool) {
	if d.taps.Full() {
		out, _ := d.taps.PopFront()
		d.taps.PushBack(input)

		return out, true
	}

	d.taps.PushBack(input)

	var zero T
	return zero, false
}

// Reset empties the line.
func (d *Delay[T]) Reset() {
	d.taps.Clear()
}
