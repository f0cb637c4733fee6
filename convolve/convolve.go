// Package convolve provides a streaming FIR convolution filter and
// Savitzky-Golay smoothing presets. Each incoming sample slides the window
// one step and produces one output sample, so the filter runs in O(taps) per
// call without ever looking ahead.
package convolve

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stream/ringbuf"
)

// ErrNoCoefficients is returned by NewConvolve for an empty kernel.
var ErrNoCoefficients = errors.New("convolve: at least one coefficient required")

// Convolve is a streaming FIR filter. The first sample pads the entire
// window, so the warm-up phase behaves as if the signal had been constant
// before it started.
type Convolve struct {
	taps     *ringbuf.Ring[float64]
	reversed []float64 // kernel flipped once, for a straight dot product
	scratch  []float64
	warmed   bool
}

// NewConvolve creates a streaming convolution with the given kernel. The
// first coefficient weighs the newest sample.
func NewConvolve(coefficients []float64) (*Convolve, error) {
	if len(coefficients) == 0 {
		return nil, ErrNoCoefficients
	}

	taps, err := ringbuf.New[float64](len(coefficients))
	if err != nil {
		return nil, err
	}

	n := len(coefficients)
	reversed := make([]float64, n)
	for i, c := range coefficients {
		reversed[n-1-i] = c
	}

	return &Convolve{
		taps:     taps,
		reversed: reversed,
		scratch:  make([]float64, n),
	}, nil
}

// Len returns the kernel length.
func (c *Convolve) Len() int {
	return len(c.reversed)
}

// Filter feeds one sample and returns the convolution of the current window
// with the kernel. It always emits.
func (c *Convolve) Filter(input float64) (float64, bool) {
	if !c.warmed {
		for !c.taps.Full() {
			c.taps.PushBack(input)
		}
		c.warmed = true
	} else {
		c.taps.PushBack(input)
	}

	i := 0
	for v := range c.taps.Values() {
		c.scratch[i] = v
		i++
	}

	return vecmath.DotProduct(c.scratch, c.reversed), true
}

// Reset restores the filter to its freshly constructed state.
func (c *Convolve) Reset() {
	c.taps.Clear()
	c.warmed = false
}
