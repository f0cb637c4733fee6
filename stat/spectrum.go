package stat

import (
	"errors"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stream/ringbuf"
)

// ErrInvalidSpectrumSize is returned by NewSpectrum for sizes that are not a
// positive power of two.
var ErrInvalidSpectrumSize = errors.New("stat: spectrum size must be a positive power of two")

// Spectrum is a sink that keeps the most recent samples in a fixed window and
// produces their magnitude spectrum on demand. The FFT plan and all buffers
// are allocated once at construction.
type Spectrum struct {
	taps *ringbuf.Ring[float64]
	plan *algofft.Plan[complex128]
	time []complex128
	freq []complex128
	re   []float64
	im   []float64
}

// NewSpectrum creates a spectrum sink over a window of the given size, which
// must be a power of two.
func NewSpectrum(size int) (*Spectrum, error) {
	if size < 1 || size&(size-1) != 0 {
		return nil, ErrInvalidSpectrumSize
	}

	taps, err := ringbuf.New[float64](size)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, err
	}

	bins := size/2 + 1

	return &Spectrum{
		taps: taps,
		plan: plan,
		time: make([]complex128, size),
		freq: make([]complex128, size),
		re:   make([]float64, bins),
		im:   make([]float64, bins),
	}, nil
}

// Sink feeds one sample into the window, evicting the oldest once full.
func (s *Spectrum) Sink(input float64) {
	s.taps.PushBack(input)
}

// Count returns the number of samples currently in the window.
func (s *Spectrum) Count() int {
	return s.taps.Len()
}

// Finalize transforms the current window and returns the one-sided magnitude
// spectrum, size/2+1 bins. A partially filled window is zero-padded. The
// returned slice is freshly allocated; internal buffers are reused.
func (s *Spectrum) Finalize() ([]float64, error) {
	i := 0
	for v := range s.taps.Values() {
		s.time[i] = complex(v, 0)
		i++
	}
	for ; i < len(s.time); i++ {
		s.time[i] = 0
	}

	if err := s.plan.Forward(s.freq, s.time); err != nil {
		return nil, err
	}

	for k := range s.re {
		s.re[k] = real(s.freq[k])
		s.im[k] = imag(s.freq[k])
	}

	mag := make([]float64, len(s.re))
	vecmath.Magnitude(mag, s.re, s.im)

	return mag, nil
}

// Reset empties the window.
func (s *Spectrum) Reset() {
	s.taps.Clear()
}
