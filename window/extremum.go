package window

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/ringbuf"
)

// ErrInvalidWindow is returned by constructors for window sizes below 1.
var ErrInvalidWindow = errors.New("window: size must be at least 1")

type entry[T any] struct {
	value T
	index uint64
}

// extremum is the shared monotonic-deque core of Min and Max. The deque holds
// candidates in window order; dominates reports whether an incoming sample
// makes a resident candidate irrelevant.
type extremum[T constraints.Ordered] struct {
	taps      *ringbuf.Ring[entry[T]]
	size      uint64
	time      uint64
	dominates func(incoming, resident T) bool
}

func newExtremum[T constraints.Ordered](size int, dominates func(incoming, resident T) bool) (extremum[T], error) {
	if size < 1 {
		return extremum[T]{}, ErrInvalidWindow
	}

	taps, err := ringbuf.New[entry[T]](size)
	if err != nil {
		return extremum[T]{}, err
	}

	return extremum[T]{
		taps:      taps,
		size:      uint64(size),
		dominates: dominates,
	}, nil
}

func (e *extremum[T]) filter(input T) T {
	now := e.time

	// Evict candidates that fell out of the window.
	for {
		front, ok := e.taps.Front()
		if !ok || front.index+e.size > now {
			break
		}
		e.taps.PopFront()
	}

	// Strictly dominated candidates can never be reported again. Ties are
	// kept, so the oldest of equal extrema wins.
	for {
		back, ok := e.taps.Back()
		if !ok || !e.dominates(input, back.value) {
			break
		}
		e.taps.PopBack()
	}

	e.taps.PushBack(entry[T]{value: input, index: now})
	e.time++

	front, _ := e.taps.Front()

	return front.value
}

func (e *extremum[T]) reset() {
	e.taps.Clear()
	e.time = 0
}

// Min reports the minimum of the most recent samples, over a fixed-size
// sliding window.
type Min[T constraints.Ordered] struct {
	core extremum[T]
}

// NewMin creates a moving-minimum filter over a window of the given size.
func NewMin[T constraints.Ordered](size int) (*Min[T], error) {
	core, err := newExtremum[T](size, func(incoming, resident T) bool {
		return incoming < resident
	})
	if err != nil {
		return nil, err
	}

	return &Min[T]{core: core}, nil
}

// Filter feeds one sample and returns the window minimum. It always emits.
func (m *Min[T]) Filter(input T) (T, bool) {
	return m.core.filter(input), true
}

// Reset restores the filter to its freshly constructed state.
func (m *Min[T]) Reset() {
	m.core.reset()
}

// Max reports the maximum of the most recent samples, over a fixed-size
// sliding window.
type Max[T constraints.Ordered] struct {
	core extremum[T]
}

// NewMax creates a moving-maximum filter over a window of the given size.
func NewMax[T constraints.Ordered](size int) (*Max[T], error) {
	core, err := newExtremum[T](size, func(incoming, resident T) bool {
		return incoming > resident
	})
	if err != nil {
		return nil, err
	}

	return &Max[T]{core: core}, nil
}

// Filter feeds one sample and returns the window maximum. It always emits.
func (m *Max[T]) Filter(input T) (T, bool) {
	return m.core.filter(input), true
}

// Reset restores the filter to its freshly constructed state.
func (m *Max[T]) Reset() {
	m.core.reset()
}

// Range is a closed interval reported by Bounds.
type Range[T constraints.Ordered] struct {
	Min T
	Max T
}

// Bounds tracks the window minimum and maximum together.
type Bounds[T constraints.Ordered] struct {
	min *Min[T]
	max *Max[T]
}

// NewBounds creates a combined min/max filter over a window of the given size.
func NewBounds[T constraints.Ordered](size int) (*Bounds[T], error) {
	min, err := NewMin[T](size)
	if err != nil {
		return nil, err
	}
	max, err := NewMax[T](size)
	if err != nil {
		return nil, err
	}

	return &Bounds[T]{min: min, max: max}, nil
}

// Filter feeds one sample and returns the current window bounds.
func (b *Bounds[T]) Filter(input T) (Range[T], bool) {
	lo, _ := b.min.Filter(input)
	hi, _ := b.max.Filter(input)

	return Range[T]{Min: lo, Max: hi}, true
}

// Reset restores the filter to its freshly constructed state.
func (b *Bounds[T]) Reset() {
	b.min.Reset()
	b.max.Reset()
}
