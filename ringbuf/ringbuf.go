// Package ringbuf implements a fixed-capacity, double-ended ring buffer. It is
// the backing container for every windowed filter in this module: capacity is
// fixed at construction, all operations are O(1), and nothing allocates after
// New returns.
//
// What happens when a full buffer is pushed into is a policy chosen at
// construction: the default overwrites (evicts) the element at the opposite
// end, which is what streaming filters want; WithRejectWhenFull opts into a
// strict ErrFull instead, for callers that must not lose samples silently.
package ringbuf

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidCapacity is returned by New for capacities below 1.
	ErrInvalidCapacity = errors.New("ringbuf: capacity must be at least 1")
	// ErrFull is returned by pushes into a full buffer under the reject policy.
	ErrFull = errors.New("ringbuf: buffer full")
	// ErrEmpty is returned by pops from an empty buffer.
	ErrEmpty = errors.New("ringbuf: buffer empty")
)

// Policy selects the behavior of a push into a full buffer.
type Policy int

const (
	// PolicyOverwrite evicts the element at the opposite end. The default.
	PolicyOverwrite Policy = iota
	// PolicyReject fails the push with ErrFull.
	PolicyReject
)

// Option mutates the buffer configuration at construction time.
type Option func(*config)

type config struct {
	policy Policy
}

// WithRejectWhenFull makes pushes into a full buffer fail with ErrFull
// instead of evicting the opposite end.
func WithRejectWhenFull() Option {
	return func(cfg *config) {
		cfg.policy = PolicyReject
	}
}

// Ring is a fixed-capacity double-ended ring buffer. The zero value is not
// usable; construct with New.
type Ring[T any] struct {
	data   []T
	start  int // index of the front element
	length int
	policy Policy
}

// New creates a ring buffer holding up to capacity elements. The backing
// storage is allocated once, here.
func New[T any](capacity int, opts ...Option) (*Ring[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Ring[T]{
		data:   make([]T, capacity),
		policy: cfg.policy,
	}, nil
}

// Len returns the number of live elements.
func (r *Ring[T]) Len() int { return r.length }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.data) }

// Empty reports whether the buffer holds no elements.
func (r *Ring[T]) Empty() bool { return r.length == 0 }

// Full reports whether the buffer is at capacity.
func (r *Ring[T]) Full() bool { return r.length == len(r.data) }

// PushBack appends v at the back. On a full buffer it evicts the front
// element (overwrite policy) or returns ErrFull (reject policy).
func (r *Ring[T]) PushBack(v T) error {
	if r.Full() {
		if r.policy == PolicyReject {
			return ErrFull
		}
		// The slot behind the back wraps onto the front.
		r.data[r.start] = v
		r.start = r.next(r.start)

		return nil
	}

	r.data[r.index(r.length)] = v
	r.length++

	return nil
}

// PushFront prepends v at the front. On a full buffer it evicts the back
// element (overwrite policy) or returns ErrFull (reject policy).
func (r *Ring[T]) PushFront(v T) error {
	if r.Full() {
		if r.policy == PolicyReject {
			return ErrFull
		}
		r.start = r.prev(r.start)
		r.data[r.start] = v

		return nil
	}

	r.start = r.prev(r.start)
	r.data[r.start] = v
	r.length++

	return nil
}

// PopFront removes and returns the front (oldest) element.
func (r *Ring[T]) PopFront() (T, error) {
	var zero T
	if r.length == 0 {
		return zero, ErrEmpty
	}

	v := r.data[r.start]
	r.data[r.start] = zero
	r.start = r.next(r.start)
	r.length--

	return v, nil
}

// PopBack removes and returns the back (newest) element.
func (r *Ring[T]) PopBack() (T, error) {
	var zero T
	if r.length == 0 {
		return zero, ErrEmpty
	}

	i := r.index(r.length - 1)
	v := r.data[i]
	r.data[i] = zero
	r.length--

	return v, nil
}

// Front peeks at the oldest element without removing it.
func (r *Ring[T]) Front() (T, bool) {
	if r.length == 0 {
		var zero T
		return zero, false
	}

	return r.data[r.start], true
}

// Back peeks at the newest element without removing it.
func (r *Ring[T]) Back() (T, bool) {
	if r.length == 0 {
		var zero T
		return zero, false
	}

	return r.data[r.index(r.length-1)], true
}

// At returns the element at logical position i, where 0 is the front.
func (r *Ring[T]) At(i int) (T, bool) {
	if i < 0 || i >= r.length {
		var zero T
		return zero, false
	}

	return r.data[r.index(i)], true
}

// Clear removes all elements, zeroing the backing storage so that held
// references become collectable. Capacity and policy are unchanged.
func (r *Ring[T]) Clear() {
	clear(r.data)
	r.start = 0
	r.length = 0
}

// Values iterates the live elements in logical order, oldest first. The
// sequence is finite and restartable; the buffer must not be mutated while
// iterating.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.length {
			if !yield(r.data[r.index(i)]) {
				return
			}
		}
	}
}

// Backward iterates the live elements newest first.
func (r *Ring[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := r.length - 1; i >= 0; i-- {
			if !yield(r.data[r.index(i)]) {
				return
			}
		}
	}
}

func (r *Ring[T]) index(i int) int {
	return (r.start + i) % len(r.data)
}

func (r *Ring[T]) next(i int) int {
	if i++; i == len(r.data) {
		return 0
	}

	return i
}

func (r *Ring[T]) prev(i int) int {
	if i == 0 {
		return len(r.data) - 1
	}

	return i - 1
}
