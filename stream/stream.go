package stream

import "iter"

// Source produces the next sample of a signal, or reports end-of-stream by
// returning false.
type Source[T any] interface {
	Source() (T, bool)
}

// Filter consumes one input sample and produces zero or one output sample,
// mutating its private state. Returning false means "no output for this
// input", which is expected behavior for stages that are still warming up.
type Filter[T, U any] interface {
	Filter(input T) (U, bool)
}

// Sink consumes one sample, accumulating internal state.
type Sink[T any] interface {
	Sink(input T)
}

// Finalizer extracts a terminal summary value, typically once a Sink's input
// stream has ended.
type Finalizer[R any] interface {
	Finalize() R
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[T any] func() (T, bool)

// Source calls f.
func (f SourceFunc[T]) Source() (T, bool) { return f() }

// FilterFunc adapts a function to the Filter interface.
type FilterFunc[T, U any] func(T) (U, bool)

// Filter calls f.
func (f FilterFunc[T, U]) Filter(input T) (U, bool) { return f(input) }

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[T any] func(T)

// Sink calls f.
func (f SinkFunc[T]) Sink(input T) { f(input) }

// Map lifts a total transform into a Filter that always emits.
func Map[T, U any](fn func(T) U) FilterFunc[T, U] {
	return func(input T) (U, bool) {
		return fn(input), true
	}
}

// Attach fuses a source and a filter into a new source. Inputs for which the
// filter emits nothing are skipped transparently; the fused source ends when
// the underlying source does.
func Attach[T, U any](src Source[T], f Filter[T, U]) Source[U] {
	return SourceFunc[U](func() (U, bool) {
		for {
			v, ok := src.Source()
			if !ok {
				var zero U
				return zero, false
			}
			if out, ok := f.Filter(v); ok {
				return out, true
			}
		}
	})
}

// Compose chains two filters into one. The composite emits only when both
// stages emit.
func Compose[T, U, V any](first Filter[T, U], second Filter[U, V]) Filter[T, V] {
	return FilterFunc[T, V](func(input T) (V, bool) {
		mid, ok := first.Filter(input)
		if !ok {
			var zero V
			return zero, false
		}
		return second.Filter(mid)
	})
}

// Drain pulls the source to exhaustion, feeding every sample into each sink in
// chain order. It returns the number of samples delivered.
func Drain[T any](src Source[T], sinks ...Sink[T]) int {
	count := 0
	for {
		v, ok := src.Source()
		if !ok {
			return count
		}
		for _, s := range sinks {
			s.Sink(v)
		}
		count++
	}
}

// Collect pulls the source to exhaustion and returns all samples in order.
func Collect[T any](src Source[T]) []T {
	var out []T
	for {
		v, ok := src.Source()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Values exposes a source as a single-use iterator over its remaining samples.
func Values[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := src.Source()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
