// Package stream defines the composition contract shared by all primitives in
// this module: a Source produces samples, a Filter transforms them one at a
// time, a Sink consumes them, and a Finalizer extracts a terminal summary.
//
// Pipelines are strict linear chains assembled at compile time from generic
// stages. Each stage exclusively owns its internal state; no stage inspects
// another's internals, and no stage allocates after construction. A Filter may
// legitimately produce no output for a given input (for example while a
// windowed stage is still filling its buffer) — combinators treat that as
// "keep pulling", not as an error.
//
// A minimal pipeline:
//
//	src := sources.NewSlice([]float64{1, 2, 3})
//	smoothed := stream.Attach[float64, float64](src, kalman)
//	var sink stat.MeanVariance[float64]
//	stream.Drain[float64](smoothed, &sink)
//
// All driving is synchronous and single-threaded; the caller owns the loop.
package stream
