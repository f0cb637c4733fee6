// Package stat provides accumulating sinks: stages that consume a stream
// sample by sample and produce a summary at the end. MeanVariance and
// Statistics use Welford's online algorithm, which is numerically stable for
// long streams; the remaining sinks track extrema, sums, the last sample, or
// collect everything.
//
// Queries on too few samples return ErrInsufficientSamples rather than a
// division by zero: variance needs at least two samples, the mean at least
// one.
package stat
