// Package window provides sliding-window filters over the most recent N
// samples of a stream: moving minimum, maximum, combined bounds, and moving
// average.
//
// The extremum filters keep a monotonic deque of candidate samples, so each
// call runs in amortized O(1) regardless of window size. While the window is
// still filling, outputs cover only the samples seen so far.
package window
