// Package smooth provides exponential smoothing filters: the classic EWMA
// mean, a combined mean/variance estimate, and an approximated streaming
// median built from cascaded means. All of them are O(1) per sample with O(1)
// state, trading exactness for constant cost.
package smooth
