package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-stream/delay"
	"github.com/cwbudde/algo-stream/observe"
	"github.com/cwbudde/algo-stream/sources"
	"github.com/cwbudde/algo-stream/stat"
	"github.com/cwbudde/algo-stream/stream"
	"github.com/cwbudde/algo-stream/window"
)

func TestAttachMapsSource(t *testing.T) {
	src := sources.NewSlice([]int{1, 2, 3})
	doubled := stream.Attach[int, int](src, stream.Map(func(x int) int { return 2 * x }))

	var got []int
	for v := range stream.Values(doubled) {
		got = append(got, v)
	}

	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestAttachSkipsWarmUp(t *testing.T) {
	d, err := delay.New[int](2)
	require.NoError(t, err)

	src := stream.Attach[int, int](sources.NewSlice([]int{1, 2, 3, 4, 5}), d)

	var got []int
	for v := range stream.Values(src) {
		got = append(got, v)
	}

	// The delay swallows the first two samples; Attach must hide those
	// empty steps instead of ending the stream.
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestComposeFilters(t *testing.T) {
	minFilter, err := window.NewMin[float64](2)
	require.NoError(t, err)
	meanFilter, err := window.NewMean[float64](2)
	require.NoError(t, err)

	// Window-min then window-mean of the minima.
	composed := stream.Compose[float64, float64, float64](minFilter, meanFilter)

	out, ok := composed.Filter(4)
	require.True(t, ok)
	assert.InDelta(t, 4.0, out, 1e-12)

	out, ok = composed.Filter(2)
	require.True(t, ok)
	assert.InDelta(t, 3.0, out, 1e-12) // min 2, mean of {4, 2}
}

func TestDrainFansOut(t *testing.T) {
	var bounds stat.Bounds[float64]
	var moments stat.MeanVariance[float64]

	n := stream.Drain[float64](
		sources.NewSlice([]float64{2, 4, 4, 4, 5, 5, 7, 9}),
		&bounds, &moments,
	)
	assert.Equal(t, 8, n)

	ex, ok := bounds.Finalize()
	require.True(t, ok)
	assert.Equal(t, 2.0, ex.Min)
	assert.Equal(t, 9.0, ex.Max)

	mean, err := moments.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-12)
}

func TestPipelineEndToEnd(t *testing.T) {
	// Noisy constant through a Kalman filter into a statistics sink: the
	// smoothed stream must hug the true value tighter than the raw one.
	input := []float64{5.3, 4.8, 5.1, 4.6, 5.4, 5.0, 4.9, 5.2, 4.7, 5.0}

	cfg := observe.DefaultKalmanConfig[float64]()
	cfg.ProcessVariance = 0.001
	cfg.MeasurementVariance = 1.0
	kalman, err := observe.NewKalman(cfg)
	require.NoError(t, err)

	smoothed := stream.Attach[float64, float64](sources.NewSlice(input), kalman)

	var raw, filtered stat.MeanVariance[float64]
	for _, x := range input {
		raw.Update(x)
	}
	n := stream.Drain[float64](smoothed, &filtered)
	require.Equal(t, len(input), n)

	rawVar, err := raw.Variance()
	require.NoError(t, err)
	filtVar, err := filtered.Variance()
	require.NoError(t, err)

	assert.Less(t, filtVar, rawVar)
}

func TestSourceFuncAdapters(t *testing.T) {
	n := 0
	src := stream.SourceFunc[int](func() (int, bool) {
		n++
		return n, n <= 3
	})

	var sunk []int
	sink := stream.SinkFunc[int](func(v int) { sunk = append(sunk, v) })

	count := stream.Drain[int](src, sink)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{1, 2, 3}, sunk)
}

func TestValuesEarlyBreak(t *testing.T) {
	src := sources.NewCycle([]int{1, 2})

	var got []int
	for v := range stream.Values[int](src) {
		got = append(got, v)
		if len(got) == 5 {
			break
		}
	}

	assert.Equal(t, []int{1, 2, 1, 2, 1}, got)
}
