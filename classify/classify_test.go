package classify

import (
	"errors"
	"slices"
	"testing"
)

func collatzInput20() []int {
	return []int{0, 1, 7, 2, 5, 8, 16, 3, 19, 6, 14, 9, 9, 17, 17, 4, 12, 20, 20, 7}
}

func runFilter[T, U any](t *testing.T, f interface {
	Filter(T) (U, bool)
}, input []T) []U {
	t.Helper()

	out := make([]U, 0, len(input))
	for _, x := range input {
		v, ok := f.Filter(x)
		if !ok {
			t.Fatalf("Filter(%v) emitted nothing", x)
		}
		out = append(out, v)
	}

	return out
}

func TestThreshold(t *testing.T) {
	f := NewThreshold(10, [2]int{0, 1})

	got := runFilter[int, int](t, f, collatzInput20())
	want := []int{0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestSchmitt(t *testing.T) {
	f, err := NewSchmitt(5, 10, [2]int{0, 1})
	if err != nil {
		t.Fatalf("NewSchmitt: %v", err)
	}

	got := runFilter[int, int](t, f, collatzInput20())
	want := []int{0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestSchmittInvalidBand(t *testing.T) {
	if _, err := NewSchmitt(10, 5, [2]int{0, 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewSchmitt(10, 5) err = %v, want ErrInvalidConfig", err)
	}
}

func TestSchmittHysteresis(t *testing.T) {
	f, _ := NewSchmitt(5.0, 10.0, [2]bool{false, true})

	steps := []struct {
		in   float64
		want bool
	}{
		{10, false}, // exactly high: still off
		{11, true},
		{5, true}, // exactly low: stays on
		{4.9, false},
		{6, false}, // inside the band: stays off
	}
	for i, s := range steps {
		if got, _ := f.Filter(s.in); got != s.want {
			t.Errorf("step %d: Filter(%v) = %v, want %v", i, s.in, got, s.want)
		}
	}
}

func TestDebounce(t *testing.T) {
	f, err := NewDebounce(1, 3, [2]int{0, 1})
	if err != nil {
		t.Fatalf("NewDebounce: %v", err)
	}

	input := []int{0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 0, 0, 1, 1, 0, 1}
	got := runFilter[int, int](t, f, input)
	want := []int{0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestDebounceInvalidThreshold(t *testing.T) {
	if _, err := NewDebounce(1, 0, [2]int{0, 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewDebounce threshold 0 err = %v, want ErrInvalidConfig", err)
	}
}

func TestSlopes(t *testing.T) {
	const (
		rising  = "rising"
		flat    = "none"
		falling = "falling"
	)

	f := NewSlopes[int]([3]string{rising, flat, falling})

	got := runFilter[int, string](t, f, collatzInput20())
	want := []string{
		flat, rising, rising, falling, rising, rising, rising, falling, rising, falling,
		rising, falling, flat, rising, flat, falling, rising, rising, flat, falling,
	}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestPeaks(t *testing.T) {
	const (
		maxP = "max"
		none = "none"
		minP = "min"
	)

	f := NewPeaks[int]([3]string{maxP, none, minP})

	got := runFilter[int, string](t, f, collatzInput20())
	want := []string{
		none, none, none, maxP, minP, none, none, maxP, minP, maxP,
		minP, maxP, none, none, none, none, minP, none, none, none,
	}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestPeaksPlateauBreaksTurn(t *testing.T) {
	f := NewPeaks[int]([3]int{1, 0, -1})

	// Rising, flat, falling: the plateau hides the maximum.
	got := runFilter[int, int](t, f, []int{1, 2, 2, 1})
	want := []int{0, 0, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestSlopesReset(t *testing.T) {
	f := NewSlopes[int]([3]int{1, 0, -1})
	f.Filter(5)
	f.Reset()

	// After a reset the next sample has no predecessor again.
	if got, _ := f.Filter(100); got != 0 {
		t.Errorf("Filter after Reset = %v, want 0 (flat)", got)
	}
}
