package delay

import (
	"errors"
	"slices"
	"testing"
)

func TestNewInvalidLength(t *testing.T) {
	if _, err := New[int](0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("New(0) err = %v, want ErrInvalidLength", err)
	}
}

func TestDelayShiftsStream(t *testing.T) {
	input := []float64{0, 1, 7, 2, 5, 8, 16, 3, 19, 6}

	d, err := New[float64](3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var got []float64
	for _, x := range input {
		if v, ok := d.Filter(x); ok {
			got = append(got, v)
		}
	}

	// The first three samples stay buffered; the rest come out shifted.
	want := input[:len(input)-3]
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestDelayWarmUpEmitsNothing(t *testing.T) {
	d, _ := New[int](2)

	if _, ok := d.Filter(1); ok {
		t.Error("Filter during warm-up ok = true, want false")
	}
	if _, ok := d.Filter(2); ok {
		t.Error("Filter during warm-up ok = true, want false")
	}
	if v, ok := d.Filter(3); !ok || v != 1 {
		t.Errorf("Filter after warm-up = %d, %v, want 1, true", v, ok)
	}
}

func TestDelayReset(t *testing.T) {
	d, _ := New[int](2)
	d.Filter(1)
	d.Filter(2)
	d.Reset()

	if _, ok := d.Filter(5); ok {
		t.Error("Filter after Reset ok = true, want false during warm-up")
	}
}
