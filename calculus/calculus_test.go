package calculus

import (
	"slices"
	"testing"
)

func collatzInput20() []float64 {
	return []float64{0, 1, 7, 2, 5, 8, 16, 3, 19, 6, 14, 9, 9, 17, 17, 4, 12, 20, 20, 7}
}

func TestDifferentiate(t *testing.T) {
	want := []float64{
		0, 1, 6, -5, 3, 3, 8, -13, 16, -13, 8, -5, 0, 8, 0, -13, 8, 8, 0, -13,
	}

	d := NewDifferentiate[float64]()

	var got []float64
	for _, x := range collatzInput20() {
		v, ok := d.Filter(x)
		if !ok {
			t.Fatalf("Filter(%v) emitted nothing", x)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestIntegrate(t *testing.T) {
	want := []float64{
		0, 1, 8, 10, 15, 23, 39, 42, 61, 67, 81, 90, 99, 116, 133, 137, 149, 169, 189, 196,
	}

	g := NewIntegrate[float64]()

	var got []float64
	for _, x := range collatzInput20() {
		v, _ := g.Filter(x)
		got = append(got, v)
	}
	if !slices.Equal(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestDifferentiateIntegrateRoundTrip(t *testing.T) {
	d := NewDifferentiate[float64]()
	g := NewIntegrate[float64]()

	// Integrating the differences recovers the signal, offset by the first
	// sample.
	input := collatzInput20()
	first := input[0]
	for i, x := range input {
		diff, _ := d.Filter(x)
		sum, _ := g.Filter(diff)
		if want := x - first; sum != want {
			t.Fatalf("sample %d: integrated difference = %v, want %v", i, sum, want)
		}
	}
}

func TestDifferentiateReset(t *testing.T) {
	d := NewDifferentiate[int]()
	d.Filter(10)
	d.Reset()

	if got, _ := d.Filter(99); got != 0 {
		t.Errorf("Filter after Reset = %d, want 0", got)
	}
}
