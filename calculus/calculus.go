// Package calculus provides the discrete counterparts of differentiation and
// integration: first differences and running sums.
package calculus

import (
	"golang.org/x/exp/constraints"
)

// Differentiate emits the difference between each sample and its predecessor.
// The first sample has no predecessor and yields zero.
type Differentiate[T constraints.Integer | constraints.Float] struct {
	prev   T
	seeded bool
}

// NewDifferentiate creates a first-difference filter.
func NewDifferentiate[T constraints.Integer | constraints.Float]() *Differentiate[T] {
	return &Differentiate[T]{}
}

// Filter feeds one sample and returns the difference to the previous one. It
// always emits.
func (d *Differentiate[T]) Filter(input T) (T, bool) {
	var out T
	if d.seeded {
		out = input - d.prev
	}
	d.prev = input
	d.seeded = true

	return out, true
}

// Reset forgets the previous sample.
func (d *Differentiate[T]) Reset() {
	var zero T
	d.prev = zero
	d.seeded = false
}

// Integrate emits the running sum of all samples seen.
type Integrate[T constraints.Integer | constraints.Float] struct {
	sum T
}

// NewIntegrate creates a running-sum filter.
func NewIntegrate[T constraints.Integer | constraints.Float]() *Integrate[T] {
	return &Integrate[T]{}
}

// Filter feeds one sample and returns the updated sum. It always emits.
func (g *Integrate[T]) Filter(input T) (T, bool) {
	g.sum += input

	return g.sum, true
}

// Reset zeroes the running sum.
func (g *Integrate[T]) Reset() {
	g.sum = 0
}
