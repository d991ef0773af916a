// SPDX-License-Identifier: MIT

package dual

import (
	"fmt"
	"strings"
)

// New returns a Number with value x and all derivatives zero.
// Such a Number behaves as a constant with respect to every variable.
// Complexity: O(1).
func New[V Vector](x float64) Number[V] {
	return Number[V]{value: x}
}

// Seeded returns a Number with value x marked as the i-th independent
// variable: derivative i is 1, all others are 0.
// Complexity: O(N).
func Seeded[V Vector](x float64, i int) Number[V] {
	n := Number[V]{value: x}
	n.Seed(i)

	return n
}

// FromParts builds a Number from an explicit value and derivative array.
// Complexity: O(N).
func FromParts[V Vector](x float64, dx V) Number[V] {
	return Number[V]{value: x, dx: dx}
}

// Width returns N, the number of derivatives carried.
// Complexity: O(1).
func (d Number[V]) Width() int {
	return len(d.dx)
}

// Value returns the function value.
func (d Number[V]) Value() float64 {
	return d.value
}

// SetValue overwrites the value, leaving the derivatives untouched.
func (d *Number[V]) SetValue(x float64) {
	d.value = x
}

// Derivative returns ∂value/∂xᵢ.
// Precondition: 0 ≤ i < Width(); out-of-range access panics.
func (d Number[V]) Derivative(i int) float64 {
	return d.dx[i]
}

// SetDerivative overwrites ∂value/∂xᵢ.
// Precondition: 0 ≤ i < Width(); out-of-range access panics.
func (d *Number[V]) SetDerivative(i int, v float64) {
	d.dx[i] = v
}

// DerivativeAt is the checked variant of Derivative.
// Stage 1 (Validate): ensure 0 ≤ i < Width().
// Stage 2 (Execute): read the derivative.
// Errors: ErrIndexOutOfRange (wrapped with method context).
// Complexity: O(1).
func (d Number[V]) DerivativeAt(i int) (float64, error) {
	if i < 0 || i >= len(d.dx) {
		return 0, indexErrorf("DerivativeAt", i, len(d.dx), ErrIndexOutOfRange)
	}

	return d.dx[i], nil
}

// SetDerivativeAt is the checked variant of SetDerivative.
// Errors: ErrIndexOutOfRange (wrapped with method context).
// Complexity: O(1).
func (d *Number[V]) SetDerivativeAt(i int, v float64) error {
	if i < 0 || i >= len(d.dx) {
		return indexErrorf("SetDerivativeAt", i, len(d.dx), ErrIndexOutOfRange)
	}
	d.dx[i] = v

	return nil
}

// Derivatives returns a copy of the derivative array.
func (d Number[V]) Derivatives() V {
	return d.dx
}

// Seed marks d as the i-th of N independent variables: all derivatives are
// zeroed, then derivative i is set to 1. The value is kept.
// Precondition: 0 ≤ i < Width().
// Complexity: O(N).
func (d *Number[V]) Seed(i int) *Number[V] {
	d.zero()
	d.dx[i] = 1

	return d
}

// SetScalar assigns a plain scalar: value = x and all derivatives zeroed.
// Complexity: O(N).
func (d *Number[V]) SetScalar(x float64) *Number[V] {
	d.value = x
	d.zero()

	return d
}

// String formats d as "value [  d0  d1 … ]" using %f for every entry.
// Complexity: O(N).
func (d Number[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%f [ ", d.value)
	for i := 0; i < len(d.dx); i++ {
		fmt.Fprintf(&b, " %f ", d.dx[i])
	}
	b.WriteString("]")

	return b.String()
}

// zero clears all derivatives.
func (d *Number[V]) zero() {
	var z V
	d.dx = z
}
