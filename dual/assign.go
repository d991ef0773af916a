// SPDX-License-Identifier: MIT
// Package dual: in-place (accumulating) operations.
//
// Every method here mutates the receiver and returns it, so updates can be
// chained:  acc.AddAssign(x).MulScalarAssign(0.5)
// Product and quotient rules read the receiver value as it was before the
// update.

package dual

// AddScalarAssign applies d += c. Derivatives are unchanged.
func (d *Number[V]) AddScalarAssign(c float64) *Number[V] {
	d.value += c

	return d
}

// SubScalarAssign applies d -= c. Derivatives are unchanged.
func (d *Number[V]) SubScalarAssign(c float64) *Number[V] {
	d.value -= c

	return d
}

// MulScalarAssign applies d *= c; value and every derivative scale by c.
func (d *Number[V]) MulScalarAssign(c float64) *Number[V] {
	d.value *= c
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] *= c
	}

	return d
}

// DivScalarAssign applies d /= c; value and every derivative scale by 1/c.
// c == 0 yields ±Inf/NaN per IEEE-754.
func (d *Number[V]) DivScalarAssign(c float64) *Number[V] {
	d.value /= c
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] /= c
	}

	return d
}

// AddAssign applies d += o componentwise.
func (d *Number[V]) AddAssign(o Number[V]) *Number[V] {
	d.value += o.value
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] += o.dx[i]
	}

	return d
}

// SubAssign applies d -= o componentwise.
func (d *Number[V]) SubAssign(o Number[V]) *Number[V] {
	d.value -= o.value
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] -= o.dx[i]
	}

	return d
}

// MulAssign applies d *= o with the product rule
// ∂(d·o) = ∂d·o + d·∂o.
func (d *Number[V]) MulAssign(o Number[V]) *Number[V] {
	x := d.value // pre-update value
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] = d.dx[i]*o.value + x*o.dx[i]
	}
	d.value = x * o.value

	return d
}

// DivAssign applies d /= o with the quotient rule
// ∂(d/o) = (∂d·o − d·∂o) / o².
// o == 0 yields ±Inf/NaN per IEEE-754.
func (d *Number[V]) DivAssign(o Number[V]) *Number[V] {
	x := d.value // pre-update value
	den := o.value * o.value
	for i := 0; i < len(d.dx); i++ {
		d.dx[i] = (d.dx[i]*o.value - x*o.dx[i]) / den
	}
	d.value = x / o.value

	return d
}
