// SPDX-License-Identifier: MIT
// Package dual: pure (out-of-place) arithmetic.
//
// Each function returns a fresh Number and leaves its operands untouched.
// Operands are passed by value, so aliasing (Mul(a, a)) is always safe.

package dual

// Add returns a + b.
func Add[V Vector](a, b Number[V]) Number[V] {
	return *a.AddAssign(b)
}

// Sub returns a − b.
func Sub[V Vector](a, b Number[V]) Number[V] {
	return *a.SubAssign(b)
}

// Mul returns a · b (product rule).
func Mul[V Vector](a, b Number[V]) Number[V] {
	return *a.MulAssign(b)
}

// Div returns a / b (quotient rule).
func Div[V Vector](a, b Number[V]) Number[V] {
	return *a.DivAssign(b)
}

// AddScalar returns a + c.
func AddScalar[V Vector](a Number[V], c float64) Number[V] {
	return *a.AddScalarAssign(c)
}

// SubScalar returns a − c.
func SubScalar[V Vector](a Number[V], c float64) Number[V] {
	return *a.SubScalarAssign(c)
}

// MulScalar returns a · c.
func MulScalar[V Vector](a Number[V], c float64) Number[V] {
	return *a.MulScalarAssign(c)
}

// DivScalar returns a / c.
func DivScalar[V Vector](a Number[V], c float64) Number[V] {
	return *a.DivScalarAssign(c)
}

// ScalarAdd returns c + b.
func ScalarAdd[V Vector](c float64, b Number[V]) Number[V] {
	return *b.AddScalarAssign(c)
}

// ScalarSub returns c − b; every derivative flips sign.
func ScalarSub[V Vector](c float64, b Number[V]) Number[V] {
	r := Neg(b)

	return *r.AddScalarAssign(c)
}

// ScalarMul returns c · b.
func ScalarMul[V Vector](c float64, b Number[V]) Number[V] {
	return *b.MulScalarAssign(c)
}

// ScalarDiv returns c / b with ∂(c/b) = −c·∂b / b².
func ScalarDiv[V Vector](c float64, b Number[V]) Number[V] {
	r := Number[V]{value: c / b.value}
	den := b.value * b.value
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = (-c * b.dx[i]) / den
	}

	return r
}

// Neg returns −a.
func Neg[V Vector](a Number[V]) Number[V] {
	return *a.MulScalarAssign(-1)
}
