// SPDX-License-Identifier: MIT
// Package dual: elementary functions.
//
// Domain edges follow math package semantics: Log(x≤0) is NaN or −Inf,
// Pow(0, y<0) is +Inf, and the derivatives inherit whatever the formula
// produces. No special case is trapped.

package dual

import "math"

// Exp returns e^a with ∂e^a = e^a·∂a.
func Exp[V Vector](a Number[V]) Number[V] {
	ex := math.Exp(a.value)
	r := Number[V]{value: ex}
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = a.dx[i] * ex
	}

	return r
}

// Log returns ln(a) with ∂ln(a) = ∂a / a.
func Log[V Vector](a Number[V]) Number[V] {
	r := Number[V]{value: math.Log(a.value)}
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = a.dx[i] / a.value
	}

	return r
}

// Pow returns a^e for a variable exponent using the generalized power rule
//
//	∂(a^e) = ∂e·ln(a)·a^e + e·∂a·a^(e−1).
//
// When ∂e is zero and a ≤ 0 the first term is 0·NaN = NaN; use PowReal or
// PowInt for constant exponents on non-positive bases.
func Pow[V Vector](a, e Number[V]) Number[V] {
	p := math.Pow(a.value, e.value)
	lg := math.Log(a.value)
	pm1 := math.Pow(a.value, e.value-1)
	r := Number[V]{value: p}
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = e.dx[i]*lg*p + e.value*a.dx[i]*pm1
	}

	return r
}

// PowReal returns a^e for a constant real exponent: ∂(a^e) = e·∂a·a^(e−1).
func PowReal[V Vector](a Number[V], e float64) Number[V] {
	pm1 := math.Pow(a.value, e-1)
	r := Number[V]{value: math.Pow(a.value, e)}
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = e * a.dx[i] * pm1
	}

	return r
}

// PowInt returns a^e for a constant integer exponent.
func PowInt[V Vector](a Number[V], e int) Number[V] {
	return PowReal(a, float64(e))
}

// Sqrt returns √a with ∂√a = ∂a / (2√a).
// Sqrt(0) has infinite derivatives; Sqrt(a<0) is NaN.
func Sqrt[V Vector](a Number[V]) Number[V] {
	s := math.Sqrt(a.value)
	r := Number[V]{value: s}
	for i := 0; i < len(r.dx); i++ {
		r.dx[i] = a.dx[i] / (2 * s)
	}

	return r
}

// Abs returns a when a > 0 and −a otherwise (so Abs at 0 takes the
// negated branch, derivatives included).
func Abs[V Vector](a Number[V]) Number[V] {
	if a.value > 0 {
		return a
	}

	return Neg(a)
}
