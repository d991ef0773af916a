// SPDX-License-Identifier: MIT

// Package dual defines the width constraint and the Number type.
package dual

// Vector is the set of derivative-array types a Number may carry.
// The array length is the number of independent variables N; it is fixed
// when Number is instantiated, so mixing widths is a compile-time error.
//
// Implementations MUST only index with 0 ≤ i < len(v): arrays of different
// lengths share no core type, hence no range loops over V in this package.
type Vector interface {
	~[1]float64 | ~[2]float64 | ~[3]float64 | ~[4]float64 |
		~[5]float64 | ~[6]float64 | ~[7]float64 | ~[8]float64 |
		~[9]float64 | ~[10]float64 | ~[11]float64 | ~[12]float64 |
		~[13]float64 | ~[14]float64 | ~[15]float64 | ~[16]float64
}

// Common widths.
type (
	Vec1 = [1]float64
	Vec2 = [2]float64
	Vec3 = [3]float64
	Vec4 = [4]float64
	Vec5 = [5]float64
	Vec6 = [6]float64
	Vec7 = [7]float64
	Vec8 = [8]float64
)

// MaxWidth is the largest number of independent variables Vector admits.
const MaxWidth = 16

// Number is a value paired with its N partial derivatives.
//
// The zero value is ready to use: value 0 and all derivatives 0.
// Number is a plain value; copies are fully independent.
type Number[V Vector] struct {
	value float64 // function value
	dx    V       // ∂value/∂xᵢ, exactly N entries
}
