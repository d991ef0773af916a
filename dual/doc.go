// Package dual implements forward-mode automatic differentiation over a
// fixed number of independent variables.
//
// 🚀 What is a dual number?
//
//	A Number carries a value together with its N partial derivatives
//	∂/∂x₀ … ∂/∂x_{N-1}. Every arithmetic step applies the chain rule, so the
//	derivatives of the final result are exact (no finite-difference error).
//
// ✨ Key features:
//   - width fixed at instantiation: Number[Vec3] always carries 3 derivatives
//   - value semantics: the derivative array lives inside the struct, no heap
//   - pure operations (Add, Mul, Exp, …) return a new Number
//   - in-place operations (AddAssign, MulScalarAssign, …) mutate the receiver
//     and return it for chaining
//   - IEEE-754 semantics: x/0, log(x≤0) and friends yield ±Inf/NaN, never errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fwdiff/dual"
//
//	a := dual.Seeded[dual.Vec2](1.0, 0) // a is x₀
//	b := dual.Seeded[dual.Vec2](2.0, 1) // b is x₁
//
//	f := dual.Mul(a, dual.Exp(b)) // f = a·e^b
//	fmt.Println(f.Value(), f.Derivative(0), f.Derivative(1))
//
// Index contract:
//
//	Derivative(i) and SetDerivative(i, v) require 0 ≤ i < Width(). They are
//	unchecked beyond the Go runtime bounds check. Use DerivativeAt and
//	SetDerivativeAt when the index comes from untrusted input.
//
// Performance:
//
//   - Time:   O(N) per operation
//   - Memory: (N+1)·8 bytes per Number, no allocations
package dual
