// Package fwdiff is a small forward-mode automatic differentiation toolkit:
// exact first-order partial derivatives for a fixed number N of variables,
// carried alongside every value in a single pass.
//
// 🚀 What is fwdiff?
//
//	A generic dual-number library that brings together:
//		• Dual numbers: value + N derivatives, width fixed at compile time
//		• Eager arithmetic: + − · ÷, exp, log, pow, sqrt, abs, comparisons
//		• Lazy expressions: build a tree, evaluate once on assignment
//		• Drivers: gradients and dense Jacobians at a point
//
// ✨ Why choose fwdiff?
//
//   - Exact derivatives, no step-size tuning as with finite differences
//   - Width mismatches are compile errors, not runtime panics
//   - IEEE semantics throughout: division by zero yields ±Inf/NaN, never an error
//
// Under the hood, everything is organized under three subpackages:
//
//	dual/     — Number[V], seeding, in-place and pure arithmetic, math functions
//	expr/     — Expr[V] nodes (Const, Leaf, Sum, Product, …) and the Var result binder
//	jacobian/ — Variables, Gradient, Compute and the dense Matrix they return
//
// Quick example, d/dx (x·y) at x = 123, y = 42:
//
//	x := dual.Seeded[dual.Vec1](123, 0)
//	y := dual.New[dual.Vec1](42)
//	f := dual.Mul(x, y)
//	f.Value()        // 5166
//	f.Derivative(0)  // 42
//
// The fwdiff command (cmd/fwdiff) exposes a catalog of named functions:
//
//	go run ./cmd/fwdiff grad rosenbrock --at 1.5,2
package fwdiff
