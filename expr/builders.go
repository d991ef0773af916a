// SPDX-License-Identifier: MIT
// Package expr: builders.
//
// Builders only record structure; nothing is evaluated until the returned
// node is assigned into a Var (or queried directly).

package expr

import "github.com/katalvlaran/fwdiff/dual"

// C returns a constant node. The width cannot be inferred from a scalar,
// so it is spelled out: expr.C[dual.Vec3](2).
func C[V dual.Vector](x float64) Const[V] {
	return Const[V]{v: x}
}

// Ref returns a leaf borrowing n. n is read at evaluation time.
func Ref[V dual.Vector](n *dual.Number[V]) Leaf[V] {
	return Leaf[V]{n: n}
}

// Add returns the node l + r.
func Add[V dual.Vector](l, r Expr[V]) Sum[V] {
	return Sum[V]{l: l, r: r}
}

// Sub returns the node l − r.
func Sub[V dual.Vector](l, r Expr[V]) Difference[V] {
	return Difference[V]{l: l, r: r}
}

// Mul returns the node l · r.
func Mul[V dual.Vector](l, r Expr[V]) Product[V] {
	return Product[V]{l: l, r: r}
}

// Div returns the node l / r.
func Div[V dual.Vector](l, r Expr[V]) Quotient[V] {
	return Quotient[V]{l: l, r: r}
}

// Neg returns the node −v.
func Neg[V dual.Vector](v Expr[V]) Negation[V] {
	return Negation[V]{v: v}
}

// Exp returns the node e^v.
func Exp[V dual.Vector](v Expr[V]) Exponential[V] {
	return Exponential[V]{v: v}
}

// Log returns the node ln v.
func Log[V dual.Vector](v Expr[V]) Logarithm[V] {
	return Logarithm[V]{v: v}
}

// Pow returns the node l^r.
func Pow[V dual.Vector](l, r Expr[V]) Power[V] {
	return Power[V]{l: l, r: r}
}
