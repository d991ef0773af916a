// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/fwdiff/dual"

// Expr is any node that can report a value and its partial derivatives.
//
// Value and Derivative are pure and recompute from scratch on every call.
// Eval materializes the value and all N derivatives into a dual.Number.
// All nodes of one tree share the width V; mixing widths does not compile.
//
// The set of nodes is closed: only the types in this package and *Var
// implement Expr.
type Expr[V dual.Vector] interface {
	Value() float64
	Derivative(i int) float64
	Eval() dual.Number[V]

	node()
}

// evaluate walks e once for the value and once per derivative index.
// It is the single place where a lazy tree becomes concrete storage.
func evaluate[V dual.Vector](e Expr[V]) dual.Number[V] {
	var dx V
	for i := 0; i < len(dx); i++ {
		dx[i] = e.Derivative(i)
	}

	return dual.FromParts(e.Value(), dx)
}
