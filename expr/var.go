// SPDX-License-Identifier: MIT

package expr

import "github.com/katalvlaran/fwdiff/dual"

// Var owns a dual.Number and is the only node that persists a result.
//
// Assigning a tree into a Var evaluates it; a *Var is itself an Expr, so a
// stored result can feed the next expression:
//
//	f.Assign(expr.Mul(x, y))
//	g.Assign(expr.Add(&f, z))
//
// The zero value holds 0 with zero derivatives.
type Var[V dual.Vector] struct {
	n dual.Number[V]
}

// NewVar returns a Var holding the scalar x (derivatives zero).
func NewVar[V dual.Vector](x float64) *Var[V] {
	return &Var[V]{n: dual.New[V](x)}
}

// VarOf returns a Var holding a copy of n.
func VarOf[V dual.Vector](n dual.Number[V]) *Var[V] {
	return &Var[V]{n: n}
}

// Bind returns a Var holding the evaluation of e.
func Bind[V dual.Vector](e Expr[V]) *Var[V] {
	v := &Var[V]{}
	v.Assign(e)

	return v
}

// Assign evaluates e and stores its value and all N derivatives.
// Stage 1 (Evaluate): walk e into a scratch Number.
// Stage 2 (Commit): overwrite the owned Number.
// The scratch step keeps self-referencing trees correct: v.Assign(Mul(v, x))
// reads the old v for every derivative. Borrowed operands are never written.
// Complexity: O(N·T) for a tree of T nodes.
func (v *Var[V]) Assign(e Expr[V]) *Var[V] {
	v.n = evaluate(e)

	return v
}

// SetScalar stores x with zero derivatives.
func (v *Var[V]) SetScalar(x float64) *Var[V] {
	v.n.SetScalar(x)

	return v
}

// SetNumber stores a copy of n.
func (v *Var[V]) SetNumber(n dual.Number[V]) *Var[V] {
	v.n = n

	return v
}

// Diff marks v as the idx-th independent variable.
// Precondition: 0 ≤ idx < Width().
func (v *Var[V]) Diff(idx int) *Var[V] {
	v.n.Seed(idx)

	return v
}

// Value returns the stored value.
func (v *Var[V]) Value() float64 { return v.n.Value() }

// SetValue overwrites the stored value, keeping derivatives.
func (v *Var[V]) SetValue(x float64) { v.n.SetValue(x) }

// Derivative returns the stored i-th derivative (unchecked).
func (v *Var[V]) Derivative(i int) float64 { return v.n.Derivative(i) }

// SetDerivative overwrites the stored i-th derivative (unchecked).
func (v *Var[V]) SetDerivative(i int, d float64) { v.n.SetDerivative(i, d) }

// Eval returns a copy of the stored Number.
func (v *Var[V]) Eval() dual.Number[V] { return v.n }

// Number returns a copy of the stored Number.
func (v *Var[V]) Number() dual.Number[V] { return v.n }

// Width returns N.
func (v *Var[V]) Width() int { return v.n.Width() }

func (v *Var[V]) String() string { return v.n.String() }

func (*Var[V]) node() {}
