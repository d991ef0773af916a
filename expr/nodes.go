// SPDX-License-Identifier: MIT
// Package expr: node variants.
//
// Nodes are immutable values. Composite nodes hold their children as Expr
// interface values; terminal nodes hold a scalar (Const) or a borrowed
// *dual.Number (Leaf).

package expr

import (
	"math"

	"github.com/katalvlaran/fwdiff/dual"
)

// Const is a scalar with zero derivatives.
type Const[V dual.Vector] struct {
	v float64
}

func (c Const[V]) Value() float64         { return c.v }
func (c Const[V]) Derivative(int) float64 { return 0 }
func (c Const[V]) Eval() dual.Number[V]   { return dual.New[V](c.v) }

// Leaf exposes a borrowed dual.Number as a terminal node.
type Leaf[V dual.Vector] struct {
	n *dual.Number[V]
}

func (l Leaf[V]) Value() float64           { return l.n.Value() }
func (l Leaf[V]) Derivative(i int) float64 { return l.n.Derivative(i) }
func (l Leaf[V]) Eval() dual.Number[V]     { return *l.n }

// Sum is l + r.
type Sum[V dual.Vector] struct {
	l, r Expr[V]
}

func (s Sum[V]) Value() float64 { return s.l.Value() + s.r.Value() }

func (s Sum[V]) Derivative(i int) float64 {
	return s.l.Derivative(i) + s.r.Derivative(i)
}

func (s Sum[V]) Eval() dual.Number[V] { return evaluate[V](s) }

// Difference is l − r.
type Difference[V dual.Vector] struct {
	l, r Expr[V]
}

func (d Difference[V]) Value() float64 { return d.l.Value() - d.r.Value() }

func (d Difference[V]) Derivative(i int) float64 {
	return d.l.Derivative(i) - d.r.Derivative(i)
}

func (d Difference[V]) Eval() dual.Number[V] { return evaluate[V](d) }

// Product is l · r.
type Product[V dual.Vector] struct {
	l, r Expr[V]
}

func (p Product[V]) Value() float64 { return p.l.Value() * p.r.Value() }

// Derivative applies the product rule; both child values are re-evaluated.
func (p Product[V]) Derivative(i int) float64 {
	return p.l.Derivative(i)*p.r.Value() + p.l.Value()*p.r.Derivative(i)
}

func (p Product[V]) Eval() dual.Number[V] { return evaluate[V](p) }

// Quotient is l / r. A zero divisor yields ±Inf/NaN.
type Quotient[V dual.Vector] struct {
	l, r Expr[V]
}

func (q Quotient[V]) Value() float64 { return q.l.Value() / q.r.Value() }

func (q Quotient[V]) Derivative(i int) float64 {
	rv := q.r.Value()

	return (q.l.Derivative(i)*rv - q.l.Value()*q.r.Derivative(i)) / (rv * rv)
}

func (q Quotient[V]) Eval() dual.Number[V] { return evaluate[V](q) }

// Negation is −v.
type Negation[V dual.Vector] struct {
	v Expr[V]
}

func (n Negation[V]) Value() float64           { return -n.v.Value() }
func (n Negation[V]) Derivative(i int) float64 { return -n.v.Derivative(i) }
func (n Negation[V]) Eval() dual.Number[V]     { return evaluate[V](n) }

// Exponential is e^v.
type Exponential[V dual.Vector] struct {
	v Expr[V]
}

func (e Exponential[V]) Value() float64 { return math.Exp(e.v.Value()) }

func (e Exponential[V]) Derivative(i int) float64 {
	return e.v.Derivative(i) * math.Exp(e.v.Value())
}

func (e Exponential[V]) Eval() dual.Number[V] { return evaluate[V](e) }

// Logarithm is ln v. v ≤ 0 yields NaN or −Inf.
type Logarithm[V dual.Vector] struct {
	v Expr[V]
}

func (l Logarithm[V]) Value() float64 { return math.Log(l.v.Value()) }

func (l Logarithm[V]) Derivative(i int) float64 {
	return l.v.Derivative(i) / l.v.Value()
}

func (l Logarithm[V]) Eval() dual.Number[V] { return evaluate[V](l) }

// Power is l^r with a possibly variable exponent.
type Power[V dual.Vector] struct {
	l, r Expr[V]
}

func (p Power[V]) Value() float64 { return math.Pow(p.l.Value(), p.r.Value()) }

// Derivative applies ∂r·ln(l)·l^r + r·∂l·l^(r−1).
func (p Power[V]) Derivative(i int) float64 {
	lv, rv := p.l.Value(), p.r.Value()

	return p.r.Derivative(i)*math.Log(lv)*math.Pow(lv, rv) +
		rv*p.l.Derivative(i)*math.Pow(lv, rv-1)
}

func (p Power[V]) Eval() dual.Number[V] { return evaluate[V](p) }

func (Const[V]) node()       {}
func (Leaf[V]) node()        {}
func (Sum[V]) node()         {}
func (Difference[V]) node()  {}
func (Product[V]) node()     {}
func (Quotient[V]) node()    {}
func (Negation[V]) node()    {}
func (Exponential[V]) node() {}
func (Logarithm[V]) node()   {}
func (Power[V]) node()       {}
