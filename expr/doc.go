// Package expr builds lazy expression trees over dual numbers.
//
// An expression such as x·y + e^z is first assembled as a tree of nodes
// (Product, Sum, Exponential, …) without computing anything. The tree is
// evaluated only when it is assigned into a Var, which walks it once for the
// value and once per derivative index, so no intermediate dual.Number is
// materialized for sub-expressions.
//
// Node family (closed set):
//
//	Const        c          ∂ = 0
//	Leaf         *Number    ∂ = n.Derivative(i)
//	Sum          l + r      ∂l + ∂r
//	Difference   l − r      ∂l − ∂r
//	Product      l · r      ∂l·r + l·∂r
//	Quotient     l / r      (∂l·r − l·∂r) / r²
//	Negation     −v         −∂v
//	Exponential  e^v        ∂v·e^v
//	Logarithm    ln v       ∂v / v
//	Power        l^r        ∂r·ln(l)·l^r + r·∂l·l^(r−1)
//
// Usage:
//
//	x := expr.NewVar[dual.Vec2](3).Diff(0)
//	y := expr.NewVar[dual.Vec2](4).Diff(1)
//
//	var f expr.Var[dual.Vec2]
//	f.Assign(expr.Add(expr.Mul(x, x), expr.Mul(y, y))) // f = x² + y²
//	g := expr.Bind(expr.Mul(&f, x))                     // chained: g = f·x
//
// Borrowing:
//
//	Leaves and Vars enter a tree by pointer and are read when the tree is
//	evaluated, not when it is built. Build a tree and assign it in the same
//	statement; a tree kept around observes later mutations of its operands.
//
// Cost: every query re-walks its subtree, so assigning a tree of size T
// costs O(N·T) node visits. Trees are meant to be small and short-lived.
package expr
