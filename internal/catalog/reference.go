package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fwdiff/dual"
	"github.com/katalvlaran/fwdiff/expr"
)

type v3 = dual.Vec3

// Evaluation paths accepted by WriteReference.
const (
	PathEager = "eager"
	PathTree  = "tree"
)

// ErrUnknownPath is returned for a path other than PathEager or PathTree.
var ErrUnknownPath = errors.New("catalog: unknown evaluation path")

// scenario is one reference function of a=1, b=2, c=3 (seeded 0, 1, 2),
// available through both evaluation paths.
type scenario struct {
	name   string
	desc   string
	expect string
	eager  func(a, b, c dual.Number[v3]) dual.Number[v3]
	tree   func(a, b, c expr.Expr[v3]) dual.Number[v3]
}

var scenarios = []scenario{
	{"f", "a + b + c", "6.000000 [  1.000000  1.000000  1.000000 ]", eagerF, treeF},
	{"g", "-a - b - c", "-6.000000 [  -1.000000  -1.000000  -1.000000 ]", eagerG, treeG},
	{"h", "b * exp(c)", "40.171074 [  0.000000  20.085537  40.171074 ]", eagerH, treeH},
	{"i", "a / c", "0.333333 [  0.333333  0.000000  -0.111111 ]", eagerI, treeI},
	{"j", "2 * (a + b - c) / 4", "0.000000 [  0.500000  0.500000  -0.500000 ]", eagerJ, treeJ},
	{"k", "(f + h) * i * exp(j * g) / i", "46.171074 [  -137.513222  -117.427685  179.684295 ]", eagerK, treeK},
}

func eagerF(a, b, c dual.Number[v3]) dual.Number[v3] { return dual.Add(dual.Add(a, b), c) }

func eagerG(a, b, c dual.Number[v3]) dual.Number[v3] {
	return dual.Sub(dual.Sub(dual.Neg(a), b), c)
}

func eagerH(_, b, c dual.Number[v3]) dual.Number[v3] { return dual.Mul(b, dual.Exp(c)) }
func eagerI(a, _, c dual.Number[v3]) dual.Number[v3] { return dual.Div(a, c) }

func eagerJ(a, b, c dual.Number[v3]) dual.Number[v3] {
	return dual.DivScalar(dual.ScalarMul(2, dual.Sub(dual.Add(a, b), c)), 4)
}

func eagerK(a, b, c dual.Number[v3]) dual.Number[v3] {
	f, g, h := eagerF(a, b, c), eagerG(a, b, c), eagerH(a, b, c)
	i, j := eagerI(a, b, c), eagerJ(a, b, c)

	return dual.Div(dual.Mul(dual.Mul(dual.Add(f, h), i), dual.Exp(dual.Mul(j, g))), i)
}

func treeF(a, b, c expr.Expr[v3]) dual.Number[v3] { return expr.Add(expr.Add(a, b), c).Eval() }

func treeG(a, b, c expr.Expr[v3]) dual.Number[v3] {
	return expr.Sub(expr.Sub(expr.Neg(a), b), c).Eval()
}

func treeH(_, b, c expr.Expr[v3]) dual.Number[v3] { return expr.Mul(b, expr.Exp(c)).Eval() }
func treeI(a, _, c expr.Expr[v3]) dual.Number[v3] { return expr.Div(a, c).Eval() }

func treeJ(a, b, c expr.Expr[v3]) dual.Number[v3] {
	two, four := expr.C[v3](2), expr.C[v3](4)

	return expr.Div(expr.Mul(two, expr.Sub(expr.Add(a, b), c)), four).Eval()
}

// treeK stores the intermediate results in Vars and chains them.
func treeK(a, b, c expr.Expr[v3]) dual.Number[v3] {
	f, g, h := expr.VarOf(treeF(a, b, c)), expr.VarOf(treeG(a, b, c)), expr.VarOf(treeH(a, b, c))
	i, j := expr.VarOf(treeI(a, b, c)), expr.VarOf(treeJ(a, b, c))

	return expr.Div(expr.Mul(expr.Mul(expr.Add(f, h), i), expr.Exp(expr.Mul(j, g))), i).Eval()
}

// WriteReference prints every reference scenario as an
// "x should be : …" / "x is        : …" pair followed by the single-variable
// product, evaluating through the requested path.
func WriteReference(w io.Writer, path string) error {
	if path != PathEager && path != PathTree {
		return fmt.Errorf("%q: %w", path, ErrUnknownPath)
	}

	a := dual.Seeded[v3](1.0, 0)
	b := dual.Seeded[v3](2.0, 1)
	c := dual.Seeded[v3](3.0, 2)

	for _, s := range scenarios {
		var got dual.Number[v3]
		if path == PathEager {
			got = s.eager(a, b, c)
		} else {
			got = s.tree(expr.Ref(&a), expr.Ref(&b), expr.Ref(&c))
		}
		if _, err := fmt.Fprintf(w, "%s should be : %s\n%s is        : %s\n", s.name, s.expect, s.name, got); err != nil {
			return err
		}
	}

	x := expr.NewVar[dual.Vec1](123.0)
	y := expr.NewVar[dual.Vec1](42.0)
	x.Diff(0)

	var f dual.Number[dual.Vec1]
	if path == PathEager {
		f = dual.Mul(x.Number(), y.Number())
	} else {
		f = expr.Bind(expr.Mul(x, y)).Number()
	}
	_, err := fmt.Fprintf(w, "the value of (%f * %f) is %f\n"+
		"the derivative of (x * y) with respect to x\n"+
		"  at x = %f and y = %f is %f\n",
		x.Value(), y.Value(), f.Value(), x.Value(), y.Value(), f.Derivative(0))

	return err
}
