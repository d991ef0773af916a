package catalog

import (
	"github.com/katalvlaran/fwdiff/dual"
	"github.com/katalvlaran/fwdiff/expr"
)

type v2 = dual.Vec2

func init() {
	for _, s := range scenarios {
		s := s // per-iteration copy; go directive is 1.21 (pre-1.22 loop semantics)
		path, fn := PathTree, func(x []dual.Number[v3]) dual.Number[v3] {
			return s.tree(expr.Ref(&x[0]), expr.Ref(&x[1]), expr.Ref(&x[2]))
		}
		if s.name == "g" || s.name == "i" || s.name == "k" {
			path, fn = PathEager, func(x []dual.Number[v3]) dual.Number[v3] {
				return s.eager(x[0], x[1], x[2])
			}
		}
		register(Entry{
			Name:        s.name,
			Description: s.desc,
			Inputs:      3,
			Outputs:     1,
			Default:     []float64{1, 2, 3},
			Path:        path,
			eval:        scalar[v3](fn),
		})
	}

	register(Entry{
		Name:        "product",
		Description: "x * 42",
		Inputs:      1,
		Outputs:     1,
		Default:     []float64{123},
		Path:        PathTree,
		eval:        scalar(product),
	})
	register(Entry{
		Name:        "rosenbrock",
		Description: "(1 - x)^2 + 100 (y - x^2)^2",
		Inputs:      2,
		Outputs:     1,
		Default:     []float64{-1.2, 1},
		Path:        PathEager,
		eval:        scalar(rosenbrock),
	})
	register(Entry{
		Name:        "booth",
		Description: "(x + 2y - 7)^2 + (2x + y - 5)^2",
		Inputs:      2,
		Outputs:     1,
		Default:     []float64{0, 0},
		Path:        PathTree,
		eval:        scalar(booth),
	})
	register(Entry{
		Name:        "sphere",
		Description: "x^2 + y^2 + z^2",
		Inputs:      3,
		Outputs:     1,
		Default:     []float64{1, -2, 0.5},
		Path:        PathEager,
		eval:        scalar(sphere),
	})
	register(Entry{
		Name:        "ratio",
		Description: "(x * y, x / y)",
		Inputs:      2,
		Outputs:     2,
		Default:     []float64{3, 2},
		Path:        PathEager,
		eval:        vector(ratio),
	})
}

// product is the single-variable x·y with y = 42 held constant.
func product(x []dual.Number[dual.Vec1]) dual.Number[dual.Vec1] {
	y := dual.New[dual.Vec1](42)

	return expr.Bind(expr.Mul(expr.Ref(&x[0]), expr.Ref(&y))).Number()
}

func rosenbrock(x []dual.Number[v2]) dual.Number[v2] {
	a := dual.ScalarSub(1, x[0])
	b := dual.Sub(x[1], dual.Mul(x[0], x[0]))

	return dual.Add(dual.Mul(a, a), dual.ScalarMul(100, dual.Mul(b, b)))
}

// booth squares its two residuals through the expression layer.
func booth(x []dual.Number[v2]) dual.Number[v2] {
	px, py := expr.Ref(&x[0]), expr.Ref(&x[1])
	two := expr.C[v2](2)

	var r1, r2 expr.Var[v2]
	r1.Assign(expr.Sub(expr.Add(px, expr.Mul(two, py)), expr.C[v2](7)))
	r2.Assign(expr.Sub(expr.Add(expr.Mul(two, px), py), expr.C[v2](5)))

	return expr.Add(expr.Mul(&r1, &r1), expr.Mul(&r2, &r2)).Eval()
}

func sphere(x []dual.Number[v3]) dual.Number[v3] {
	var acc dual.Number[v3]
	for _, xi := range x {
		acc.AddAssign(dual.PowInt(xi, 2))
	}

	return acc
}

func ratio(x []dual.Number[v2]) []dual.Number[v2] {
	return []dual.Number[v2]{dual.Mul(x[0], x[1]), dual.Div(x[0], x[1])}
}
