// Package jacobian drives dual-number functions to obtain gradients and
// Jacobian matrices at a point.
//
// The width N of the dual numbers fixes the number of variables, so a
// single forward pass yields every partial derivative:
//
//	rosen := func(x []dual.Number[dual.Vec2]) dual.Number[dual.Vec2] {
//		a := dual.ScalarSub(1, x[0])
//		b := dual.Sub(x[1], dual.Mul(x[0], x[0]))
//		return dual.Add(dual.Mul(a, a), dual.ScalarMul(100, dual.Mul(b, b)))
//	}
//	v, grad, err := jacobian.Gradient(rosen, []float64{1, 1})
//
// Vector-valued functions produce a Matrix with one row per output:
//
//	m, values, err := jacobian.Compute(f, point, jacobian.WithValidateFinite())
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNaNInf, …) wrapped
// with the calling function's name; match them with errors.Is.
package jacobian
