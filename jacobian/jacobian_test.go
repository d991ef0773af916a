package jacobian_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fwdiff/dual"
	"github.com/katalvlaran/fwdiff/expr"
	"github.com/katalvlaran/fwdiff/jacobian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type V2 = dual.Vec2

// rosenbrock is (1−x)² + 100(y−x²)².
func rosenbrock(x []dual.Number[V2]) dual.Number[V2] {
	a := dual.ScalarSub(1, x[0])
	b := dual.Sub(x[1], dual.Mul(x[0], x[0]))

	return dual.Add(dual.Mul(a, a), dual.ScalarMul(100, dual.Mul(b, b)))
}

// ratio maps (x, y) to (x·y, x/y).
func ratio(x []dual.Number[V2]) []dual.Number[V2] {
	return []dual.Number[V2]{dual.Mul(x[0], x[1]), dual.Div(x[0], x[1])}
}

// TestVariables checks seeding and shape validation.
func TestVariables(t *testing.T) {
	xs, err := jacobian.Variables[dual.Vec3]([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, xs, 3)
	for i, x := range xs {
		require.Equal(t, float64(i+1), x.Value())
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, x.Derivative(j))
		}
	}

	_, err = jacobian.Variables[dual.Vec3]([]float64{1, 2})
	require.ErrorIs(t, err, jacobian.ErrDimensionMismatch)

	_, err = jacobian.Variables[dual.Vec3](nil)
	require.ErrorIs(t, err, jacobian.ErrEmptyPoint)
}

// TestGradientRosenbrock compares against the analytic gradient.
func TestGradientRosenbrock(t *testing.T) {
	x, y := 1.5, 2.0
	v, grad, err := jacobian.Gradient(rosenbrock, []float64{x, y})
	require.NoError(t, err)

	require.InDelta(t, (1-x)*(1-x)+100*(y-x*x)*(y-x*x), v, 1e-12)
	require.InDelta(t, -2*(1-x)-400*x*(y-x*x), grad[0], 1e-9)
	require.InDelta(t, 200*(y-x*x), grad[1], 1e-9)

	// The global minimum has a zero gradient.
	v, grad, err = jacobian.Gradient(rosenbrock, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, []float64{0, 0}, grad)
}

// TestGradientThroughExpressionTree drives a function built on the expr layer.
func TestGradientThroughExpressionTree(t *testing.T) {
	f := func(x []dual.Number[V2]) dual.Number[V2] {
		a, b := expr.Ref(&x[0]), expr.Ref(&x[1])
		return expr.Bind(expr.Mul(a, expr.Exp(b))).Number() // a·e^b
	}

	v, grad, err := jacobian.Gradient(f, []float64{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	require.Equal(t, []float64{1, 2}, grad)
}

// TestGradientErrors covers nil function, bad shape and finite validation.
func TestGradientErrors(t *testing.T) {
	_, _, err := jacobian.Gradient[V2](nil, []float64{1, 2})
	require.ErrorIs(t, err, jacobian.ErrNilFunc)

	_, _, err = jacobian.Gradient(rosenbrock, []float64{1, 2, 3})
	require.ErrorIs(t, err, jacobian.ErrDimensionMismatch)

	inv := func(x []dual.Number[V2]) dual.Number[V2] { return dual.ScalarDiv(1, x[0]) }

	// Default policy: IEEE values pass through.
	v, grad, err := jacobian.Gradient(inv, []float64{0, 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
	assert.True(t, math.IsInf(grad[0], -1))

	_, _, err = jacobian.Gradient(inv, []float64{0, 1}, jacobian.WithValidateFinite())
	require.ErrorIs(t, err, jacobian.ErrNaNInf)

	// Last option wins.
	_, _, err = jacobian.Gradient(inv, []float64{0, 1},
		jacobian.WithValidateFinite(), jacobian.WithNoValidateFinite(), nil)
	require.NoError(t, err)
}

// TestComputeRatio checks the 2×2 Jacobian of (x·y, x/y).
func TestComputeRatio(t *testing.T) {
	m, values, err := jacobian.Compute(ratio, []float64{3, 2}, jacobian.WithValidateFinite())
	require.NoError(t, err)
	require.Equal(t, []float64{6, 1.5}, values)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	require.Equal(t, [][]float64{
		{2, 3},       // ∂(xy) = (y, x)
		{0.5, -0.75}, // ∂(x/y) = (1/y, −x/y²)
	}, m.Values())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -0.75}, row)

	require.Equal(t, "[2.000000, 3.000000]\n[0.500000, -0.750000]\n", m.String())
	require.Equal(t, "[2.0, 3.0]\n[0.5, -0.8]\n", m.Format(1))
}

// TestComputeErrors covers empty outputs and non-finite rows.
func TestComputeErrors(t *testing.T) {
	none := func([]dual.Number[V2]) []dual.Number[V2] { return nil }
	_, _, err := jacobian.Compute(none, []float64{1, 1})
	require.ErrorIs(t, err, jacobian.ErrEmptyOutput)

	_, _, err = jacobian.Compute(ratio, []float64{1, 0}, jacobian.WithValidateFinite())
	require.ErrorIs(t, err, jacobian.ErrNaNInf)
	assert.Contains(t, err.Error(), "output 1")

	_, _, err = jacobian.Compute[V2](nil, []float64{1, 1})
	require.ErrorIs(t, err, jacobian.ErrNilFunc)
}

// TestMatrixAccess covers bounds checks and Clone independence.
func TestMatrixAccess(t *testing.T) {
	m, _, err := jacobian.Compute(ratio, []float64{3, 2})
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, jacobian.ErrIndexOutOfRange)
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, jacobian.ErrIndexOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, jacobian.ErrIndexOutOfRange)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 42))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, orig) // original untouched

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 42.0, got)
}
