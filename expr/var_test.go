package expr_test

import (
	"testing"

	"github.com/katalvlaran/fwdiff/dual"
	"github.com/katalvlaran/fwdiff/expr"
	"github.com/stretchr/testify/require"
)

// TestVarConstruction covers the zero value and the three constructors.
func TestVarConstruction(t *testing.T) {
	var zero expr.Var[dual.Vec2]
	require.Equal(t, 0.0, zero.Value())
	require.Equal(t, dual.Number[dual.Vec2]{}, zero.Number())
	require.Equal(t, 2, zero.Width())

	s := expr.NewVar[dual.Vec2](4)
	require.Equal(t, dual.New[dual.Vec2](4), s.Number())

	n := dual.Seeded[dual.Vec2](7, 1)
	c := expr.VarOf(n)
	require.Equal(t, n, c.Number())

	b := expr.Bind(expr.Mul(c, expr.C[dual.Vec2](3)))
	require.Equal(t, 21.0, b.Value())
	require.Equal(t, 3.0, b.Derivative(1))
}

// TestSingleVariable covers f = x·y with x seeded and y a plain constant.
func TestSingleVariable(t *testing.T) {
	x := expr.NewVar[dual.Vec1](123.0)
	y := expr.NewVar[dual.Vec1](42.0)
	x.Diff(0)

	f := expr.Bind(expr.Mul(x, y))
	require.Equal(t, 5166.0, f.Value())
	require.Equal(t, 42.0, f.Derivative(0))
}

// TestAssignScalarAndNumber checks the non-expression assignment paths.
func TestAssignScalarAndNumber(t *testing.T) {
	v := expr.NewVar[dual.Vec2](1).Diff(0)

	v.SetScalar(3)
	require.Equal(t, dual.New[dual.Vec2](3), v.Number())

	n := dual.FromParts(2, dual.Vec2{5, 6})
	v.SetNumber(n)
	require.Equal(t, n, v.Number())

	n.SetValue(100) // the Var holds its own copy
	require.Equal(t, 2.0, v.Value())
}

// TestDiff verifies Diff seeds the idx-th variable and keeps the value.
func TestDiff(t *testing.T) {
	v := expr.VarOf(dual.FromParts(9, dual.Vec3{4, 4, 4}))
	ret := v.Diff(2)

	require.Same(t, v, ret)
	require.Equal(t, 9.0, v.Value())
	require.Equal(t, dual.Vec3{0, 0, 1}, v.Number().Derivatives())
}

// TestAccessorsWrite checks SetValue / SetDerivative delegate to storage.
func TestAccessorsWrite(t *testing.T) {
	v := expr.NewVar[dual.Vec2](0)
	v.SetValue(1.5)
	v.SetDerivative(1, -2)

	require.Equal(t, dual.FromParts(1.5, dual.Vec2{0, -2}), v.Number())
	require.Equal(t, v.Number(), v.Eval())
}

// TestAssignDoesNotMutateOperands guards against writing through borrowed leaves.
func TestAssignDoesNotMutateOperands(t *testing.T) {
	a := dual.Seeded[dual.Vec2](2, 0)
	b := dual.Seeded[dual.Vec2](3, 1)
	x := expr.NewVar[dual.Vec2](5).Diff(0)
	beforeA, beforeB, beforeX := a, b, x.Number()

	var out expr.Var[dual.Vec2]
	out.Assign(expr.Pow(expr.Mul(expr.Ref(&a), x), expr.Log(expr.Ref(&b))))

	require.Equal(t, beforeA, a)
	require.Equal(t, beforeB, b)
	require.Equal(t, beforeX, x.Number())
}

// TestSelfAssignment ensures v = v·x reads the old v for every derivative.
func TestSelfAssignment(t *testing.T) {
	x := expr.NewVar[dual.Vec2](3).Diff(0)
	y := expr.NewVar[dual.Vec2](4).Diff(1)

	v := expr.Bind(expr.Mul(x, y)) // v = x·y = 12, ∂ = (4, 3)
	v.Assign(expr.Mul(v, x))       // v = x²·y = 36, ∂ = (2xy, x²) = (24, 9)

	require.Equal(t, 36.0, v.Value())
	require.Equal(t, 24.0, v.Derivative(0))
	require.Equal(t, 9.0, v.Derivative(1))
}

// TestChainingAcrossStatements composes f = x·y; g = f + z.
func TestChainingAcrossStatements(t *testing.T) {
	x := expr.NewVar[dual.Vec3](2).Diff(0)
	y := expr.NewVar[dual.Vec3](5).Diff(1)
	z := expr.NewVar[dual.Vec3](-1).Diff(2)

	var f, g expr.Var[dual.Vec3]
	f.Assign(expr.Mul(x, y))
	g.Assign(expr.Add(&f, z))

	require.Equal(t, 9.0, g.Value())
	require.Equal(t, dual.Vec3{5, 2, 1}, g.Number().Derivatives())

	// Reassigning f does not retroactively change g.
	f.SetScalar(0)
	require.Equal(t, 9.0, g.Value())
}
