package dual_test

import (
	"testing"

	"github.com/katalvlaran/fwdiff/dual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZeroValue verifies that the zero Number has value 0 and zero derivatives.
func TestZeroValue(t *testing.T) {
	var n dual.Number[dual.Vec4]                   // default-constructed
	require.Equal(t, 4, n.Width())                 // width follows the type argument
	require.Equal(t, 0.0, n.Value())               // value is zero
	require.Equal(t, dual.Vec4{}, n.Derivatives()) // all derivatives zero
}

// TestNewFromScalar ensures scalar construction leaves derivatives at zero.
func TestNewFromScalar(t *testing.T) {
	n := dual.New[dual.Vec3](2.5)
	require.Equal(t, 2.5, n.Value())
	for i := 0; i < n.Width(); i++ {
		require.Equal(t, 0.0, n.Derivative(i), "derivative %d", i)
	}
}

// TestSeed checks that Seed(i) yields a unit vector at i for every index.
func TestSeed(t *testing.T) {
	for i := 0; i < 5; i++ {
		n := dual.New[dual.Vec5](7)
		n.SetDerivative((i+1)%5, 3) // dirty a different slot first
		n.Seed(i)

		require.Equal(t, 7.0, n.Value(), "seed must keep the value")
		for j := 0; j < n.Width(); j++ {
			want := 0.0
			if j == i {
				want = 1.0
			}
			require.Equal(t, want, n.Derivative(j), "seed %d, derivative %d", i, j)
		}
	}
}

// TestSeededMatchesSeed verifies Seeded(x, i) is New(x) followed by Seed(i).
func TestSeededMatchesSeed(t *testing.T) {
	a := dual.Seeded[dual.Vec2](3, 1)
	b := dual.New[dual.Vec2](3)
	b.Seed(1)
	require.Equal(t, a, b)
}

// TestSetScalarClearsDerivatives checks assignment from a scalar.
func TestSetScalarClearsDerivatives(t *testing.T) {
	n := dual.Seeded[dual.Vec2](1, 0)
	n.SetScalar(9)
	require.Equal(t, 9.0, n.Value())
	require.Equal(t, dual.Vec2{}, n.Derivatives())
}

// TestCopyIndependence ensures copies do not share derivative storage.
func TestCopyIndependence(t *testing.T) {
	a := dual.Seeded[dual.Vec3](1, 0)
	b := a                 // value copy
	b.SetDerivative(0, 42) // mutate the copy only
	b.SetValue(-1)

	require.Equal(t, 1.0, a.Derivative(0)) // original keeps its seed
	require.Equal(t, 1.0, a.Value())       // and its value
}

// TestCheckedAccessors covers DerivativeAt / SetDerivativeAt bounds handling.
func TestCheckedAccessors(t *testing.T) {
	n := dual.Seeded[dual.Vec2](1, 1)

	v, err := n.DerivativeAt(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = n.DerivativeAt(2) // one past the end
	require.ErrorIs(t, err, dual.ErrIndexOutOfRange)

	_, err = n.DerivativeAt(-1) // negative index
	require.ErrorIs(t, err, dual.ErrIndexOutOfRange)

	require.NoError(t, n.SetDerivativeAt(0, 5))
	require.Equal(t, 5.0, n.Derivative(0))

	err = n.SetDerivativeAt(3, 1)
	require.ErrorIs(t, err, dual.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "SetDerivativeAt(3)")
}

// TestUncheckedAccessPanics documents the unchecked fast path contract.
func TestUncheckedAccessPanics(t *testing.T) {
	n := dual.New[dual.Vec1](0)
	i := 1
	assert.Panics(t, func() { _ = n.Derivative(i) })
	assert.Panics(t, func() { n.SetDerivative(i, 1) })
}

// TestFromParts checks explicit construction round-trips through accessors.
func TestFromParts(t *testing.T) {
	n := dual.FromParts(1.5, dual.Vec3{1, 2, 3})
	require.Equal(t, 1.5, n.Value())
	require.Equal(t, dual.Vec3{1, 2, 3}, n.Derivatives())
}

// TestString checks the "value [  d0  d1 … ]" layout.
func TestString(t *testing.T) {
	n := dual.FromParts(6, dual.Vec3{1, 1, 1})
	require.Equal(t, "6.000000 [  1.000000  1.000000  1.000000 ]", n.String())

	var one dual.Number[dual.Vec1]
	require.Equal(t, "0.000000 [  0.000000 ]", one.String())
}
