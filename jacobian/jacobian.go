// SPDX-License-Identifier: MIT

package jacobian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fwdiff/dual"
)

// ScalarFunc maps N dual inputs to one dual output.
type ScalarFunc[V dual.Vector] func(x []dual.Number[V]) dual.Number[V]

// VectorFunc maps N dual inputs to M dual outputs.
type VectorFunc[V dual.Vector] func(x []dual.Number[V]) []dual.Number[V]

// Variables seeds one dual.Number per coordinate of point: x[i] has value
// point[i] and is the i-th independent variable.
// Stage 1 (Validate): point non-empty and len(point) == N.
// Stage 2 (Execute): build seeded numbers.
// Errors: ErrEmptyPoint, ErrDimensionMismatch.
// Complexity: O(N²) time, O(N²) memory.
func Variables[V dual.Vector](point []float64) ([]dual.Number[V], error) {
	var zero dual.Number[V]
	if len(point) == 0 {
		return nil, fmt.Errorf("Variables: %w", ErrEmptyPoint)
	}
	if len(point) != zero.Width() {
		return nil, fmt.Errorf("Variables: got %d coordinates for width %d: %w",
			len(point), zero.Width(), ErrDimensionMismatch)
	}

	xs := make([]dual.Number[V], len(point))
	for i, p := range point {
		xs[i] = dual.Seeded[V](p, i)
	}

	return xs, nil
}

// Gradient evaluates f at point and returns its value and ∇f.
// Stage 1 (Validate): f non-nil, point shape (see Variables).
// Stage 2 (Execute): one forward pass carries all N partials at once.
// Stage 3 (Finalize): optional finite check, copy derivatives out.
// Errors: ErrNilFunc, ErrEmptyPoint, ErrDimensionMismatch, ErrNaNInf.
// Complexity: one evaluation of f, each step O(N).
func Gradient[V dual.Vector](f ScalarFunc[V], point []float64, opts ...Option) (float64, []float64, error) {
	if f == nil {
		return 0, nil, fmt.Errorf("Gradient: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)

	xs, err := Variables[V](point)
	if err != nil {
		return 0, nil, fmt.Errorf("Gradient: %w", err)
	}

	y := f(xs)
	if o.validateFinite {
		if err = checkFinite(0, y); err != nil {
			return 0, nil, fmt.Errorf("Gradient: %w", err)
		}
	}

	grad := make([]float64, y.Width())
	for i := range grad {
		grad[i] = y.Derivative(i)
	}

	return y.Value(), grad, nil
}

// Compute evaluates f at point and returns the M×N Jacobian together with
// the M output values.
// Errors: ErrNilFunc, ErrEmptyPoint, ErrDimensionMismatch, ErrEmptyOutput, ErrNaNInf.
// Complexity: one evaluation of f plus O(M·N) to fill the matrix.
func Compute[V dual.Vector](f VectorFunc[V], point []float64, opts ...Option) (*Matrix, []float64, error) {
	if f == nil {
		return nil, nil, fmt.Errorf("Compute: %w", ErrNilFunc)
	}
	o := gatherOptions(opts...)

	xs, err := Variables[V](point)
	if err != nil {
		return nil, nil, fmt.Errorf("Compute: %w", err)
	}

	ys := f(xs)
	if len(ys) == 0 {
		return nil, nil, fmt.Errorf("Compute: %w", ErrEmptyOutput)
	}

	m := newMatrix(len(ys), len(point))
	values := make([]float64, len(ys))
	for r, y := range ys {
		if o.validateFinite {
			if err = checkFinite(r, y); err != nil {
				return nil, nil, fmt.Errorf("Compute: %w", err)
			}
		}
		values[r] = y.Value()
		row := m.rowSlice(r)
		for c := range row {
			row[c] = y.Derivative(c)
		}
	}

	return m, values, nil
}

// checkFinite reports ErrNaNInf for the first non-finite value or derivative
// of output row.
func checkFinite[V dual.Vector](row int, y dual.Number[V]) error {
	if isNonFinite(y.Value()) {
		return fmt.Errorf("output %d value %v: %w", row, y.Value(), ErrNaNInf)
	}
	for i := 0; i < y.Width(); i++ {
		if d := y.Derivative(i); isNonFinite(d) {
			return fmt.Errorf("output %d derivative %d = %v: %w", row, i, d, ErrNaNInf)
		}
	}

	return nil
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
