// SPDX-License-Identifier: MIT

package jacobian

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major M×N table of partial derivatives:
// row i holds ∂fᵢ/∂x₀ … ∂fᵢ/∂x_{N-1}.
type Matrix struct {
	r, c int       // outputs, variables
	data []float64 // flat backing storage, length == r*c
}

// newMatrix allocates a zeroed r×c Matrix. Callers guarantee r, c > 0.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of function outputs.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of independent variables.
func (m *Matrix) Cols() int { return m.c }

// offset maps (row, col) to its position in data. Out-of-range pairs
// report the calling method and ErrIndexOutOfRange.
func (m *Matrix) offset(method string, row, col int) (int, error) {
	inside := uint(row) < uint(m.r) && uint(col) < uint(m.c)
	if !inside {
		return -1, matrixErrorf(method, row, col, ErrIndexOutOfRange)
	}

	return row*m.c + col, nil
}

// rowSlice aliases row i of the backing storage.
func (m *Matrix) rowSlice(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// At returns ∂f_row/∂x_col.
func (m *Matrix) At(row, col int) (float64, error) {
	k, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Set stores v as ∂f_row/∂x_col.
func (m *Matrix) Set(row, col int, v float64) error {
	k, err := m.offset("Set", row, col)
	if err == nil {
		m.data[k] = v
	}

	return err
}

// Row returns the gradient of output i as a fresh slice.
func (m *Matrix) Row(i int) ([]float64, error) {
	if _, err := m.offset("Row", i, 0); err != nil {
		return nil, err
	}

	return append([]float64(nil), m.rowSlice(i)...), nil
}

// Values returns every row, each in its own slice.
// Complexity: O(r*c).
func (m *Matrix) Values() [][]float64 {
	rows := make([][]float64, 0, m.r)
	for i := 0; i < m.r; i++ {
		rows = append(rows, append([]float64(nil), m.rowSlice(i)...))
	}

	return rows
}

// Clone returns a Matrix that shares no storage with m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String renders one bracketed row per line with six decimal places.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	return m.Format(6)
}

// Format is String with an explicit number of decimal places.
func (m *Matrix) Format(precision int) string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%.*f", precision, m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
