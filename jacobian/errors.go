// SPDX-License-Identifier: MIT
// Package jacobian: sentinel error set.
// All drivers return these sentinels (wrapped with call-site context) and
// tests match them via errors.Is. No driver panics on user input.

package jacobian

import "errors"

var (
	// ErrEmptyPoint is returned when the evaluation point has no coordinates.
	ErrEmptyPoint = errors.New("jacobian: empty evaluation point")

	// ErrDimensionMismatch indicates len(point) differs from the width N
	// of the dual numbers the function is instantiated with.
	ErrDimensionMismatch = errors.New("jacobian: dimension mismatch")

	// ErrEmptyOutput is returned when a vector function yields no components.
	ErrEmptyOutput = errors.New("jacobian: function returned no outputs")

	// ErrNaNInf signals a NaN or ±Inf value or derivative under
	// WithValidateFinite.
	ErrNaNInf = errors.New("jacobian: NaN or Inf encountered")

	// ErrIndexOutOfRange indicates a row or column outside the Matrix bounds.
	ErrIndexOutOfRange = errors.New("jacobian: index out of range")

	// ErrNilFunc is returned when the function argument is nil.
	ErrNilFunc = errors.New("jacobian: nil function")
)
