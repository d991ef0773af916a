// SPDX-License-Identifier: MIT
// Package dual: sentinel error set.
// Only the checked accessors return errors; arithmetic is total over the
// floating-point domain and never fails.

package dual

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a derivative index outside [0, Width()).
// Returned by DerivativeAt and SetDerivativeAt only.
var ErrIndexOutOfRange = errors.New("dual: derivative index out of range")

// indexErrorf wraps an underlying error with Number method context.
func indexErrorf(method string, i, width int, err error) error {
	return fmt.Errorf("Number.%s(%d) width %d: %w", method, i, width, err)
}
