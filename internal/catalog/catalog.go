// Package catalog is a registry of named test functions with fixed input
// dimension, differentiated through the jacobian drivers. The CLI resolves
// user-supplied names against it.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/fwdiff/dual"
	"github.com/katalvlaran/fwdiff/jacobian"
)

// ErrUnknownFunction is returned by Lookup for names not in the registry.
var ErrUnknownFunction = errors.New("catalog: unknown function")

// Result holds the output values and the M×N Jacobian at a point.
type Result struct {
	Values   []float64
	Jacobian *jacobian.Matrix
}

// evalFunc evaluates one entry at a point.
type evalFunc func(point []float64, opts ...jacobian.Option) (Result, error)

// Entry describes one registered function.
type Entry struct {
	Name        string
	Description string
	Inputs      int       // N, fixed by the dual width the function uses
	Outputs     int       // M
	Default     []float64 // point used when none is given
	Path        string    // "eager" (dual API) or "tree" (expr layer)

	eval evalFunc
}

// Evaluate differentiates the entry at point.
func (e Entry) Evaluate(point []float64, opts ...jacobian.Option) (Result, error) {
	res, err := e.eval(point, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", e.Name, err)
	}

	return res, nil
}

// registry maps names to entries; filled by register in init.
var registry = map[string]Entry{}

// register adds e, panicking on duplicates (programmer error).
func register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic("catalog: duplicate function " + e.Name)
	}
	registry[e.Name] = e
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}

	return e, nil
}

// Entries returns all entries sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// scalar adapts a one-output function into an evalFunc.
func scalar[V dual.Vector](f jacobian.ScalarFunc[V]) evalFunc {
	return vector(func(x []dual.Number[V]) []dual.Number[V] {
		return []dual.Number[V]{f(x)}
	})
}

// vector adapts a multi-output function into an evalFunc.
func vector[V dual.Vector](f jacobian.VectorFunc[V]) evalFunc {
	return func(point []float64, opts ...jacobian.Option) (Result, error) {
		m, values, err := jacobian.Compute(f, point, opts...)
		if err != nil {
			return Result{}, err
		}

		return Result{Values: values, Jacobian: m}, nil
	}
}
