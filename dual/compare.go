// SPDX-License-Identifier: MIT

package dual

// Comparisons look at values only; derivatives never influence ordering.
// Compare against a plain scalar with a.Value() < c.

// Less reports a.Value() < b.Value().
func Less[V Vector](a, b Number[V]) bool { return a.value < b.value }

// LessEq reports a.Value() <= b.Value().
func LessEq[V Vector](a, b Number[V]) bool { return a.value <= b.value }

// Greater reports a.Value() > b.Value().
func Greater[V Vector](a, b Number[V]) bool { return a.value > b.value }

// GreaterEq reports a.Value() >= b.Value().
func GreaterEq[V Vector](a, b Number[V]) bool { return a.value >= b.value }
