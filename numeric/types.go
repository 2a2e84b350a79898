// SPDX-License-Identifier: MIT
// Package: surd/numeric
//
// types.go: the Arithmetic capability set and its sentinel errors.

package numeric

import "errors"

// ErrOverflow indicates that a fixed-width operation could not represent
// its exact result. Callers match it with errors.Is; the wrapped message
// names the operation and its operands.
var ErrOverflow = errors.New("numeric: integer overflow")

// Arithmetic is the capability set {constructible-from-small-integer,
// addable, multipliable} over a value type T.
//
// Contract:
//   - Results are fresh values; operands are never mutated, so callers may
//     keep using a and b after the call.
//   - An implementation that cannot represent a result exactly MUST return
//     an error wrapping ErrOverflow instead of a truncated value.
type Arithmetic[T any] interface {
	// FromUint64 converts a machine integer into T.
	FromUint64(v uint64) (T, error)

	// Add returns a + b.
	Add(a, b T) (T, error)

	// Mul returns a · b.
	Mul(a, b T) (T, error)
}
