// Package pell solves the Pell equations x² − d·y² = 1 and x² − d·y² = −1
// exactly, and streams every further solution from the fundamental one.
//
// Fundamental solutions come from the continued fraction of √d
// (see package contfrac). With a0 and a period of length k:
//
//	x² − d·y² = +1:  k even → fold [a0, p1..p(k−1)]
//	                 k odd  → fold [a0, p1..pk, p1..p(k−1)]
//	x² − d·y² = −1:  k odd  → fold [a0, p1..p(k−1)]
//	                 k even → no solution (ErrNoNegativeSolution)
//
// Further solutions follow from
//
//	x(k+1) + y(k+1)·√d = (x(k) + y(k)·√d) · (x1 + y1·√d)
//
// once per step for +1, and twice per step for −1 (multiplying by the
// square of a −1 solution keeps the sign).
//
// All functions are generic over numeric.Arithmetic[T]: use
// numeric.BigInt for exact results of any size, or numeric.Uint64 /
// numeric.Int64 when the caller knows the values fit; overflow is reported
// as numeric.ErrOverflow, never wrapped.
//
// Errors:
//   - ErrPerfectSquare: d is a perfect square; only trivial solutions exist.
//   - ErrNoNegativeSolution: x² − d·y² = −1 has no solution for this d.
//   - ErrBadCount: Take was asked for a negative number of solutions.
package pell
