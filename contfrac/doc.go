// Package contfrac expands square roots of integers into periodic continued
// fractions and folds partial quotients back into convergents.
//
// 🚀 What is the expansion of √n?
//
//	Every irrational √n has an eventually periodic continued fraction
//
//	  √n = a0 + 1/(a1 + 1/(a2 + 1/(... + 1/(ak + 1/(a1 + ...)))))
//
//	written [a0; (a1, ..., ak)]. For a perfect square the period is empty
//	and a0 = √n exactly.
//
// ✨ Key features:
//   - exact: every step is an integer state (p·√n + q)/r reduced by gcd,
//     no floating point anywhere
//   - lazy: Expander produces one (quotient, state) Term per Next call
//   - cycle detection: Expand stops at the first repeated Term
//   - generic folding: Fold works over any numeric.Arithmetic[T]
//   - cancellable: WithContext / WithMaxPeriod bound very long periods
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/surd/contfrac"
//
//	a0, period := contfrac.Sqrt(7) // 2, [1 1 1 4]
//
//	num, den, err := contfrac.Fold(numeric.BigInt{}, []uint64{2, 1, 1, 1})
//	// num=8, den=3
//
// Invariants:
//   - For a non-square n the period is non-empty, its last element is 2·a0,
//     and the elements before it read the same in both directions.
//   - Expand is deterministic: equal inputs give identical expansions.
//
// Performance:
//
//   - Time:   O(k) steps for a period of length k, each O(1) big-int ops
//     on numbers of O(log n) bits
//   - Memory: O(k) for the visited-term set and the period
package contfrac
