package contfrac

import (
	"fmt"

	"github.com/katalvlaran/surd/numeric"
)

// Fold evaluates the continued fraction [q0; q1, ..., qk] into its
// convergent num/den.
//
// The quotients are walked from the innermost term outwards. Starting from
// (num, den) = (1, 0), each step swaps the pair and sets num += a·den,
// which is the continuant recurrence h_k = a_k·h_{k−1} + h_{k−2} without
// indexed access. An empty slice yields (1, 0).
//
// The only failure path is the arithmetic itself, e.g. numeric.ErrOverflow
// from a fixed-width implementation.
//
//	Fold(numeric.BigInt{}, []uint64{1, 2})             // 3, 2
//	Fold(numeric.BigInt{}, []uint64{2, 1, 2, 1, 1, 4}) // 87, 32
func Fold[T any](ar numeric.Arithmetic[T], quotients []uint64) (num, den T, err error) {
	var zero T
	if num, err = ar.FromUint64(1); err != nil {
		return zero, zero, err
	}
	if den, err = ar.FromUint64(0); err != nil {
		return zero, zero, err
	}

	for i := len(quotients) - 1; i >= 0; i-- {
		num, den = den, num

		a, err := ar.FromUint64(quotients[i])
		if err != nil {
			return zero, zero, err
		}
		ad, err := ar.Mul(a, den)
		if err != nil {
			return zero, zero, err
		}
		if num, err = ar.Add(num, ad); err != nil {
			return zero, zero, err
		}
	}

	return num, den, nil
}

// Convergent returns the k-th convergent of e, built from its first k
// partial quotients (k = 1 gives a0/1). A perfect square only has a0, so
// every k ≥ 1 yields a0/1 there. k must lie in [1, MaxTerms].
func Convergent[T any](ar numeric.Arithmetic[T], e Expansion, k int) (num, den T, err error) {
	var zero T
	if k < 1 {
		return zero, zero, fmt.Errorf("convergent %d: %w", k, ErrBadIndex)
	}
	an, err := e.Terms(k)
	if err != nil {
		return zero, zero, fmt.Errorf("convergent %d: %w", k, err)
	}

	return Fold(ar, an)
}
