package pell

import (
	"fmt"

	"github.com/katalvlaran/surd/contfrac"
	"github.com/katalvlaran/surd/numeric"
)

// Solution is one pair (X, Y) with X² − d·Y² = ±1.
type Solution[T any] struct {
	X, Y T
}

// Solve returns the fundamental solution of x² − d·y² = 1.
//
//	Solve(numeric.BigInt{}, 2)  // 3, 2
//	Solve(numeric.BigInt{}, 61) // 1766319049, 226153980
//
// It fails with ErrPerfectSquare when d is a perfect square.
func Solve[T any](ar numeric.Arithmetic[T], d uint64) (x, y T, err error) {
	e, err := expand(d)
	if err != nil {
		return x, y, err
	}

	k := e.Len()
	an := make([]uint64, 0, 2*k)
	an = append(an, e.A0)
	if k%2 == 1 {
		an = append(an, e.Period...)
	}
	an = append(an, e.Period[:k-1]...)

	if x, y, err = contfrac.Fold(ar, an); err != nil {
		return x, y, fmt.Errorf("pell: solve d=%d: %w", d, err)
	}

	return x, y, nil
}

// SolveNegative returns the fundamental solution of x² − d·y² = −1.
//
// The negative equation is solvable iff the period of √d has odd length;
// otherwise it fails with ErrNoNegativeSolution rather than returning a
// pair that does not satisfy the equation. A perfect square fails with
// ErrPerfectSquare.
func SolveNegative[T any](ar numeric.Arithmetic[T], d uint64) (x, y T, err error) {
	e, err := expand(d)
	if err != nil {
		return x, y, err
	}

	k := e.Len()
	if k%2 == 0 {
		return x, y, fmt.Errorf("d=%d has period %d: %w", d, k, ErrNoNegativeSolution)
	}
	an := make([]uint64, 0, k)
	an = append(an, e.A0)
	an = append(an, e.Period[:k-1]...)

	if x, y, err = contfrac.Fold(ar, an); err != nil {
		return x, y, fmt.Errorf("pell: solve negative d=%d: %w", d, err)
	}

	return x, y, nil
}

// expand returns the continued fraction of √d, rejecting perfect squares.
func expand(d uint64) (contfrac.Expansion, error) {
	e, err := contfrac.Expand(d)
	if err != nil {
		return contfrac.Expansion{}, err
	}
	if e.IsSquare() {
		return contfrac.Expansion{}, fmt.Errorf("d=%d: %w", d, ErrPerfectSquare)
	}

	return e, nil
}
