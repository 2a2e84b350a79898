package pell

import "errors"

var (
	// ErrPerfectSquare indicates that d is a perfect square, so √d has an
	// empty period and no non-trivial solution exists.
	ErrPerfectSquare = errors.New("pell: d is a perfect square")

	// ErrNoNegativeSolution indicates that the period of √d has even length,
	// in which case x² − d·y² = −1 is unsolvable.
	ErrNoNegativeSolution = errors.New("pell: x² − d·y² = −1 has no solution")

	// ErrBadCount indicates a negative solution count.
	ErrBadCount = errors.New("pell: count must be non-negative")
)
