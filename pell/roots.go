package pell

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/surd/numeric"
)

// Roots lazily generates the ascending solutions of a Pell equation,
// starting with the fundamental one. A Roots value is a single-goroutine
// generator; construct a new one to restart the sequence.
type Roots[T any] struct {
	ar    numeric.Arithmetic[T]
	d     uint64
	dT    T
	first Solution[T]
	cur   Solution[T]
	steps int // multiplications by the fundamental unit per Next
	err   error
}

// NewRoots returns the stream (x1, y1), (x2, y2), ... of solutions of
// x² − d·y² = 1. It fails like Solve.
func NewRoots[T any](ar numeric.Arithmetic[T], d uint64) (*Roots[T], error) {
	x, y, err := Solve(ar, d)
	if err != nil {
		return nil, err
	}

	return newRoots(ar, d, Solution[T]{X: x, Y: y}, 1)
}

// NewNegativeRoots returns the stream of solutions of x² − d·y² = −1.
// It fails like SolveNegative.
func NewNegativeRoots[T any](ar numeric.Arithmetic[T], d uint64) (*Roots[T], error) {
	x, y, err := SolveNegative(ar, d)
	if err != nil {
		return nil, err
	}

	return newRoots(ar, d, Solution[T]{X: x, Y: y}, 2)
}

func newRoots[T any](ar numeric.Arithmetic[T], d uint64, first Solution[T], steps int) (*Roots[T], error) {
	dT, err := ar.FromUint64(d)
	if err != nil {
		return nil, fmt.Errorf("pell: d=%d: %w", d, err)
	}

	return &Roots[T]{ar: ar, d: d, dT: dT, first: first, cur: first, steps: steps}, nil
}

// D returns the equation parameter d.
func (r *Roots[T]) D() uint64 {
	return r.d
}

// Fundamental returns the first (smallest positive) solution.
func (r *Roots[T]) Fundamental() Solution[T] {
	return r.first
}

// Next returns the current solution and advances to the following one.
//
// If advancing overflows the numeric type, the current solution is still
// returned and every later call reports the overflow error.
func (r *Roots[T]) Next() (Solution[T], error) {
	if r.err != nil {
		return Solution[T]{}, r.err
	}

	out := r.cur
	next := r.cur
	for i := 0; i < r.steps; i++ {
		s, err := r.mul(next)
		if err != nil {
			// r.cur keeps the last valid solution.
			r.err = fmt.Errorf("pell: advance d=%d: %w", r.d, err)
			return out, nil
		}
		next = s
	}
	r.cur = next

	return out, nil
}

// takePrealloc bounds the capacity Take reserves up front.
const takePrealloc = 64

// Take returns the next k solutions.
func (r *Roots[T]) Take(k int) ([]Solution[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("take %d: %w", k, ErrBadCount)
	}
	out := make([]Solution[T], 0, min(k, takePrealloc))
	for len(out) < k {
		s, err := r.Next()
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}

	return out, nil
}

// All ranges over the remaining solutions. It ends after yielding the
// first error, if any.
func (r *Roots[T]) All() iter.Seq2[Solution[T], error] {
	return func(yield func(Solution[T], error) bool) {
		for {
			s, err := r.Next()
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// mul returns s·(x1 + y1·√d):
//
//	x' = x·x1 + d·y·y1
//	y' = y·x1 + x·y1
func (r *Roots[T]) mul(s Solution[T]) (Solution[T], error) {
	ar := r.ar
	x1, y1 := r.first.X, r.first.Y

	xx, err := ar.Mul(s.X, x1)
	if err != nil {
		return Solution[T]{}, err
	}
	yy, err := ar.Mul(s.Y, y1)
	if err != nil {
		return Solution[T]{}, err
	}
	dyy, err := ar.Mul(r.dT, yy)
	if err != nil {
		return Solution[T]{}, err
	}
	x, err := ar.Add(xx, dyy)
	if err != nil {
		return Solution[T]{}, err
	}

	yx, err := ar.Mul(s.Y, x1)
	if err != nil {
		return Solution[T]{}, err
	}
	xy, err := ar.Mul(s.X, y1)
	if err != nil {
		return Solution[T]{}, err
	}
	y, err := ar.Add(yx, xy)
	if err != nil {
		return Solution[T]{}, err
	}

	return Solution[T]{X: x, Y: y}, nil
}
