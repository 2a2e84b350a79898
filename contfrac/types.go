// Package contfrac defines the expansion state, produced terms, options and
// sentinel errors.
package contfrac

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for expansion and folding.
var (
	// ErrPeriodLimit is returned by Expand when the period grows beyond
	// the limit set with WithMaxPeriod.
	ErrPeriodLimit = errors.New("contfrac: period limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("contfrac: invalid option supplied")

	// ErrBadIndex is returned when a convergent index is smaller than 1
	// or larger than MaxTerms.
	ErrBadIndex = errors.New("contfrac: convergent index out of range")
)

// MaxTerms is the largest number of partial quotients Terms materializes.
const MaxTerms = 1 << 20

// State is the exact remainder (P·√n + Q) / R at one step of an expansion.
//
// After every update R divides n·P² − Q². The expansion starts at
// {1, 0, 1} (that is, √n itself) and a terminated expansion sits at
// {0, 0, 1}.
type State struct {
	P, Q, R uint64
}

// initialState is √n.
var initialState = State{P: 1, Q: 0, R: 1}

// terminalState marks an exhausted (perfect square) expansion.
var terminalState = State{P: 0, Q: 0, R: 1}

// Term is one produced pair: the partial quotient A and the state reached
// after removing it. Term is comparable and serves as a cycle-detection key.
type Term struct {
	A     uint64
	State State
}

// Expansion is the continued fraction of √n: the integer part A0 followed
// by one full period of partial quotients. Period is empty iff n is a
// perfect square.
type Expansion struct {
	A0     uint64
	Period []uint64
}

// IsSquare reports whether the expansion terminated, i.e. n was a perfect square.
func (e Expansion) IsSquare() bool {
	return len(e.Period) == 0
}

// Len returns the period length.
func (e Expansion) Len() int {
	return len(e.Period)
}

// Terms returns the first k partial quotients a0, a1, ..., cycling through
// the period as often as needed. For a perfect square only a0 exists, so
// at most one term is returned. k <= 0 yields no terms; k > MaxTerms
// fails with ErrBadIndex.
func (e Expansion) Terms(k int) ([]uint64, error) {
	if k <= 0 {
		return nil, nil
	}
	if k > MaxTerms {
		return nil, fmt.Errorf("terms %d (max %d): %w", k, MaxTerms, ErrBadIndex)
	}
	if e.IsSquare() {
		return []uint64{e.A0}, nil
	}
	out := make([]uint64, k)
	out[0] = e.A0
	for i := 1; i < k; i++ {
		out[i] = e.Period[(i-1)%len(e.Period)]
	}

	return out, nil
}

// String renders the expansion as [a0; (a1,a2,...)], or [a0] for a square.
func (e Expansion) String() string {
	if e.IsSquare() {
		return fmt.Sprintf("[%d]", e.A0)
	}
	parts := make([]string, len(e.Period))
	for i, a := range e.Period {
		parts[i] = fmt.Sprintf("%d", a)
	}

	return fmt.Sprintf("[%d; (%s)]", e.A0, strings.Join(parts, ","))
}

// Option configures Expand via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters for Expand.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per term.
	Ctx context.Context

	// MaxPeriod, if > 0, aborts with ErrPeriodLimit once the period would
	// exceed this many terms. 0 means no limit.
	MaxPeriod int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no period limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxPeriod: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPeriod bounds the period length.
//
//	k > 0: abort with ErrPeriodLimit after k terms
//	k <= 0: invalid option → ErrOptionViolation
func WithMaxPeriod(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: MaxPeriod must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPeriod = k
	}
}
