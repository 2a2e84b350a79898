package contfrac

import (
	"iter"
	"math/big"
)

var one = big.NewInt(1)

// Expander lazily produces the continued fraction of √n as a sequence of
// Terms. It is a single-goroutine generator: each Next runs one exact step
// and the sequence never ends (a perfect square keeps yielding A = 0).
//
// Step, for the current state (p, q, r):
//
//	a  = max{ a : (a·r − q)² ≤ n·p² }, scanned up from ⌊(p·⌊√n⌋ + q) / r⌋
//	if a² = n or p = 0:  state ← (0, 0, 1)
//	else:                b = a·r − q
//	                     state ← (r·p, r·b, n·p² − b²) / gcd
//
// Intermediate products are evaluated in math/big, so no n up to 2⁶⁴−1
// wraps. The reduced state of a surd always has P = 1, Q ≤ √n and R ≤ 2√n,
// which is why State fits in machine words.
type Expander struct {
	n     *big.Int // radicand
	sqrtN *big.Int // ⌊√n⌋
	state State

	// scratch registers reused by every step
	p, q, r, a, s, t, u *big.Int
}

// NewExpander returns an Expander positioned at √n, i.e. state (1, 0, 1).
func NewExpander(n uint64) *Expander {
	bn := new(big.Int).SetUint64(n)

	return &Expander{
		n:     bn,
		sqrtN: new(big.Int).Sqrt(bn),
		state: initialState,
		p:     new(big.Int),
		q:     new(big.Int),
		r:     new(big.Int),
		a:     new(big.Int),
		s:     new(big.Int),
		t:     new(big.Int),
		u:     new(big.Int),
	}
}

// State returns the current remainder state without advancing.
func (e *Expander) State() State {
	return e.state
}

// Next computes the next partial quotient, advances the state and returns
// both as a Term.
func (e *Expander) Next() Term {
	e.p.SetUint64(e.state.P)
	e.q.SetUint64(e.state.Q)
	e.r.SetUint64(e.state.R)

	e.quotient() // e.a = a, e.t = n·p²
	a := e.a.Uint64()

	if e.state.P == 0 || e.s.Mul(e.a, e.a).Cmp(e.n) == 0 {
		e.state = terminalState
		return Term{A: a, State: e.state}
	}

	// b = a·r − q
	b := e.s.Mul(e.a, e.r)
	b.Sub(b, e.q)
	// r' = n·p² − b²
	r2 := e.u.Mul(b, b)
	r2.Sub(e.t, r2)
	// q' = r·b, p' = r·p
	q2 := e.q.Mul(e.r, b)
	p2 := e.p.Mul(e.r, e.p)

	g := e.a.GCD(nil, nil, p2, q2)
	g.GCD(nil, nil, g, r2)
	p2.Quo(p2, g)
	q2.Quo(q2, g)
	r2.Quo(r2, g)

	e.state = State{P: p2.Uint64(), Q: q2.Uint64(), R: r2.Uint64()}

	return Term{A: a, State: e.state}
}

// All ranges over the same unbounded sequence as repeated calls to Next.
// The consumer stops it by breaking out of the loop.
func (e *Expander) All() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// quotient leaves the greatest a with (a·r − q)² ≤ n·p² in e.a
// and n·p² in e.t. The estimate can undershoot by integer truncation,
// so it is bumped while the next candidate still satisfies the bound.
func (e *Expander) quotient() {
	e.t.Mul(e.p, e.p)
	e.t.Mul(e.t, e.n)

	e.a.Mul(e.p, e.sqrtN)
	e.a.Add(e.a, e.q)
	e.a.Quo(e.a, e.r)

	for {
		// s = ((a+1)·r − q)²
		e.s.Add(e.a, one)
		e.s.Mul(e.s, e.r)
		e.s.Sub(e.s, e.q)
		e.s.Mul(e.s, e.s)
		if e.s.Cmp(e.t) > 0 {
			return
		}
		e.a.Add(e.a, one)
	}
}
