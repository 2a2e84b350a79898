package contfrac

import "fmt"

// Expand computes the continued fraction of √n: a0 followed by one full
// period.
//
// Algorithm:
//  1. Drive an Expander from state (1, 0, 1).
//  2. Stop at the first Term with A = 0 (perfect square exhausted) or the
//     first Term already present in the visited set.
//  3. The first A is a0; every later A before the stop is a period element.
//
// The visited set is local to the call, so repeated calls with the same n
// return identical expansions.
//
// Errors:
//   - ErrOptionViolation: an Option was invalid.
//   - ErrPeriodLimit: the period exceeded WithMaxPeriod.
//   - ctx.Err(): the context from WithContext was cancelled.
//
// Complexity: O(k) time and memory for a period of length k.
func Expand(n uint64, opts ...Option) (Expansion, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Expansion{}, o.err
	}

	var out Expansion
	seen := make(map[Term]struct{})
	for t := range NewExpander(n).All() {
		if err := o.Ctx.Err(); err != nil {
			return Expansion{}, fmt.Errorf("contfrac: expand √%d: %w", n, err)
		}
		if t.A == 0 {
			break
		}
		if _, dup := seen[t]; dup {
			break
		}
		seen[t] = struct{}{}

		if len(seen) == 1 {
			out.A0 = t.A
			continue
		}
		if o.MaxPeriod > 0 && len(out.Period) >= o.MaxPeriod {
			return Expansion{}, fmt.Errorf("expand √%d beyond %d terms: %w", n, o.MaxPeriod, ErrPeriodLimit)
		}
		out.Period = append(out.Period, t.A)
	}

	return out, nil
}

// Sqrt returns the integer part and the period of √n.
//
//	Sqrt(2) == (1, [2])
//	Sqrt(7) == (2, [1 1 1 4])
//	Sqrt(4) == (2, [])
func Sqrt(n uint64) (a0 uint64, period []uint64) {
	// Without options Expand has no failure path.
	e, _ := Expand(n)

	return e.A0, e.Period
}
