package contfrac_test

import (
	"context"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surd/contfrac"
	"github.com/katalvlaran/surd/numeric"
)

// TestSqrt_KnownExpansions pins the expansions of small radicands.
func TestSqrt_KnownExpansions(t *testing.T) {
	cases := []struct {
		n      uint64
		a0     uint64
		period []uint64
	}{
		{0, 0, nil},
		{1, 1, nil},
		{2, 1, []uint64{2}},
		{3, 1, []uint64{1, 2}},
		{4, 2, nil},
		{5, 2, []uint64{4}},
		{6, 2, []uint64{2, 4}},
		{7, 2, []uint64{1, 1, 1, 4}},
		{8, 2, []uint64{1, 4}},
		{9, 3, nil},
		{10, 3, []uint64{6}},
		{11, 3, []uint64{3, 6}},
		{12, 3, []uint64{2, 6}},
		{13, 3, []uint64{1, 1, 1, 1, 6}},
		{23, 4, []uint64{1, 3, 1, 8}},
		{61, 7, []uint64{1, 4, 3, 1, 2, 2, 1, 3, 4, 1, 14}},
	}
	for _, tc := range cases {
		a0, period := contfrac.Sqrt(tc.n)
		assert.Equal(t, tc.a0, a0, "a0 of √%d", tc.n)
		assert.Equal(t, tc.period, period, "period of √%d", tc.n)
	}
}

// TestSqrt_PeriodShape checks, for every non-square n below 2000, that the
// period minus its last element is a palindrome and the last element is 2·a0.
func TestSqrt_PeriodShape(t *testing.T) {
	for n := uint64(2); n < 2000; n++ {
		r := uint64(math.Sqrt(float64(n)))
		if r*r == n {
			_, period := contfrac.Sqrt(n)
			assert.Empty(t, period, "√%d is rational", n)
			continue
		}

		a0, period := contfrac.Sqrt(n)
		require.NotEmpty(t, period, "√%d must have a period", n)
		require.Equal(t, r, a0, "a0 of √%d", n)

		k := len(period)
		assert.Equal(t, 2*a0, period[k-1], "last element of √%d", n)
		body := period[:k-1]
		for i, j := 0, len(body)-1; i < j; i, j = i+1, j-1 {
			if !assert.Equal(t, body[i], body[j], "√%d period %v not palindromic", n, period) {
				break
			}
		}
	}
}

// TestSqrt_Idempotent verifies that independent expansions share no state.
func TestSqrt_Idempotent(t *testing.T) {
	for _, n := range []uint64{2, 7, 61, 109, 991} {
		a1, p1 := contfrac.Sqrt(n)
		a2, p2 := contfrac.Sqrt(n)
		assert.Equal(t, a1, a2)
		assert.Equal(t, p1, p2)
	}
}

// TestSqrt_MachineWidthRadicands exercises radicands whose intermediate
// products exceed 64 bits: √(m²−1) = [m−1; (1, 2m−2)] and √(m²+1) = [m; (2m)].
func TestSqrt_MachineWidthRadicands(t *testing.T) {
	const m = uint64(1) << 32

	a0, period := contfrac.Sqrt(math.MaxUint64) // m² − 1
	assert.Equal(t, m-1, a0)
	assert.Equal(t, []uint64{1, 2*m - 2}, period)

	k := m - 1
	a0, period = contfrac.Sqrt(k*k + 1)
	assert.Equal(t, k, a0)
	assert.Equal(t, []uint64{2 * k}, period)
}

// TestExpander_StateInvariant verifies that R divides n·P² − Q² after every step.
func TestExpander_StateInvariant(t *testing.T) {
	for _, n := range []uint64{2, 3, 7, 13, 61, 94, 991, 1_000_003} {
		e := contfrac.NewExpander(n)
		require.Equal(t, contfrac.State{P: 1, Q: 0, R: 1}, e.State())

		bn := new(big.Int).SetUint64(n)
		for i := 0; i < 64; i++ {
			s := e.Next().State
			p := new(big.Int).SetUint64(s.P)
			q := new(big.Int).SetUint64(s.Q)
			v := new(big.Int).Mul(p, p)
			v.Mul(v, bn).Sub(v, q.Mul(q, q))
			rem := new(big.Int).Rem(v, new(big.Int).SetUint64(s.R))
			require.Zero(t, rem.Sign(), "√%d step %d state %+v", n, i, s)
		}
	}
}

// TestExpander_PerfectSquareTerminates checks the (0, 0, 1) terminal state.
func TestExpander_PerfectSquareTerminates(t *testing.T) {
	e := contfrac.NewExpander(49)
	first := e.Next()
	assert.Equal(t, uint64(7), first.A)
	assert.Equal(t, contfrac.State{P: 0, Q: 0, R: 1}, first.State)

	for i := 0; i < 3; i++ {
		assert.Zero(t, e.Next().A, "exhausted expansion keeps yielding 0")
	}
}

// TestExpander_AllMatchesNext verifies that All and Next walk the same sequence.
func TestExpander_AllMatchesNext(t *testing.T) {
	byNext := contfrac.NewExpander(13)
	var want []contfrac.Term
	for i := 0; i < 12; i++ {
		want = append(want, byNext.Next())
	}

	var got []contfrac.Term
	for term := range contfrac.NewExpander(13).All() {
		got = append(got, term)
		if len(got) == 12 {
			break
		}
	}
	assert.Equal(t, want, got)
}

// TestExpand_Options covers the period limit, option validation and cancellation.
func TestExpand_Options(t *testing.T) {
	_, err := contfrac.Expand(7, contfrac.WithMaxPeriod(3))
	assert.ErrorIs(t, err, contfrac.ErrPeriodLimit)

	e, err := contfrac.Expand(7, contfrac.WithMaxPeriod(4))
	require.NoError(t, err)
	assert.Equal(t, 4, e.Len())

	_, err = contfrac.Expand(7, contfrac.WithMaxPeriod(0))
	assert.ErrorIs(t, err, contfrac.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = contfrac.Expand(7, contfrac.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestExpansion_Helpers covers Terms, IsSquare and String.
func TestExpansion_Helpers(t *testing.T) {
	e, err := contfrac.Expand(7)
	require.NoError(t, err)
	assert.False(t, e.IsSquare())
	assert.Equal(t, "[2; (1,1,1,4)]", e.String())
	terms, err := e.Terms(7)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 1, 1, 1, 4, 1, 1}, terms)
	terms, err = e.Terms(0)
	require.NoError(t, err)
	assert.Nil(t, terms)

	sq, err := contfrac.Expand(16)
	require.NoError(t, err)
	assert.True(t, sq.IsSquare())
	assert.Equal(t, "[4]", sq.String())
	terms, err = sq.Terms(5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4}, terms)
}

// TestFold_Continuants pins convergents of √2 and √7.
func TestFold_Continuants(t *testing.T) {
	cases := []struct {
		an       []uint64
		num, den uint64
	}{
		{[]uint64{1, 2}, 3, 2},
		{[]uint64{1, 2, 2}, 7, 5},
		{[]uint64{1, 2, 2, 2}, 17, 12},
		{[]uint64{1, 2, 2, 2, 2}, 41, 29},
		{[]uint64{2}, 2, 1},
		{[]uint64{2, 1}, 3, 1},
		{[]uint64{2, 1, 2}, 8, 3},
		{[]uint64{2, 1, 2, 1}, 11, 4},
		{[]uint64{2, 1, 2, 1, 1}, 19, 7},
		{[]uint64{2, 1, 2, 1, 1, 4}, 87, 32},
		{[]uint64{2, 1, 2, 1, 1, 4, 1}, 106, 39},
		{[]uint64{2, 1, 2, 1, 1, 4, 1, 1}, 193, 71},
		{[]uint64{2, 1, 2, 1, 1, 4, 1, 1, 6}, 1264, 465},
		{[]uint64{2, 1, 2, 1, 1, 4, 1, 1, 6, 1}, 1457, 536},
	}
	for _, tc := range cases {
		num, den, err := contfrac.Fold(numeric.Uint64{}, tc.an)
		require.NoError(t, err)
		assert.Equal(t, tc.num, num, "numerator of %v", tc.an)
		assert.Equal(t, tc.den, den, "denominator of %v", tc.an)

		bn, bd, err := contfrac.Fold(numeric.BigInt{}, tc.an)
		require.NoError(t, err)
		assert.Equal(t, tc.num, bn.Uint64(), "big numerator of %v", tc.an)
		assert.Equal(t, tc.den, bd.Uint64(), "big denominator of %v", tc.an)
	}
}

// TestFold_Empty verifies the (1, 0) seed of the recurrence.
func TestFold_Empty(t *testing.T) {
	num, den, err := contfrac.Fold(numeric.Int64{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(0), den)
}

// TestFold_Overflow checks that fixed-width folding fails instead of wrapping.
func TestFold_Overflow(t *testing.T) {
	an := make([]uint64, 100)
	for i := range an {
		an[i] = 2
	}
	an[0] = 1

	_, _, err := contfrac.Fold(numeric.Uint64{}, an)
	assert.ErrorIs(t, err, numeric.ErrOverflow)

	num, den, err := contfrac.Fold(numeric.BigInt{}, an)
	require.NoError(t, err)
	// Convergents of √2 satisfy num² − 2·den² = ±1.
	v := new(big.Int).Mul(num, num)
	w := new(big.Int).Mul(den, den)
	v.Sub(v, w.Lsh(w, 1))
	assert.Zero(t, v.CmpAbs(big.NewInt(1)), "|num² − 2·den²| = 1")
}

// TestConvergent walks the first convergents of √7.
func TestConvergent(t *testing.T) {
	e, err := contfrac.Expand(7)
	require.NoError(t, err)

	want := [][2]uint64{{2, 1}, {3, 1}, {5, 2}, {8, 3}, {37, 14}}
	for k, w := range want {
		num, den, err := contfrac.Convergent(numeric.Uint64{}, e, k+1)
		require.NoError(t, err)
		assert.Equal(t, w, [2]uint64{num, den}, "convergent %d", k+1)
	}

	_, _, err = contfrac.Convergent(numeric.Uint64{}, e, 0)
	assert.ErrorIs(t, err, contfrac.ErrBadIndex)
}

// TestTerms_IndexBound verifies that oversized term counts fail with
// ErrBadIndex instead of allocating.
func TestTerms_IndexBound(t *testing.T) {
	e, err := contfrac.Expand(7)
	require.NoError(t, err)

	for _, k := range []int{contfrac.MaxTerms + 1, 1 << 50, math.MaxInt} {
		_, err := e.Terms(k)
		assert.ErrorIs(t, err, contfrac.ErrBadIndex, "Terms(%d)", k)

		_, _, err = contfrac.Convergent(numeric.BigInt{}, e, k)
		assert.ErrorIs(t, err, contfrac.ErrBadIndex, "Convergent(%d)", k)
	}

	terms, err := e.Terms(contfrac.MaxTerms)
	require.NoError(t, err)
	assert.Len(t, terms, contfrac.MaxTerms)
}
