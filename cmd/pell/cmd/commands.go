package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surd/contfrac"
	"github.com/katalvlaran/surd/numeric"
	"github.com/katalvlaran/surd/pell"
)

func (a *app) expandOptions(cmd *cobra.Command) ([]contfrac.Option, func()) {
	ctx, cancel := a.commandContext(cmd)
	opts := []contfrac.Option{contfrac.WithContext(ctx)}
	if a.cfg.MaxPeriod > 0 {
		opts = append(opts, contfrac.WithMaxPeriod(a.cfg.MaxPeriod))
	}

	return opts, cancel
}

func (a *app) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand N",
		Short: "Print the continued fraction of √N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("N", args[0])
			if err != nil {
				return err
			}
			opts, cancel := a.expandOptions(cmd)
			defer cancel()

			start := time.Now()
			e, err := contfrac.Expand(n, opts...)
			if err != nil {
				return err
			}
			a.log.Printf("expanded sqrt(%d): period %d in %s", n, e.Len(), time.Since(start))

			return a.print(cmd, expandResult{N: n, A0: e.A0, Period: e.Period})
		},
	}
}

func (a *app) convergentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convergent N K",
		Short: "Print the K-th convergent of √N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint("N", args[0])
			if err != nil {
				return err
			}
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid K %q: %w", args[1], err)
			}
			opts, cancel := a.expandOptions(cmd)
			defer cancel()

			e, err := contfrac.Expand(n, opts...)
			if err != nil {
				return err
			}
			num, den, err := contfrac.Convergent(numeric.BigInt{}, e, k)
			if err != nil {
				return err
			}

			return a.print(cmd, convergentResult{N: n, K: k, Numerator: num.String(), Denominator: den.String()})
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var negative bool
	c := &cobra.Command{
		Use:   "solve D",
		Short: "Print the fundamental solution of x² − D·y² = 1 (or −1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseUint("D", args[0])
			if err != nil {
				return err
			}

			solve, rhs := pell.Solve[*big.Int], 1
			if negative {
				solve, rhs = pell.SolveNegative[*big.Int], -1
			}
			x, y, err := solve(numeric.BigInt{}, d)
			if err != nil {
				return err
			}
			a.log.Printf("solved d=%d: x has %d bits", d, x.BitLen())

			return a.print(cmd, solveResult{D: d, RHS: rhs, pair: pair{X: x.String(), Y: y.String()}})
		},
	}
	c.Flags().BoolVarP(&negative, "negative", "n", false, "solve x² − D·y² = −1")

	return c
}

func (a *app) rootsCmd() *cobra.Command {
	var negative bool
	var count int
	c := &cobra.Command{
		Use:   "roots D",
		Short: "Print the first solutions of x² − D·y² = 1 (or −1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseUint("D", args[0])
			if err != nil {
				return err
			}

			newRoots, rhs := pell.NewRoots[*big.Int], 1
			if negative {
				newRoots, rhs = pell.NewNegativeRoots[*big.Int], -1
			}
			r, err := newRoots(numeric.BigInt{}, d)
			if err != nil {
				return err
			}
			sols, err := r.Take(count)
			if err != nil {
				return err
			}

			out := rootsResult{D: d, RHS: rhs, Solutions: make([]pair, len(sols))}
			for i, s := range sols {
				out.Solutions[i] = pair{X: s.X.String(), Y: s.Y.String()}
			}

			return a.print(cmd, out)
		},
	}
	c.Flags().BoolVarP(&negative, "negative", "n", false, "solve x² − D·y² = −1")
	c.Flags().IntVarP(&count, "count", "c", a.cfg.Count, "number of solutions")

	return c
}

func (a *app) searchCmd() *cobra.Command {
	var limit uint64
	c := &cobra.Command{
		Use:   "search",
		Short: "Find the non-square d ≤ limit whose fundamental x is largest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 2 {
				return fmt.Errorf("limit must be at least 2, got %d", limit)
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			best := searchResult{Limit: limit}
			var bestX *big.Int
			for d := uint64(2); d <= limit; d++ {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("search stopped at d=%d: %w", d, err)
				}
				x, y, err := pell.Solve(numeric.BigInt{}, d)
				if errors.Is(err, pell.ErrPerfectSquare) {
					continue
				}
				if err != nil {
					return err
				}
				if bestX == nil || x.Cmp(bestX) > 0 {
					bestX = x
					best.D = d
					best.pair = pair{X: x.String(), Y: y.String()}
					a.log.Printf("new maximum at d=%d (%d digits)", d, len(best.X))
				}
			}

			return a.print(cmd, best)
		},
	}
	c.Flags().Uint64VarP(&limit, "limit", "l", 1000, "largest d to consider")

	return c
}
