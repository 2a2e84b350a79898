package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg     Config
	format  string
	verbose bool
	log     *log.Logger
	stderr  io.Writer
}

// Run parses the environment and args, executes the matching subcommand
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig(nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	root := NewRootCmd(cfg, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// NewRootCmd builds the `pell` command tree with defaults from cfg.
func NewRootCmd(cfg Config, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, stderr: stderr, log: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "pell",
		Short: "Continued fractions of square roots and Pell equations",
		Long: `pell expands √n into its periodic continued fraction and solves
x² − d·y² = ±1 exactly over arbitrary-precision integers.

Environment:
  SURD_FORMAT      default output format (text, json, yaml)
  SURD_COUNT       default number of solutions for "roots"
  SURD_MAX_PERIOD  abort expansions whose period grows beyond this
  SURD_TIMEOUT     abort a command after this duration (e.g. 5s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if a.verbose {
				a.log = log.New(a.stderr, "pell: ", log.Lmicroseconds)
			}
			return validFormat(a.format)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.format, "format", cfg.Format, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		a.expandCmd(),
		a.convergentCmd(),
		a.solveCmd(),
		a.rootsCmd(),
		a.searchCmd(),
	)

	return root
}

// commandContext returns the command context bounded by the configured timeout.
func (a *app) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

func (a *app) print(cmd *cobra.Command, r result) error {
	return render(cmd.OutOrStdout(), a.format, r)
}

func parseUint(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}

	return v, nil
}
