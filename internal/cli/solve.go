package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/search"
)

// errNeedPair reports a missing initial or goal encoding.
var errNeedPair = errors.New("expected an initial and a goal encoding (two arguments or two input lines)")

// solveOpts holds the command-line flags shared by the sort and puzzle
// commands. These options select the strategy, cap the explored cost, and
// control output volume.
type solveOpts struct {
	strategy string  // frontier discipline: ucs, astar, bfs, dfs
	maxCost  float64 // skip paths above this accumulated cost; negative = unlimited
	quiet    bool    // suppress the per-state path listing
	cfgPath  string  // optional TOML file with solver defaults
}

// addSolveFlags registers the shared solver flags on cmd.
func addSolveFlags(cmd *cobra.Command, opts *solveOpts) {
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "astar", "search strategy: ucs, astar, bfs, dfs")
	cmd.Flags().Float64Var(&opts.maxCost, "max-cost", -1, "skip paths above this accumulated cost (negative = unlimited)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the result summary")
	cmd.Flags().StringVarP(&opts.cfgPath, "config", "c", "", "TOML file with solver defaults")
}

// readPair returns the initial and goal encodings from args, or from two
// lines of the command's input when no arguments were given.
func readPair(cmd *cobra.Command, args []string) (string, string, error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 0:
		sc := bufio.NewScanner(cmd.InOrStdin())
		if !sc.Scan() {
			return "", "", errNeedPair
		}
		initial := sc.Text()
		if !sc.Scan() {
			return "", "", errNeedPair
		}

		return initial, sc.Text(), sc.Err()
	default:
		return "", "", errNeedPair
	}
}

// runSolve resolves the effective options, runs the search, and writes the
// path and a styled summary to the command's output.
func runSolve(cmd *cobra.Command, opts *solveOpts, initial, goal search.Layout) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.cfgPath)
	if err != nil {
		return err
	}

	// Explicit flags take precedence over the config file.
	strategy := opts.strategy
	if !cmd.Flags().Changed("strategy") && cfg.Strategy != "" {
		strategy = cfg.Strategy
	}
	maxCost := opts.maxCost
	if !cmd.Flags().Changed("max-cost") && cfg.MaxCost > 0 {
		maxCost = cfg.MaxCost
	}
	quiet := opts.quiet || cfg.Quiet

	s, err := search.ParseStrategy(strategy)
	if err != nil {
		return fmt.Errorf("--strategy %q: %w", strategy, err)
	}

	solveOptions := []search.Option{search.WithStrategy(s)}
	if maxCost >= 0 {
		solveOptions = append(solveOptions, search.WithMaxCost(maxCost))
	}

	logger.Debug("solving", "strategy", s, "max-cost", maxCost, "initial", initial.Key(), "goal", goal.Key())

	p := newProgress(logger)
	res, err := search.Solve(initial, goal, solveOptions...)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("expanded %d layouts", res.Expanded))

	out := cmd.OutOrStdout()
	if !quiet && res.Found {
		for _, n := range res.Path {
			fmt.Fprintln(out, n.Layout())
		}
	}
	fmt.Fprintln(out, summarize(res))

	return nil
}
