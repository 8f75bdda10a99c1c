package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/permsort"
)

// newSortCmd creates the sort command: cheapest swap sequence between two
// integer sequences under the parity cost rule (even-even 2, odd-odd 20,
// mixed 11).
func newSortCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "sort [initial] [goal]",
		Short: "Find the cheapest swap sequence between two integer sequences",
		Long: `Sort finds the cheapest sequence of element swaps that rearranges the
initial integer sequence into the goal sequence. A swap of two even values
costs 2, two odd values 20, and a mixed pair 11.

Encodings are whitespace-separated integers, given as two arguments or as
two lines on standard input:

  statesearch sort "9 7 8" "7 8 9"
  printf '9 7 8\n7 8 9\n' | statesearch sort`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawInitial, rawGoal, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			initial, err := permsort.New(rawInitial)
			if err != nil {
				return err
			}
			goal, err := permsort.New(rawGoal)
			if err != nil {
				return err
			}

			return runSolve(cmd, &opts, initial, goal)
		},
	}
	addSolveFlags(cmd, &opts)

	return cmd
}
