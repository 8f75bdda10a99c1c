package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/puzzle"
)

// newPuzzleCmd creates the puzzle command: shortest slide sequence between
// two 8-puzzle boards.
func newPuzzleCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "puzzle [initial] [goal]",
		Short: "Find the shortest slide sequence between two 8-puzzle boards",
		Long: `Puzzle finds the shortest sequence of blank slides that transforms the
initial 8-puzzle board into the goal board. Boards are encoded as 9
characters over {1..8, '.'} in row-major order, the dot marking the blank:

  statesearch puzzle "123456.78" "12345678."
  printf '123456.78\n12345678.\n' | statesearch puzzle --strategy bfs`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawInitial, rawGoal, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			initial, err := puzzle.New(rawInitial)
			if err != nil {
				return err
			}
			goal, err := puzzle.New(rawGoal)
			if err != nil {
				return err
			}

			return runSolve(cmd, &opts, initial, goal)
		},
	}
	addSolveFlags(cmd, &opts)

	return cmd
}
