// Package cli implements the statesearch command-line interface.
//
// This package provides commands for solving the two bundled search domains:
// weighted permutation sorting and the sliding-tile 8-puzzle. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - sort: find the cheapest swap sequence that rearranges one integer
//     sequence into another under the parity cost rule
//   - puzzle: find the shortest slide sequence between two 8-puzzle boards
//
// Both commands take the initial and goal encodings as two arguments, or
// read them as two lines from standard input when the arguments are omitted.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so command bodies never touch a global.
//
// # Example
//
//	import "github.com/katalvlaran/statesearch/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the statesearch CLI and returns an error if any command
// fails. It wires the root command, the global flags, and the context
// logger, then dispatches to the sort and puzzle subcommands.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "statesearch",
		Short:        "statesearch solves state-space search problems",
		Long:         `statesearch runs best-first search (uniform-cost, A*, breadth-first or depth-first) over the bundled domains: weighted permutation sorting and the sliding-tile 8-puzzle.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("statesearch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newPuzzleCmd())

	return root.ExecuteContext(context.Background())
}
