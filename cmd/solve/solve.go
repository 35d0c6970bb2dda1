package solve

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/suriza-solver/pkg/common"
	"github.com/eng618/suriza-solver/pkg/puzzleio"
	"github.com/eng618/suriza-solver/pkg/render"
	"github.com/eng618/suriza-solver/pkg/solver"
)

var (
	fileFlag  string
	styleFlag string
	noColor   bool
)

// solveCmd solves a single puzzle file and prints the result.
var solveCmd = &cobra.Command{
	Use:     "solve",
	Aliases: []string{"s"},
	Short:   "Solve a single puzzle file",
	Long: `Solve reads a puzzle file (JSON, YAML, or ASCII), runs the constraint
propagation engine to completion, and prints the resulting edge grid.

Examples:
  suriza solve --file testdata/puzzles/basic.json
  suriza solve --file puzzle.txt --style ascii --no-color`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag == "" {
			return fmt.Errorf("please provide --file to solve")
		}

		cells, err := puzzleio.LoadAny(fileFlag)
		if err != nil {
			return fmt.Errorf("failed to load puzzle: %w", err)
		}

		common.Verbose("Loaded %dx%d puzzle from %s", cells.GetSize().Width, cells.GetSize().Height, fileFlag)

		edges, err := solver.Solve(cells)
		if err != nil {
			return fmt.Errorf("failed to solve puzzle: %w", err)
		}

		route := edges.Route()
		if len(route) == 0 {
			common.Warning("No loop was found; the puzzle may be underdetermined or the solver stalled")
		} else {
			common.Info("Loop found with %d vertices", len(route)-1)
		}

		if strings.ToLower(styleFlag) == "ascii" {
			fmt.Fprint(cmd.OutOrStdout(), render.FormatEdges(edges))
		} else {
			render.ToTerminal(cmd.OutOrStdout(), cells, edges, !noColor)
		}

		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a puzzle file")
	solveCmd.Flags().StringVarP(&styleFlag, "style", "s", "color", "output style: color or ascii")
	solveCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}
