package render

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eng618/suriza-solver/pkg/common"
	"github.com/eng618/suriza-solver/pkg/model"
	"github.com/eng618/suriza-solver/pkg/puzzleio"
	"github.com/eng618/suriza-solver/pkg/render"
	"github.com/eng618/suriza-solver/pkg/solver"
)

var (
	fileFlag  string
	styleFlag string
	noColor   bool
	solveFlag bool
)

// renderCmd prints a puzzle's clue grid (and, with --solve, its solved edge
// grid) for quick visual inspection, without requiring a solve to view the
// clues.
var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"r"},
	Short:   "Render a puzzle's clue grid to the terminal",
	Long: `Render prints a puzzle file's clue grid to the terminal for visual
inspection. Edges are left blank unless --solve is given, in which case the
puzzle is solved first and the solved edge grid is shown alongside the
clues.

Examples:
  suriza render --file testdata/puzzles/basic.json
  suriza render --file puzzle.txt --solve --style ascii`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag == "" {
			return fmt.Errorf("please provide --file to render")
		}

		cells, err := puzzleio.LoadAny(fileFlag)
		if err != nil {
			return fmt.Errorf("failed to load puzzle: %w", err)
		}

		edges, err := model.NewEdges(cells.GetSize())
		if err != nil {
			return fmt.Errorf("failed to build blank edge grid: %w", err)
		}

		if solveFlag {
			edges, err = solver.Solve(cells)
			if err != nil {
				return fmt.Errorf("failed to solve puzzle: %w", err)
			}
			common.Verbose("Solved before rendering: %d puzzle cells, %dx%d edges", len(cells.IndexCells()), edges.GetSize().Width, edges.GetSize().Height)
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
	renderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a puzzle file")
	renderCmd.Flags().StringVarP(&styleFlag, "style", "s", "color", "output style: color or ascii")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	renderCmd.Flags().BoolVar(&solveFlag, "solve", false, "solve the puzzle before rendering its edges")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return renderCmd
}
