package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/suriza-solver/pkg/common"
	"github.com/eng618/suriza-solver/pkg/puzzleio"
	"github.com/eng618/suriza-solver/pkg/render"
	"github.com/eng618/suriza-solver/pkg/validator"
)

var (
	fileFlag     string
	solutionFlag string
)

// validateCmd independently re-checks a solved puzzle's invariants, without
// running the solver. It's meant for CI and for debugging hand-authored
// fixtures: did this edge grid actually satisfy every clue, every
// intersection-degree rule, and close into a single loop?
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate a puzzle's clues against a solved edge grid",
	Long: `Validate loads a puzzle's clue grid and an ASCII rendering of its
(claimed) solved edge grid, then independently re-checks the invariants the
solver itself is supposed to maintain: cell-clue soundness, intersection
degree, absence of proper sub-loops, and route closure. It does not invoke
the solver, so it's useful for catching a hand-authored fixture that looks
right but isn't.

Examples:
  suriza validate --file puzzle.json --solution solution.txt
  suriza validate -f puzzle.txt -s puzzle.txt` + "`" + `  (one ASCII file holding both)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag == "" {
			return fmt.Errorf("please provide --file with the puzzle's clue grid")
		}
		if solutionFlag == "" {
			return fmt.Errorf("please provide --solution with the claimed solved edge grid (ASCII art)")
		}

		cells, err := puzzleio.LoadAny(fileFlag)
		if err != nil {
			return fmt.Errorf("failed to load puzzle: %w", err)
		}

		solutionText, err := readSolution(solutionFlag)
		if err != nil {
			return err
		}

		edges, err := render.ParseEdgesASCII(solutionText)
		if err != nil {
			return fmt.Errorf("failed to parse solution: %w", err)
		}

		if cells.GetSize() != edges.GetSize() {
			return fmt.Errorf("puzzle is %v but solution is %v", cells.GetSize(), edges.GetSize())
		}

		if err := validator.Validate(cells, edges); err != nil {
			common.Error("Validation failed: %v", err)
			return err
		}

		common.Info("Solution is valid: every clue, intersection, and loop invariant holds")
		return nil
	},
}

func readSolution(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read solution file: %w", err)
	}
	return string(data), nil
}

func init() {
	validateCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to the puzzle's clue grid")
	validateCmd.Flags().StringVarP(&solutionFlag, "solution", "s", "", "path to an ASCII-art rendering of the claimed solved edge grid")
}

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return validateCmd
}
