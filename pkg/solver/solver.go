// Package solver implements the Suriza deduction engine: a fixed-point loop
// over three families of local rules (cell/intersection fill, corner
// constraint propagation, and sub-loop closure) that never guesses and never
// backtracks. See SPEC_FULL.md §4 for the rules themselves.
package solver

import "github.com/eng618/suriza-solver/pkg/model"

// Solve attempts to find the unique edge assignment satisfying every clue in
// cells. It repeatedly applies, in order, cell/intersection fill,
// corner-constraint propagation, and loop-closure detection, restarting from
// the top of that list after any change, until a full pass changes nothing.
// The returned Edges may be incomplete (containing Unknown edges) if the
// puzzle's clues don't pin down every edge through these deductions alone;
// Solve never guesses and never backtracks to recover from that.
func Solve(cells model.Cells) (model.Edges, error) {
	edges, err := model.NewEdges(cells.GetSize())
	if err != nil {
		return model.Edges{}, err
	}

	for fillCertainValues(cells, &edges) || checkConstraints(cells, &edges) || checkLoops(&edges) {
	}

	return edges, nil
}
