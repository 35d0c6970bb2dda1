package solver

import "github.com/eng618/suriza-solver/pkg/model"

// wrapAlways lifts a slice of always-in-bounds EdgeIndex values (the edges
// bounding a cell, which by construction never fall outside the grid) into
// the AdjacentEdge shape shared with the edges that CAN fall outside the
// grid, so countEdges and setEdges need only one calling convention.
func wrapAlways(indices []model.EdgeIndex) []model.AdjacentEdge {
	out := make([]model.AdjacentEdge, len(indices))
	for i, index := range indices {
		out[i] = model.AdjacentEdge{Index: index, OK: true}
	}
	return out
}

// countEdges tallies how many of the given edges are Line and how many are
// Cross. An edge that falls outside the grid (OK == false) counts as Cross:
// the loop can never cross the boundary of the puzzle.
func countEdges(edges model.Edges, indices []model.AdjacentEdge) (lineCount, crossCount int) {
	for _, adjacent := range indices {
		if !adjacent.OK {
			crossCount++
			continue
		}

		switch edges.Get(adjacent.Index) {
		case model.Line:
			lineCount++
		case model.Cross:
			crossCount++
		}
	}
	return lineCount, crossCount
}

// setEdges assigns value to the first Unknown edge among indices and reports
// whether it found one. Edges outside the grid (OK == false) are skipped;
// their value cannot be changed. Only ever one edge is set per call, which
// keeps every step of the solver a single, debuggable change.
func setEdges(edges *model.Edges, indices []model.AdjacentEdge, value model.Edge) bool {
	for _, adjacent := range indices {
		if !adjacent.OK {
			continue
		}
		if edges.Get(adjacent.Index).IsUnknown() {
			edges.Set(adjacent.Index, value)
			return true
		}
	}
	return false
}
