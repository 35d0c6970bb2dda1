package solver

import "github.com/eng618/suriza-solver/pkg/model"

// fillCell sets the unknown edges bounding the cell at index if the known
// edges already pin down the rest: if enough lines are already placed to
// satisfy the clue, every remaining edge must be Cross; if enough edges are
// already crossed off that the clue can only be met by lines, the rest must
// be Line. Reports whether an edge was changed.
func fillCell(cells model.Cells, edges *model.Edges, index model.CellIndex) bool {
	expected, ok := cells.Get(index).ExpectedLineCount()
	if !ok {
		return false
	}

	boundary := index.IndexEdges()
	indices := wrapAlways(boundary[:])
	lineCount, crossCount := countEdges(*edges, indices)

	switch {
	case lineCount == expected:
		return setEdges(edges, indices, model.Cross)
	case crossCount == 4-expected:
		return setEdges(edges, indices, model.Line)
	default:
		return false
	}
}

// fillIntersection crosses off the remaining unknown edges at index once two
// of its incident edges are already Line: a valid loop never branches, so an
// intersection with two lines already has all the line it will ever get.
func fillIntersection(edges *model.Edges, index model.IntersectionIndex) bool {
	adjacent := edges.IndexAdjacentEdges(index)
	lineCount, _ := countEdges(*edges, adjacent[:])

	if lineCount != 2 {
		return false
	}
	return setEdges(edges, adjacent[:], model.Cross)
}

// fillCertainValues scans every cell and then every intersection for an edge
// whose value is already forced, stopping at the first change so that each
// pass through the fixed-point loop in Solve makes exactly one move.
func fillCertainValues(cells model.Cells, edges *model.Edges) bool {
	for _, index := range cells.IndexCells() {
		if fillCell(cells, edges, index) {
			return true
		}
	}

	for _, index := range edges.IndexIntersections() {
		if fillIntersection(edges, index) {
			return true
		}
	}

	return false
}
