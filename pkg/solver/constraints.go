package solver

import "github.com/eng618/suriza-solver/pkg/model"

// applyConstraint propagates a Constraint discovered at the corner of some
// cell or intersection onto the pair of edges at intersection from in the
// direction of corner to. If the pair's current state already lets the
// constraint fix one of them, it does so and stops; otherwise it hands the
// constraint to the cell diagonally across from, whose own clue may let it
// cascade further.
func applyConstraint(cells model.Cells, edges *model.Edges, constraint model.Constraint, from model.IntersectionIndex, to model.CornerDirection) bool {
	near := edges.IndexAdjacentCornerEdges(from, to)
	lineCount, crossCount := countEdges(*edges, near[:])

	value, hasValue := constraintValue(constraint, lineCount, crossCount)
	if hasValue && setEdges(edges, near[:], value) {
		return true
	}

	nextCell, ok := edges.IndexDiagonallyFromIntersection(from, to)
	if !ok {
		return false
	}
	return applyConstraintToCell(cells, edges, constraint, nextCell, to)
}

// constraintValue decides, from a constraint and the observed line/cross
// counts among the two edges it governs, whether one of them can already be
// pinned down without consulting any cell's clue.
func constraintValue(constraint model.Constraint, lineCount, crossCount int) (model.Edge, bool) {
	switch {
	case constraint == model.ConstraintLine && lineCount == 1 && crossCount == 0,
		constraint == model.ConstraintNoCorner && lineCount == 1 && crossCount == 0,
		constraint == model.ConstraintNoLine && lineCount == 0 && crossCount == 1:
		return model.Cross, true
	case constraint == model.ConstraintLine && lineCount == 0 && crossCount == 1,
		constraint == model.ConstraintNoLine && lineCount == 1 && crossCount == 0:
		return model.Line, true
	default:
		return model.Unknown, false
	}
}

// applyConstraintToCell applies a constraint using the clue in the cell at
// index, which may cascade the constraint onward to nearby intersections and
// cells. Reports whether an edge was changed.
func applyConstraintToCell(cells model.Cells, edges *model.Edges, constraint model.Constraint, index model.CellIndex, to model.CornerDirection) bool {
	near := wrapAlways(sliceOf(index.IndexCornerEdges(to.Opposite())))
	far := wrapAlways(sliceOf(index.IndexCornerEdges(to)))
	nextIntersection := index.IndexIntersection(to)

	lineCount, crossCount := countEdges(*edges, far)

	switch cells.Get(index) {
	case model.One:
		switch constraint {
		case model.ConstraintLine:
			return setEdges(edges, far, model.Cross)
		case model.ConstraintNoLine:
			return setEdges(edges, near, model.Cross)
		default:
			return false
		}

	case model.Two:
		switch constraint {
		case model.ConstraintLine:
			switch {
			case lineCount > 0:
				return setEdges(edges, far, model.Cross)
			case crossCount > 0:
				return setEdges(edges, far, model.Line)
			default:
				return applyConstraint(cells, edges, constraint, nextIntersection, to)
			}

		case model.ConstraintNoCorner:
			return applyConstraint(cells, edges, constraint, nextIntersection, to)

		case model.ConstraintNoLine:
			if crossCount > 0 {
				return setEdges(edges, near, model.Line)
			}

			for _, direction := range to.Adjacent() {
				if applyConstraint(cells, edges, model.ConstraintLine, index.IndexIntersection(direction), direction) {
					return true
				}
			}
			return applyConstraint(cells, edges, model.ConstraintNoLine, nextIntersection, to)
		}

	case model.Three:
		switch constraint {
		case model.ConstraintLine, model.ConstraintNoCorner:
			return setEdges(edges, far, model.Line)
		case model.ConstraintNoLine:
			if setEdges(edges, near, model.Line) {
				return true
			}
			return applyConstraint(cells, edges, model.ConstraintLine, nextIntersection, to)
		}
	}

	return false
}

// sliceOf turns a fixed-size array of EdgeIndex into a slice, for the two
// corner-edge pairs a cell hands to wrapAlways.
func sliceOf(pair [2]model.EdgeIndex) []model.EdgeIndex {
	return pair[:]
}

// checkCellConstraints looks for a constraint at each of the four corners of
// the cell at index, derived from its clue and the current state of the pair
// of edges meeting at that corner, and applies each one it finds until one
// of them changes an edge.
func checkCellConstraints(cells model.Cells, edges *model.Edges, index model.CellIndex) bool {
	clue := cells.Get(index)

	for _, direction := range model.CornerDirections() {
		pair := index.IndexCornerEdges(direction)
		lineCount, crossCount := countEdges(*edges, wrapAlways(pair[:]))

		var constraint model.Constraint
		hasConstraint := false

		switch {
		case clue == model.One && lineCount == 0 && crossCount == 2,
			clue == model.Two && lineCount == 1 && crossCount == 1:
			constraint, hasConstraint = model.ConstraintLine, true
		case clue == model.Two && lineCount == 0 && crossCount == 1,
			clue == model.Three:
			constraint, hasConstraint = model.ConstraintNoCorner, true
		}

		if !hasConstraint {
			continue
		}

		opposite := direction.Opposite()
		intersection := index.IndexIntersection(opposite)
		if applyConstraint(cells, edges, constraint, intersection, opposite) {
			return true
		}
	}

	return false
}

// checkIntersectionConstraints looks for a constraint at each of the four
// corners of the intersection at index, derived from the state of the pair
// of edges meeting at that corner, and applies each one it finds until one
// of them changes an edge.
func checkIntersectionConstraints(cells model.Cells, edges *model.Edges, index model.IntersectionIndex) bool {
	for _, direction := range model.CornerDirections() {
		pair := edges.IndexAdjacentCornerEdges(index, direction)
		lineCount, crossCount := countEdges(*edges, pair[:])

		var constraint model.Constraint
		hasConstraint := false

		switch {
		case lineCount == 1 && crossCount == 0:
			constraint, hasConstraint = model.ConstraintNoCorner, true
		case lineCount == 1 && crossCount == 1:
			constraint, hasConstraint = model.ConstraintLine, true
		case lineCount == 0 && crossCount == 2:
			constraint, hasConstraint = model.ConstraintNoLine, true
		}

		if !hasConstraint {
			continue
		}

		to := direction.Opposite()
		if applyConstraint(cells, edges, constraint, index, to) {
			return true
		}
	}

	return false
}

// checkConstraints scans every cell and then every intersection for a
// constraint it can apply, stopping at the first change.
func checkConstraints(cells model.Cells, edges *model.Edges) bool {
	for _, index := range cells.IndexCells() {
		if checkCellConstraints(cells, edges, index) {
			return true
		}
	}

	for _, index := range edges.IndexIntersections() {
		if checkIntersectionConstraints(cells, edges, index) {
			return true
		}
	}

	return false
}
