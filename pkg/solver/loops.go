package solver

import "github.com/eng618/suriza-solver/pkg/model"

// wouldCloseLoop reports whether turning the edge at edgeIndex into a Line
// would close a loop: starting from one of its two intersections and
// following already-placed lines, it checks whether that path leads back to
// the edge's other intersection. A valid Suriza solution contains exactly
// one loop, so any edge that would close a second one must be Cross.
func wouldCloseLoop(edges model.Edges, edgeIndex model.EdgeIndex) bool {
	ends := edgeIndex.GetIntersections()
	index, end := ends[0], ends[1]

	previous := model.IntersectionIndex{Row: -1, Column: -1}
	for {
		next, ok := edges.FollowLine(previous, index)
		if !ok {
			break
		}
		previous, index = index, next
	}

	return index == end
}

// checkLoops crosses off the first unknown edge that would close a
// premature loop, stopping at that single change.
func checkLoops(edges *model.Edges) bool {
	for _, index := range edges.IndexEdges() {
		if edges.Get(index).IsUnknown() && wouldCloseLoop(*edges, index) {
			edges.Set(index, model.Cross)
			return true
		}
	}
	return false
}
