package model

// Edges is the mutable grid of edge states for a puzzle of a given Size. It
// starts out all Unknown and is mutated monotonically by the solver.
type Edges struct {
	size       Size
	horizontal [][]Edge // size.Height+1 rows of size.Width edges each
	vertical   [][]Edge // size.Height rows of size.Width+1 edges each
}

// NewEdges creates an Edges grid of the given Size with every edge Unknown.
// Returns ErrInvalidDimensions if either dimension is zero.
func NewEdges(size Size) (Edges, error) {
	if size.Width == 0 || size.Height == 0 {
		return Edges{}, ErrInvalidDimensions
	}

	horizontal := make([][]Edge, size.Height+1)
	for i := range horizontal {
		horizontal[i] = make([]Edge, size.Width)
	}

	vertical := make([][]Edge, size.Height)
	for i := range vertical {
		vertical[i] = make([]Edge, size.Width+1)
	}

	return Edges{size: size, horizontal: horizontal, vertical: vertical}, nil
}

// GetSize returns the puzzle's cell dimensions.
func (e Edges) GetSize() Size {
	return e.size
}

// Get returns the state of the given edge.
func (e Edges) Get(index EdgeIndex) Edge {
	if index.Direction == EdgeHorizontal {
		return e.horizontal[index.Row][index.Column]
	}
	return e.vertical[index.Row][index.Column]
}

// Set assigns the state of the given edge.
func (e *Edges) Set(index EdgeIndex, value Edge) {
	if index.Direction == EdgeHorizontal {
		e.horizontal[index.Row][index.Column] = value
	} else {
		e.vertical[index.Row][index.Column] = value
	}
}

// IndexAdjacentEdge returns the edge adjacent to the intersection at index in
// the given direction, or false if that edge would fall outside the grid.
// Indexing of both intersections and edges starts at the top-left corner of
// the grid: the horizontal edge to the west of an intersection at column m
// has column m-1 while the one to the east has column m; the vertical edge
// to the north of an intersection at row n has row n-1 while the one to the
// south has row n.
func (e Edges) IndexAdjacentEdge(index IntersectionIndex, direction Direction) (EdgeIndex, bool) {
	if h, ok := direction.IsHorizontal(); ok {
		switch h {
		case East:
			if index.Column >= len(e.horizontal[0]) {
				return EdgeIndex{}, false
			}
			return EdgeIndex{Row: index.Row, Column: index.Column, Direction: EdgeHorizontal}, true
		default: // West
			column := index.Column - 1
			if column < 0 {
				return EdgeIndex{}, false
			}
			return EdgeIndex{Row: index.Row, Column: column, Direction: EdgeHorizontal}, true
		}
	}

	v, _ := direction.IsVertical()
	switch v {
	case North:
		row := index.Row - 1
		if row < 0 {
			return EdgeIndex{}, false
		}
		return EdgeIndex{Row: row, Column: index.Column, Direction: EdgeVertical}, true
	default: // South
		if index.Row >= len(e.vertical) {
			return EdgeIndex{}, false
		}
		return EdgeIndex{Row: index.Row, Column: index.Column, Direction: EdgeVertical}, true
	}
}

// AdjacentEdge is the EdgeIndex-or-absent result used by the counting and
// propagation helpers in pkg/solver; ok is false when the edge would fall
// outside the grid.
type AdjacentEdge struct {
	Index EdgeIndex
	OK    bool
}

// IndexAdjacentEdges returns the up-to-four edges incident to the
// intersection at index, in N, E, S, W order.
func (e Edges) IndexAdjacentEdges(index IntersectionIndex) [4]AdjacentEdge {
	var out [4]AdjacentEdge
	for i, d := range AllDirections() {
		edgeIndex, ok := e.IndexAdjacentEdge(index, d)
		out[i] = AdjacentEdge{Index: edgeIndex, OK: ok}
	}
	return out
}

// IndexAdjacentCornerEdges returns the two edges in one quadrant of the
// intersection at index: the horizontal-direction edge first, then the
// vertical-direction edge.
func (e Edges) IndexAdjacentCornerEdges(index IntersectionIndex, corner CornerDirection) [2]AdjacentEdge {
	dirs := corner.Directions()
	var out [2]AdjacentEdge
	for i, d := range dirs {
		edgeIndex, ok := e.IndexAdjacentEdge(index, d)
		out[i] = AdjacentEdge{Index: edgeIndex, OK: ok}
	}
	return out
}

// IndexEdges returns the indices of every edge, horizontal edges first (in
// row-major order), then vertical edges (in row-major order).
func (e Edges) IndexEdges() []EdgeIndex {
	indices := make([]EdgeIndex, 0, len(e.horizontal)*len(e.horizontal[0])+len(e.vertical)*len(e.vertical[0]))

	for row := range e.horizontal {
		for column := range e.horizontal[row] {
			indices = append(indices, EdgeIndex{Row: row, Column: column, Direction: EdgeHorizontal})
		}
	}

	for row := range e.vertical {
		for column := range e.vertical[row] {
			indices = append(indices, EdgeIndex{Row: row, Column: column, Direction: EdgeVertical})
		}
	}

	return indices
}

// IndexIntersections returns the indices of every intersection in row-major
// order.
func (e Edges) IndexIntersections() []IntersectionIndex {
	height := len(e.vertical)
	width := len(e.horizontal[0])

	indices := make([]IntersectionIndex, 0, (height+1)*(width+1))
	for row := 0; row <= height; row++ {
		for column := 0; column <= width; column++ {
			indices = append(indices, IntersectionIndex{Row: row, Column: column})
		}
	}
	return indices
}

// IndexAdjacentIntersection returns the neighbouring intersection of index in
// the given direction, or false if it would fall outside the grid.
func (e Edges) IndexAdjacentIntersection(index IntersectionIndex, direction Direction) (IntersectionIndex, bool) {
	if h, ok := direction.IsHorizontal(); ok {
		switch h {
		case East:
			if index.Column >= len(e.horizontal[0]) {
				return IntersectionIndex{}, false
			}
			return IntersectionIndex{Row: index.Row, Column: index.Column + 1}, true
		default: // West
			if index.Column == 0 {
				return IntersectionIndex{}, false
			}
			return IntersectionIndex{Row: index.Row, Column: index.Column - 1}, true
		}
	}

	v, _ := direction.IsVertical()
	switch v {
	case North:
		if index.Row == 0 {
			return IntersectionIndex{}, false
		}
		return IntersectionIndex{Row: index.Row - 1, Column: index.Column}, true
	default: // South
		if index.Row >= len(e.vertical) {
			return IntersectionIndex{}, false
		}
		return IntersectionIndex{Row: index.Row + 1, Column: index.Column}, true
	}
}

// IndexDiagonallyFromIntersection returns the cell diagonally adjacent to
// the intersection at index through the given corner, or false if it would
// fall outside the grid.
func (e Edges) IndexDiagonallyFromIntersection(index IntersectionIndex, direction CornerDirection) (CellIndex, bool) {
	row := index.Row
	switch direction.Vertical {
	case North:
		row--
		if row < 0 {
			return CellIndex{}, false
		}
	default: // South
		if row >= len(e.vertical) {
			return CellIndex{}, false
		}
	}

	column := index.Column
	switch direction.Horizontal {
	case West:
		column--
		if column < 0 {
			return CellIndex{}, false
		}
	default: // East
		if column >= len(e.horizontal[0]) {
			return CellIndex{}, false
		}
	}

	return CellIndex{Row: row, Column: column}, true
}

// FollowLine returns the intersection reached by following the unique Line
// edge incident to index that does not lead back to previous. Because every
// intersection has at most two Line neighbours, this is well defined: the
// Line subgraph is a disjoint union of simple paths and cycles.
func (e Edges) FollowLine(previous, index IntersectionIndex) (IntersectionIndex, bool) {
	for _, direction := range AllDirections() {
		edgeIndex, ok := e.IndexAdjacentEdge(index, direction)
		if !ok || !e.Get(edgeIndex).IsLine() {
			continue
		}

		next, ok := e.IndexAdjacentIntersection(index, direction)
		if !ok {
			continue
		}

		if next != previous {
			return next, true
		}
	}

	return IntersectionIndex{}, false
}

// Point is an (X, Y) = (column, row) coordinate in the output route.
type Point struct {
	X int
	Y int
}

// Route extracts the closed loop as an ordered sequence of intersection
// coordinates. It scans intersections in row-major order for the first one
// with at least one incident Line edge, then walks the loop with FollowLine
// until it returns to the start or cannot continue. In both cases the start
// is appended once more to close the polyline. Returns an empty slice if no
// edge is a Line.
func (e Edges) Route() []Point {
	var start IntersectionIndex
	found := false

	for _, index := range e.IndexIntersections() {
		for _, adjacent := range e.IndexAdjacentEdges(index) {
			if adjacent.OK && e.Get(adjacent.Index).IsLine() {
				start = index
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if !found {
		return nil
	}

	previous := IntersectionIndex{Row: 0, Column: 0}
	index := start
	route := []IntersectionIndex{index}

	for {
		next, ok := e.FollowLine(previous, index)
		if !ok {
			break
		}
		if next == start {
			break
		}

		previous, index = index, next
		route = append(route, index)
	}

	points := make([]Point, len(route), len(route)+1)
	for i, idx := range route {
		points[i] = Point{X: idx.Column, Y: idx.Row}
	}
	points = append(points, points[0])

	return points
}
