package model

// CellIndex addresses a single cell at (Row, Column), 0 <= Row < Height,
// 0 <= Column < Width.
type CellIndex struct {
	Row    int
	Column int
}

// IndexIntersection returns the intersection at the given corner of this
// cell.
func (c CellIndex) IndexIntersection(corner CornerDirection) IntersectionIndex {
	column := c.Column
	if corner.Horizontal == East {
		column++
	}

	row := c.Row
	if corner.Vertical == South {
		row++
	}

	return IntersectionIndex{Row: row, Column: column}
}

// IndexEdges returns the four edges bounding this cell, in N, E, S, W order.
func (c CellIndex) IndexEdges() [4]EdgeIndex {
	var out [4]EdgeIndex
	for i, d := range AllDirections() {
		out[i] = c.indexEdge(d)
	}
	return out
}

// IndexCornerEdges returns the two edges meeting at the given corner of this
// cell: the horizontal-direction edge first, then the vertical-direction
// edge.
func (c CellIndex) IndexCornerEdges(corner CornerDirection) [2]EdgeIndex {
	dirs := corner.Directions()
	return [2]EdgeIndex{c.indexEdge(dirs[0]), c.indexEdge(dirs[1])}
}

func (c CellIndex) indexEdge(direction Direction) EdgeIndex {
	if h, ok := direction.IsHorizontal(); ok {
		switch h {
		case East:
			return EdgeIndex{Row: c.Row, Column: c.Column + 1, Direction: EdgeVertical}
		default: // West
			return EdgeIndex{Row: c.Row, Column: c.Column, Direction: EdgeVertical}
		}
	}

	v, _ := direction.IsVertical()
	switch v {
	case North:
		return EdgeIndex{Row: c.Row, Column: c.Column, Direction: EdgeHorizontal}
	default: // South
		return EdgeIndex{Row: c.Row + 1, Column: c.Column, Direction: EdgeHorizontal}
	}
}

// IntersectionIndex addresses a lattice point at (Row, Column),
// 0 <= Row <= Height, 0 <= Column <= Width.
type IntersectionIndex struct {
	Row    int
	Column int
}

// EdgeDirection distinguishes a horizontal edge (spanning two columns in the
// same row) from a vertical edge (spanning two rows in the same column).
type EdgeDirection int

const (
	EdgeHorizontal EdgeDirection = iota
	EdgeVertical
)

// EdgeIndex addresses a single edge. For a horizontal edge, (Row, Column)
// identifies the segment between intersections (Row, Column) and
// (Row, Column+1). For a vertical edge, it identifies the segment between
// (Row, Column) and (Row+1, Column).
type EdgeIndex struct {
	Row       int
	Column    int
	Direction EdgeDirection
}

// GetIntersections returns the two intersections adjacent to this edge.
func (e EdgeIndex) GetIntersections() [2]IntersectionIndex {
	near := IntersectionIndex{Row: e.Row, Column: e.Column}

	var far IntersectionIndex
	switch e.Direction {
	case EdgeHorizontal:
		far = IntersectionIndex{Row: e.Row, Column: e.Column + 1}
	default:
		far = IntersectionIndex{Row: e.Row + 1, Column: e.Column}
	}

	return [2]IntersectionIndex{near, far}
}
