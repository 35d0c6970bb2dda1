// Package validator independently re-checks a solved puzzle against the
// solver's own invariants, without running the solver itself. It exists so
// hand-authored or fixture edge grids can be checked for soundness in CI,
// the same way a second pair of eyes would review a worked-out puzzle.
package validator

import (
	"errors"
	"fmt"

	"github.com/eng618/suriza-solver/pkg/model"
)

// ErrCellUnsound is returned when a clued cell has more Line or Cross edges
// than its clue permits.
var ErrCellUnsound = errors.New("validator: cell clue violated")

// ErrIntersectionUnsound is returned when an intersection has three or more
// incident Line edges, or exactly one incident Line edge with every other
// incident edge already decided.
var ErrIntersectionUnsound = errors.New("validator: intersection degree violated")

// ErrSubLoop is returned when the Line subgraph contains more than one
// closed cycle, meaning a proper sub-loop formed alongside (or instead of)
// the intended single loop.
var ErrSubLoop = errors.New("validator: proper sub-loop detected")

// ErrRouteNotClosed is returned when Route doesn't return to its starting
// point, or takes a non-orthogonal, non-unit step.
var ErrRouteNotClosed = errors.New("validator: route is not a closed orthogonal loop")

// Validate runs every invariant from spec.md §8 against a fully-decided (or
// partially-decided) edges grid for the given cells, returning the first
// violation found. A nil result means edges is consistent with cells.
func Validate(cells model.Cells, edges model.Edges) error {
	if err := checkCellSoundness(cells, edges); err != nil {
		return err
	}
	if err := checkIntersectionSoundness(edges); err != nil {
		return err
	}
	if err := checkNoSubLoops(edges); err != nil {
		return err
	}
	if err := checkRouteClosure(edges); err != nil {
		return err
	}
	return nil
}

func checkCellSoundness(cells model.Cells, edges model.Edges) error {
	for _, index := range cells.IndexCells() {
		clue := cells.Get(index)
		k, ok := clue.ExpectedLineCount()
		if !ok {
			continue
		}

		lines, crosses := 0, 0
		for _, edgeIndex := range index.IndexEdges() {
			switch edges.Get(edgeIndex) {
			case model.Line:
				lines++
			case model.Cross:
				crosses++
			}
		}

		if lines > k || crosses > 4-k {
			return fmt.Errorf("%w: cell %v wants %d, has %d line(s) and %d cross(es)", ErrCellUnsound, index, k, lines, crosses)
		}
	}
	return nil
}

func checkIntersectionSoundness(edges model.Edges) error {
	for _, index := range edges.IndexIntersections() {
		adjacents := edges.IndexAdjacentEdges(index)

		lines, decided := 0, 0
		for _, adjacent := range adjacents {
			if !adjacent.OK {
				decided++
				continue
			}
			switch edges.Get(adjacent.Index) {
			case model.Line:
				lines++
				decided++
			case model.Cross:
				decided++
			}
		}

		if lines >= 3 {
			return fmt.Errorf("%w: intersection %v has %d line edges", ErrIntersectionUnsound, index, lines)
		}
		if lines == 1 && decided == len(adjacents) {
			return fmt.Errorf("%w: intersection %v is a dead end", ErrIntersectionUnsound, index)
		}
	}
	return nil
}

// checkNoSubLoops walks every Line cycle reachable from an unvisited
// intersection and fails as soon as a second distinct cycle is found. A
// grid with zero or one Line cycles (plus any number of open paths) passes.
func checkNoSubLoops(edges model.Edges) error {
	visited := make(map[model.IntersectionIndex]bool)
	cycles := 0

	for _, start := range edges.IndexIntersections() {
		if visited[start] {
			continue
		}

		hasLine := false
		for _, adjacent := range edges.IndexAdjacentEdges(start) {
			if adjacent.OK && edges.Get(adjacent.Index).IsLine() {
				hasLine = true
				break
			}
		}
		if !hasLine {
			visited[start] = true
			continue
		}

		isCycle, members := walkComponent(edges, start)
		for _, m := range members {
			visited[m] = true
		}
		if isCycle {
			cycles++
			if cycles > 1 {
				return fmt.Errorf("%w: a second closed loop starts near %v", ErrSubLoop, start)
			}
		}
	}

	return nil
}

// walkComponent follows Line edges from start until it returns to start
// (a cycle) or runs out of unvisited neighbours (an open path), returning
// every intersection visited along the way.
func walkComponent(edges model.Edges, start model.IntersectionIndex) (bool, []model.IntersectionIndex) {
	members := []model.IntersectionIndex{start}

	previous := model.IntersectionIndex{Row: -1, Column: -1}
	current := start

	for {
		next, ok := edges.FollowLine(previous, current)
		if !ok {
			return false, members
		}
		if next == start {
			return true, members
		}

		members = append(members, next)
		previous, current = current, next

		if len(members) > len(edges.IndexIntersections()) {
			// Guards against a malformed grid where FollowLine cycles
			// without ever reporting start; treated as an open walk.
			return false, members
		}
	}
}

func checkRouteClosure(edges model.Edges) error {
	route := edges.Route()
	if len(route) == 0 {
		return nil
	}

	if route[0] != route[len(route)-1] {
		return fmt.Errorf("%w: starts at %v, ends at %v", ErrRouteNotClosed, route[0], route[len(route)-1])
	}

	for i := 1; i < len(route); i++ {
		dx := route[i].X - route[i-1].X
		dy := route[i].Y - route[i-1].Y
		if (dx != 0) == (dy != 0) || abs(dx)+abs(dy) != 1 {
			return fmt.Errorf("%w: step %v -> %v is not an orthogonal unit step", ErrRouteNotClosed, route[i-1], route[i])
		}
	}

	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
