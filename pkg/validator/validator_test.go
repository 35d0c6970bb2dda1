package validator

import (
	"errors"
	"testing"

	"github.com/eng618/suriza-solver/pkg/model"
)

func oneByOneEdges(t *testing.T) model.Edges {
	t.Helper()
	edges, err := model.NewEdges(model.Size{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}
	return edges
}

func TestValidateAcceptsASingleClosedSquare(t *testing.T) {
	cells, err := model.NewCells([][]model.Cell{{model.Any}})
	if err != nil {
		t.Fatalf("NewCells: %v", err)
	}

	edges := oneByOneEdges(t)
	for _, index := range edges.IndexEdges() {
		edges.Set(index, model.Line)
	}

	if err := Validate(cells, edges); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateDetectsCellUnsound(t *testing.T) {
	cells, err := model.NewCells([][]model.Cell{{model.Zero}})
	if err != nil {
		t.Fatalf("NewCells: %v", err)
	}

	edges := oneByOneEdges(t)
	for _, index := range edges.IndexEdges() {
		edges.Set(index, model.Line)
	}

	err = Validate(cells, edges)
	if !errors.Is(err, ErrCellUnsound) {
		t.Fatalf("Validate() = %v, want %v", err, ErrCellUnsound)
	}
}

func TestCheckIntersectionSoundnessDetectsThreeLines(t *testing.T) {
	edges, err := model.NewEdges(model.Size{Width: 2, Height: 1})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	edges.Set(model.EdgeIndex{Row: 0, Column: 0, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 1, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 1, Direction: model.EdgeVertical}, model.Line)

	err = checkIntersectionSoundness(edges)
	if !errors.Is(err, ErrIntersectionUnsound) {
		t.Fatalf("checkIntersectionSoundness() = %v, want %v", err, ErrIntersectionUnsound)
	}
}

func TestCheckNoSubLoopsDetectsTwoSeparateSquares(t *testing.T) {
	// Three cells in a row; the leftmost and rightmost each form their own
	// closed unit square, with the middle cell's top and bottom edges left
	// Unknown so the two squares share no edge and stay fully disjoint.
	edges, err := model.NewEdges(model.Size{Width: 3, Height: 1})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	edges.Set(model.EdgeIndex{Row: 0, Column: 0, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 1, Column: 0, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 0, Direction: model.EdgeVertical}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 1, Direction: model.EdgeVertical}, model.Line)

	edges.Set(model.EdgeIndex{Row: 0, Column: 2, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 1, Column: 2, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 2, Direction: model.EdgeVertical}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 3, Direction: model.EdgeVertical}, model.Line)

	err = checkNoSubLoops(edges)
	if !errors.Is(err, ErrSubLoop) {
		t.Fatalf("checkNoSubLoops() = %v, want %v", err, ErrSubLoop)
	}
}

func TestCheckNoSubLoopsAcceptsOpenPaths(t *testing.T) {
	edges, err := model.NewEdges(model.Size{Width: 2, Height: 1})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	// A single open path, no cycle at all.
	edges.Set(model.EdgeIndex{Row: 0, Column: 0, Direction: model.EdgeHorizontal}, model.Line)
	edges.Set(model.EdgeIndex{Row: 0, Column: 1, Direction: model.EdgeHorizontal}, model.Line)

	if err := checkNoSubLoops(edges); err != nil {
		t.Fatalf("checkNoSubLoops() = %v, want nil", err)
	}
}

func TestCheckRouteClosureAcceptsEmptyRoute(t *testing.T) {
	edges := oneByOneEdges(t)
	if err := checkRouteClosure(edges); err != nil {
		t.Fatalf("checkRouteClosure() = %v, want nil", err)
	}
}
