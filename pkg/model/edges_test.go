package model

import "testing"

func TestNewEdgesRejectsZeroDimensions(t *testing.T) {
	if _, err := NewEdges(Size{Width: 0, Height: 2}); err != ErrInvalidDimensions {
		t.Fatalf("err = %v, want %v", err, ErrInvalidDimensions)
	}
	if _, err := NewEdges(Size{Width: 2, Height: 0}); err != ErrInvalidDimensions {
		t.Fatalf("err = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestIndexAdjacentEdgeOutOfBounds(t *testing.T) {
	edges, err := NewEdges(Size{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	if _, ok := edges.IndexAdjacentEdge(IntersectionIndex{Row: 0, Column: 0}, Vert(North)); ok {
		t.Error("north edge of top-left intersection should be out of bounds")
	}
	if _, ok := edges.IndexAdjacentEdge(IntersectionIndex{Row: 0, Column: 0}, Horiz(West)); ok {
		t.Error("west edge of top-left intersection should be out of bounds")
	}
	if _, ok := edges.IndexAdjacentEdge(IntersectionIndex{Row: 2, Column: 2}, Vert(South)); ok {
		t.Error("south edge of bottom-right intersection should be out of bounds")
	}
	if _, ok := edges.IndexAdjacentEdge(IntersectionIndex{Row: 2, Column: 2}, Horiz(East)); ok {
		t.Error("east edge of bottom-right intersection should be out of bounds")
	}

	if _, ok := edges.IndexAdjacentEdge(IntersectionIndex{Row: 1, Column: 1}, Vert(North)); !ok {
		t.Error("north edge of an interior intersection should be in bounds")
	}
}

func TestRouteEmptyWhenNoLines(t *testing.T) {
	edges, err := NewEdges(Size{Width: 2, Height: 2})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	if route := edges.Route(); len(route) != 0 {
		t.Errorf("Route() on an all-Unknown grid = %v, want empty", route)
	}
}

func TestRouteWalksASquare(t *testing.T) {
	edges, err := NewEdges(Size{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}

	for _, index := range edges.IndexEdges() {
		edges.Set(index, Line)
	}

	route := edges.Route()
	if len(route) != 5 {
		t.Fatalf("Route() = %v, want 5 points (4 corners + closing point)", route)
	}
	if route[0] != route[len(route)-1] {
		t.Errorf("Route() does not close: starts %v, ends %v", route[0], route[len(route)-1])
	}
}
