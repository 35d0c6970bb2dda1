package solver

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eng618/suriza-solver/pkg/model"
	"github.com/eng618/suriza-solver/pkg/validator"
)

// randomCells builds a random rectangular clue grid (width/height up to 6,
// every cell an independently random clue) from a gofuzz-seeded generator,
// so the property tests below range over more than the handful of fixed
// fixtures in solver_test.go.
func randomCells(t *testing.T, seed int64) model.Cells {
	t.Helper()

	f := fuzz.NewWithSeed(seed)

	var rawWidth, rawHeight int
	f.Fuzz(&rawWidth)
	f.Fuzz(&rawHeight)

	width := abs(rawWidth)%6 + 1
	height := abs(rawHeight)%6 + 1

	rows := make([][]model.Cell, height)
	for r := range rows {
		row := make([]model.Cell, width)
		for c := range row {
			var rawClue int
			f.Fuzz(&rawClue)
			row[c] = model.Cell(abs(rawClue) % 5) // Any..Three
		}
		rows[r] = row
	}

	cells, err := model.NewCells(rows)
	require.NoError(t, err)
	return cells
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// snapshot captures every edge's state in the grid's canonical order, so two
// grids (or two moments of the same grid) can be compared cheaply.
func snapshot(edges model.Edges) []model.Edge {
	indices := edges.IndexEdges()
	states := make([]model.Edge, len(indices))
	for i, index := range indices {
		states[i] = edges.Get(index)
	}
	return states
}

// monotonic reports whether every edge decided in before is still decided
// the same way in after — spec.md §8's monotonicity invariant.
func monotonic(before, after []model.Edge) bool {
	for i, state := range before {
		if state != model.Unknown && after[i] != state {
			return false
		}
	}
	return true
}

// TestPropertyMonotonicityAndSoundness drives the same fixed-point loop
// Solve uses, but snapshots the edge grid after every single deduction so
// it can assert monotonicity pass-by-pass, then checks the final grid
// against every §8 soundness invariant via pkg/validator.
func TestPropertyMonotonicityAndSoundness(t *testing.T) {
	for i := 0; i < 25; i++ {
		cells := randomCells(t, int64(1000+i))

		edges, err := model.NewEdges(cells.GetSize())
		require.NoError(t, err)

		previous := snapshot(edges)
		for fillCertainValues(cells, &edges) || checkConstraints(cells, &edges) || checkLoops(&edges) {
			current := snapshot(edges)
			assert.True(t, monotonic(previous, current), "seed %d: an edge regressed from a definite state", 1000+i)
			previous = current
		}

		assert.NoError(t, validator.Validate(cells, edges), "seed %d: solved grid violated an invariant", 1000+i)
	}
}

// TestPropertyDeterminism checks that solving the same input twice produces
// bit-identical edge grids.
func TestPropertyDeterminism(t *testing.T) {
	for i := 0; i < 15; i++ {
		cells := randomCells(t, int64(2000+i))

		first, err := Solve(cells)
		require.NoError(t, err)

		second, err := Solve(cells)
		require.NoError(t, err)

		assert.Equal(t, snapshot(first), snapshot(second), "seed %d: two solves of the same input diverged", 2000+i)
	}
}

// TestPropertyRouteClosure checks that whenever Solve finds a route, it
// closes on itself with orthogonal unit steps, across many random inputs.
func TestPropertyRouteClosure(t *testing.T) {
	for i := 0; i < 15; i++ {
		cells := randomCells(t, int64(3000+i))

		edges, err := Solve(cells)
		require.NoError(t, err)

		route := edges.Route()
		if len(route) == 0 {
			continue
		}

		assert.Equal(t, route[0], route[len(route)-1], "seed %d: route does not close", 3000+i)
		for j := 1; j < len(route); j++ {
			dx := route[j].X - route[j-1].X
			dy := route[j].Y - route[j-1].Y
			assert.True(t, (dx == 0) != (dy == 0) && abs(dx)+abs(dy) == 1, "seed %d: step %d is not an orthogonal unit step", 3000+i, j)
		}
	}
}
