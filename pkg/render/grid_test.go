package render

import (
	"strings"
	"testing"

	"github.com/eng618/suriza-solver/pkg/model"
)

func TestToTerminalUncolorizedMatchesFormatEdgesGlyphs(t *testing.T) {
	cells, err := model.NewCells([][]model.Cell{{model.Three, model.Three}})
	if err != nil {
		t.Fatalf("NewCells: %v", err)
	}

	edges, err := model.NewEdges(cells.GetSize())
	if err != nil {
		t.Fatalf("NewEdges: %v", err)
	}
	for _, index := range edges.IndexEdges() {
		edges.Set(index, model.Line)
	}

	var b strings.Builder
	ToTerminal(&b, cells, edges, false)

	got := b.String()
	if !strings.Contains(got, "+-+-+") {
		t.Errorf("rendered output missing expected top border, got:\n%s", got)
	}
	if !strings.Contains(got, "3") {
		t.Errorf("rendered output missing clue digits, got:\n%s", got)
	}
}
