package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/eng618/suriza-solver/pkg/model"
)

var (
	lineColor  = color.New(color.FgGreen, color.Bold)
	crossColor = color.New(color.FgHiBlack)
	clueColor  = color.New(color.FgCyan)
)

// ToTerminal writes a colorized rendering of cells and edges to w: Line
// edges in green, Cross edges dimmed, and clues in cyan. Pass colorize as
// false (or let fatih/color's own NO_COLOR detection decide) to fall back to
// the plain glyphs FormatEdges would produce.
func ToTerminal(w io.Writer, cells model.Cells, edges model.Edges, colorize bool) {
	size := edges.GetSize()

	paint := func(c *color.Color, s string) string {
		if !colorize {
			return s
		}
		return c.Sprint(s)
	}

	for row := 0; row <= size.Height; row++ {
		fmt.Fprint(w, "+")
		for column := 0; column < size.Width; column++ {
			edge := edges.Get(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeHorizontal})
			fmt.Fprint(w, edgeGlyph(edge, '-', paint))
			fmt.Fprint(w, "+")
		}
		fmt.Fprintln(w)

		if row == size.Height {
			break
		}

		for column := 0; column <= size.Width; column++ {
			vertical := edges.Get(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeVertical})
			fmt.Fprint(w, edgeGlyph(vertical, '|', paint))

			if column < size.Width {
				clue := cells.Get(model.CellIndex{Row: row, Column: column})
				fmt.Fprint(w, paint(clueColor, clue.String()))
			}
		}
		fmt.Fprintln(w)
	}
}

func edgeGlyph(edge model.Edge, line rune, paint func(*color.Color, string) string) string {
	switch edge {
	case model.Line:
		return paint(lineColor, string(line))
	case model.Cross:
		return paint(crossColor, "x")
	default:
		return " "
	}
}
