// Package render converts between puzzles/solutions and the ASCII-art form
// used throughout SPEC_FULL.md:
//
//	+-+-+
//	|3 3|
//	+-+-+
//
// A '+' marks every intersection, a horizontal '-' or vertical '|' marks a
// Line edge, an 'x' marks a Cross edge, and a digit or blank marks a cell's
// clue. This is the format the cmd/solve, cmd/render, and cmd/validate
// commands read and write puzzle files in alongside JSON and YAML.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eng618/suriza-solver/pkg/model"
)

// ErrEmptyInput is returned by the ASCII parsers when given a blank puzzle.
var ErrEmptyInput = errors.New("render: input has no rows")

// ParseCellsASCII reads the clue grid out of an ASCII-art puzzle. It looks
// at the characters between the '+' intersections on every other line,
// starting with the second line, and ignores the lines of '+' and edge
// characters entirely — so the same input can be fed to ParseEdgesASCII to
// recover any edges drawn in it too.
func ParseCellsASCII(input string) (model.Cells, error) {
	lines := dedentLines(input)
	if len(lines) == 0 {
		return model.Cells{}, ErrEmptyInput
	}

	numbersPerRow := len(lines[0]) / 2

	var rows [][]model.Cell
	for row := 1; row < len(lines); row += 2 {
		cells := make([]model.Cell, numbersPerRow)
		runes := []rune(lines[row])

		for column := 0; column < numbersPerRow; column++ {
			position := 1 + column*2

			token := " "
			if position < len(runes) {
				token = string(runes[position])
			}

			cell, err := model.ParseCell(token)
			if err != nil {
				return model.Cells{}, fmt.Errorf("render: row %d: %w", row, err)
			}
			cells[column] = cell
		}

		rows = append(rows, cells)
	}

	return model.NewCells(rows)
}

// ParseEdgesASCII reads the edge grid out of an ASCII-art puzzle: '-' and
// '|' become Line, 'x' and 'X' become Cross, anything else (ordinarily a
// space) becomes Unknown.
func ParseEdgesASCII(input string) (model.Edges, error) {
	lines := dedentLines(input)
	if len(lines) == 0 {
		return model.Edges{}, ErrEmptyInput
	}

	width := len(lines[0])/2 + 1

	var horizontalRows [][]model.Edge
	for row := 0; row < len(lines); row += 2 {
		runes := []rune(lines[row])
		edges := make([]model.Edge, width-1)
		for column := range edges {
			position := 1 + column*2
			edges[column] = parseEdgeRune(runeAt(runes, position))
		}
		horizontalRows = append(horizontalRows, edges)
	}

	var verticalRows [][]model.Edge
	for row := 1; row < len(lines); row += 2 {
		runes := []rune(lines[row])
		edges := make([]model.Edge, width)
		for column := range edges {
			edges[column] = parseEdgeRune(runeAt(runes, column*2))
		}
		verticalRows = append(verticalRows, edges)
	}

	height := len(horizontalRows) - 1
	if height < 1 {
		return model.Edges{}, ErrEmptyInput
	}

	edges, err := model.NewEdges(model.Size{Width: width - 1, Height: height})
	if err != nil {
		return model.Edges{}, err
	}

	for row, line := range horizontalRows {
		for column, value := range line {
			edges.Set(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeHorizontal}, value)
		}
	}

	for row, line := range verticalRows {
		if row >= height {
			break
		}
		for column, value := range line {
			edges.Set(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeVertical}, value)
		}
	}

	return edges, nil
}

// FormatEdges renders edges back into the ASCII-art form ParseEdgesASCII
// accepts, alternating a line of intersections and horizontal edges with a
// line of vertical edges.
func FormatEdges(edges model.Edges) string {
	size := edges.GetSize()

	var b strings.Builder
	for row := 0; row <= size.Height; row++ {
		b.WriteByte('+')
		for column := 0; column < size.Width; column++ {
			edge := edges.Get(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeHorizontal})
			b.WriteRune(horizontalGlyph(edge))
			b.WriteByte('+')
		}
		b.WriteByte('\n')

		if row == size.Height {
			break
		}

		for column := 0; column <= size.Width; column++ {
			edge := edges.Get(model.EdgeIndex{Row: row, Column: column, Direction: model.EdgeVertical})
			b.WriteRune(verticalGlyph(edge))
			if column < size.Width {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func horizontalGlyph(edge model.Edge) rune {
	switch edge {
	case model.Line:
		return '-'
	case model.Cross:
		return 'x'
	default:
		return ' '
	}
}

func verticalGlyph(edge model.Edge) rune {
	switch edge {
	case model.Line:
		return '|'
	case model.Cross:
		return 'x'
	default:
		return ' '
	}
}

func parseEdgeRune(r rune) model.Edge {
	switch r {
	case '-', '|':
		return model.Line
	case 'x', 'X':
		return model.Cross
	default:
		return model.Unknown
	}
}

func runeAt(runes []rune, index int) rune {
	if index < 0 || index >= len(runes) {
		return ' '
	}
	return runes[index]
}

// dedentLines splits input into lines, strips any indentation common to
// every non-blank line, and drops leading and trailing blank lines. Puzzle
// fixtures are usually embedded indented inside Go source, and this keeps
// them readable there the same way the original's unindent helper did.
func dedentLines(input string) []string {
	rawLines := strings.Split(input, "\n")

	indent := -1
	for _, line := range rawLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	if indent == -1 {
		indent = 0
	}

	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		if len(line) >= indent {
			line = line[indent:]
		}
		lines = append(lines, strings.TrimRight(line, " \r"))
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
