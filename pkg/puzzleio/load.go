// Package puzzleio reads puzzle files off disk in JSON or YAML form and
// converts them into model.Cells. See SPEC_FULL.md §6 for the file format.
package puzzleio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"

	"github.com/eng618/suriza-solver/pkg/model"
	"github.com/eng618/suriza-solver/pkg/render"
)

// ErrUnsupportedFormat is returned when a puzzle file's extension is
// neither .json, .yaml, nor .yml.
var ErrUnsupportedFormat = errors.New("puzzleio: unsupported file extension")

// ErrDimensionMismatch is returned when a puzzle file's declared width or
// height disagrees with the shape of its rows.
var ErrDimensionMismatch = errors.New("puzzleio: width/height does not match rows")

var fastJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// puzzleFile is the on-disk shape of a puzzle:
//
//	{"width": W, "height": H, "rows": [["", "1", "2", ...], ...]}
//
// Width and Height are redundant with the shape of Rows, but are required
// so a malformed file (a dropped row, a row pasted in twice) is caught as a
// dimension mismatch instead of silently reshaping the puzzle. Each row is
// a list of clue tokens, one per cell, accepted by model.ParseCell ("0".."3"
// or "" for no clue).
type puzzleFile struct {
	Width  int        `json:"width" yaml:"width"`
	Height int        `json:"height" yaml:"height"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Load reads the puzzle at path, dispatching on its extension, and converts
// it into model.Cells.
func Load(path string) (model.Cells, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Cells{}, fmt.Errorf("puzzleio: read %s: %w", path, err)
	}

	var file puzzleFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := fastJSON.Unmarshal(data, &file); err != nil {
			return model.Cells{}, fmt.Errorf("puzzleio: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return model.Cells{}, fmt.Errorf("puzzleio: parse %s: %w", path, err)
		}
	default:
		return model.Cells{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	return toCells(file)
}

// LoadAny reads the puzzle at path like Load, but falls back to parsing it
// as ASCII art for any extension Load doesn't recognize (or none at all) —
// the format cmd/solve, cmd/batch, cmd/validate, and cmd/render all accept
// for quick ad hoc puzzles.
func LoadAny(path string) (model.Cells, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return Load(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return model.Cells{}, fmt.Errorf("puzzleio: read %s: %w", path, err)
		}
		cells, err := render.ParseCellsASCII(string(data))
		if err != nil {
			return model.Cells{}, fmt.Errorf("puzzleio: parse %s: %w", path, err)
		}
		return cells, nil
	}
}

func toCells(file puzzleFile) (model.Cells, error) {
	if file.Height != len(file.Rows) {
		return model.Cells{}, fmt.Errorf("%w: height %d, got %d row(s)", ErrDimensionMismatch, file.Height, len(file.Rows))
	}

	rows := make([][]model.Cell, len(file.Rows))

	for r, tokens := range file.Rows {
		if file.Width != len(tokens) {
			return model.Cells{}, fmt.Errorf("%w: width %d, row %d has %d token(s)", ErrDimensionMismatch, file.Width, r, len(tokens))
		}

		row := make([]model.Cell, len(tokens))
		for c, token := range tokens {
			cell, err := model.ParseCell(token)
			if err != nil {
				return model.Cells{}, fmt.Errorf("puzzleio: row %d, column %d: %w", r, c, err)
			}
			row[c] = cell
		}

		rows[r] = row
	}

	return model.NewCells(rows)
}

// Save writes cells to path as JSON or YAML, chosen by its extension.
func Save(path string, cells model.Cells) error {
	file := fromCells(cells)

	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = fastJSON.MarshalIndent(file, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(file)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("puzzleio: encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("puzzleio: write %s: %w", path, err)
	}
	return nil
}

func fromCells(cells model.Cells) puzzleFile {
	size := cells.GetSize()
	rows := make([][]string, size.Height)

	for row := 0; row < size.Height; row++ {
		tokens := make([]string, size.Width)
		for column := 0; column < size.Width; column++ {
			clue := cells.Get(model.CellIndex{Row: row, Column: column})
			if clue == model.Any {
				tokens[column] = ""
			} else {
				tokens[column] = clue.String()
			}
		}
		rows[row] = tokens
	}

	return puzzleFile{Width: size.Width, Height: size.Height, Rows: rows}
}
