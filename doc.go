// Package main provides the suriza CLI tool, a solver for Suriza
// (Slitherlink) puzzles.
//
// # Overview
//
// Suriza is a logic puzzle played on a rectangular grid of dots. Some cells
// carry a clue from 0 to 3; the goal is to draw a single closed loop along
// the grid lines such that each clued cell is surrounded by exactly that
// many loop segments. This tool solves puzzles by constraint propagation
// alone — it never guesses and never backtracks, so an incomplete result
// means the puzzle's clues didn't pin down every edge through local
// deduction.
//
// # Commands
//
// ## solve
//
// Solve a single puzzle file and print the result.
//
//	suriza solve --file testdata/puzzles/basic.json
//	suriza solve --file puzzle.yaml --style ascii
//
// ## batch
//
// Solve every puzzle file in a directory concurrently.
//
//	suriza batch --dir testdata/puzzles
//	suriza batch --dir testdata/puzzles -j full
//
// ## validate
//
// Independently re-check a puzzle's clues against a claimed solved edge
// grid (an ASCII rendering), without running the solver itself.
//
//	suriza validate --file testdata/puzzles/basic.json --solution solution.txt
//
// ## render
//
// Render a puzzle or a solved edge grid as colorized terminal art.
//
//	suriza render --file testdata/puzzles/basic.json
//	suriza render --file testdata/puzzles/basic.json --no-color
//
// # Package Structure
//
//	cmd/            - Cobra command implementations (solve, batch, validate, render)
//	pkg/model/      - The puzzle data model: Cells, Edges, and their coordinate spaces
//	pkg/solver/     - The constraint-propagation deduction engine
//	pkg/render/     - ASCII and colorized terminal rendering
//	pkg/puzzleio/   - Puzzle file loading and saving (JSON, YAML)
//	pkg/common/     - Shared logging and path-resolution helpers
//
// # Global Flags
//
//	-v, --verbose              Enable verbose output for debugging
//	-j, --workers string       Number of concurrent workers for batch solving
//	-w, --working-dir string   Working directory to run from
//	    --log-file string      Also append plain-text log output to this file
package main
