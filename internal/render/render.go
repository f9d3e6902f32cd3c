// Package render formats puzzles and solutions for the terminal. Piece
// names and board characters are colored by each piece's color tag;
// coloring can be disabled globally for plain output.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/model"
)

// tagColors maps the closed color tags to terminal styles.
var tagColors = map[model.ColorTag]*color.Color{
	model.ColorRed:    color.New(color.FgRed),
	model.ColorYellow: color.New(color.FgYellow),
	model.ColorBlue:   color.New(color.FgBlue),
	model.ColorWhite:  color.New(color.FgWhite),
}

// SetColorOutput enables or disables colored output globally.
func SetColorOutput(enabled bool) {
	color.NoColor = !enabled
}

// colorize renders s in the piece color's terminal style.
func colorize(tag model.ColorTag, s string) string {
	if c, ok := tagColors[tag]; ok {
		return c.Sprint(s)
	}
	return s
}

// PieceTable returns the setup listing printed before solving: one line
// per piece with its display char, block count, colored name, orientation
// count and placement count.
func PieceTable(puzzle *model.Puzzle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %dx%dx%d\n", puzzle.Name, puzzle.Grid.Edge, puzzle.Grid.Edge, puzzle.Grid.Edge)
	for _, p := range puzzle.Pieces {
		fmt.Fprintf(&sb, "%c %d %s orientations=%d placements=%d\n",
			p.CharID(), p.Size, colorize(p.Color, p.Name),
			len(p.Orientations), len(p.Placements))
	}
	return sb.String()
}

// Board renders a solution's board layer by layer, bottom layer first.
// Each cell shows the display char of the piece occupying it, colored by
// the piece's tag; unoccupied cells show a dot.
func Board(puzzle *model.Puzzle, placed []engine.Placed) string {
	grid := puzzle.Grid
	owner := make([]int, grid.Cells)
	for i := range owner {
		owner[i] = -1
	}
	for _, pl := range placed {
		for i := 0; i < grid.Cells; i++ {
			if pl.Mask.Test(i) {
				owner[i] = pl.PieceID
			}
		}
	}

	var sb strings.Builder
	for z := 0; z < grid.Edge; z++ {
		fmt.Fprintf(&sb, "z=%d\n", z)
		for y := grid.Edge - 1; y >= 0; y-- {
			for x := 0; x < grid.Edge; x++ {
				id := owner[grid.Index(x, y, z)]
				if id < 0 {
					sb.WriteByte('.')
				} else {
					piece := puzzle.Pieces[id]
					sb.WriteString(colorize(piece.Color, string(piece.CharID())))
				}
				if x < grid.Edge-1 {
					sb.WriteByte(' ')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Solution renders a numbered solution header followed by its board.
func Solution(puzzle *model.Puzzle, sol engine.Solution) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solution %d\n", sol.Number)
	sb.WriteString(Board(puzzle, sol.Placed))
	return sb.String()
}
