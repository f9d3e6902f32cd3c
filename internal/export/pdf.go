// Package export provides functionality for exporting enumerated puzzle
// solutions to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/model"
)

// tagColor represents an RGB fill color for a placed piece.
type tagColor struct {
	R, G, B int
}

// tagColors mirrors the terminal color scheme used by the renderer.
var tagColors = map[model.ColorTag]tagColor{
	model.ColorRed:    {R: 244, G: 67, B: 54},
	model.ColorYellow: {R: 255, G: 235, B: 59},
	model.ColorBlue:   {R: 33, G: 150, B: 243},
	model.ColorWhite:  {R: 245, G: 245, B: 245},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	layerGap     = 8.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the enumerated solutions.
// Each solution is rendered on its own page as a row of z-layer diagrams,
// followed by a summary page with puzzle statistics.
func ExportPDF(path string, puzzle *model.Puzzle, solutions []engine.Solution) error {
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, sol := range solutions {
		pdf.AddPage()
		renderSolutionPage(pdf, puzzle, sol)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, puzzle, len(solutions))

	return pdf.OutputFileAndClose(path)
}

// renderSolutionPage draws one solution on the current PDF page.
func renderSolutionPage(pdf *fpdf.Fpdf, puzzle *model.Puzzle, sol engine.Solution) {
	grid := puzzle.Grid

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s - Solution %d", puzzle.Name, sol.Number)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Grid: %dx%dx%d | Pieces: %d | Cells: %d",
		grid.Edge, grid.Edge, grid.Edge, len(sol.Placed), grid.Cells)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// One diagram per z-layer, side by side.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	layerWidth := (drawWidth - float64(grid.Edge-1)*layerGap) / float64(grid.Edge)
	cell := math.Min(layerWidth/float64(grid.Edge), drawHeight/float64(grid.Edge))

	owner := cellOwners(puzzle, sol.Placed)
	for z := 0; z < grid.Edge; z++ {
		originX := marginLeft + float64(z)*(layerWidth+layerGap)
		renderLayer(pdf, puzzle, owner, z, originX, drawAreaTop, cell)
	}
}

// renderLayer draws one z-layer as a grid of colored, char-labeled cells.
func renderLayer(pdf *fpdf.Fpdf, puzzle *model.Puzzle, owner []int, z int, originX, originY, cell float64) {
	grid := puzzle.Grid

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(originX, originY-5)
	pdf.CellFormat(cell*float64(grid.Edge), 4, fmt.Sprintf("z = %d", z), "", 0, "L", false, 0, "")

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(100, 100, 100)
	for y := 0; y < grid.Edge; y++ {
		for x := 0; x < grid.Edge; x++ {
			// Row y=0 drawn at the bottom, matching the terminal renderer.
			px := originX + float64(x)*cell
			py := originY + float64(grid.Edge-1-y)*cell

			id := owner[grid.Index(x, y, z)]
			if id >= 0 {
				piece := puzzle.Pieces[id]
				c := tagColors[piece.Color]
				pdf.SetFillColor(c.R, c.G, c.B)
				pdf.Rect(px, py, cell, cell, "FD")

				pdf.SetFont("Helvetica", "B", 9)
				pdf.SetTextColor(0, 0, 0)
				pdf.SetXY(px, py+cell/2-2)
				pdf.CellFormat(cell, 4, string(piece.CharID()), "", 0, "C", false, 0, "")
			} else {
				pdf.Rect(px, py, cell, cell, "D")
			}
		}
	}
}

// renderSummaryPage draws the final statistics page.
func renderSummaryPage(pdf *fpdf.Fpdf, puzzle *model.Puzzle, solutionCount int) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	y := marginTop + 15.0
	lines := []string{
		fmt.Sprintf("Puzzle: %s (%s)", puzzle.Name, puzzle.ID),
		fmt.Sprintf("Grid: %dx%dx%d (%d cells)", puzzle.Grid.Edge, puzzle.Grid.Edge, puzzle.Grid.Edge, puzzle.Grid.Cells),
		fmt.Sprintf("Pieces: %d", len(puzzle.Pieces)),
		fmt.Sprintf("Solutions exported: %d", solutionCount),
	}
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 1, "L", false, 0, "")
		y += 7
	}

	// Piece table
	y += 5
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 6, "Char  Size  Name  Orientations  Placements", "", 1, "L", false, 0, "")
	y += 6
	pdf.SetFont("Helvetica", "", 10)
	for _, p := range puzzle.Pieces {
		pdf.SetXY(marginLeft, y)
		row := fmt.Sprintf("%c     %d     %s (%s)  %d  %d",
			p.CharID(), p.Size, p.Name, p.Color, len(p.Orientations), len(p.Placements))
		pdf.CellFormat(0, 5, row, "", 1, "L", false, 0, "")
		y += 5
	}
}

// cellOwners maps each grid cell to the id of the piece occupying it, or
// -1 when unoccupied.
func cellOwners(puzzle *model.Puzzle, placed []engine.Placed) []int {
	owner := make([]int, puzzle.Grid.Cells)
	for i := range owner {
		owner[i] = -1
	}
	for _, pl := range placed {
		for i := 0; i < puzzle.Grid.Cells; i++ {
			if pl.Mask.Test(i) {
				owner[i] = pl.PieceID
			}
		}
	}
	return owner
}
