package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/model"
)

// ExportExcel writes an Excel workbook with two sheets: "Pieces" listing
// each piece's stats, and "Solutions" listing every placement of every
// exported solution with its cell coordinates.
func ExportExcel(path string, puzzle *model.Puzzle, solutions []engine.Solution) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Pieces"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writePiecesSheet(f, puzzle); err != nil {
		return err
	}

	if _, err := f.NewSheet("Solutions"); err != nil {
		return fmt.Errorf("failed to create Solutions sheet: %w", err)
	}
	if err := writeSolutionsSheet(f, puzzle, solutions); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writePiecesSheet(f *excelize.File, puzzle *model.Puzzle) error {
	headers := []interface{}{"Id", "Char", "Name", "Color", "Size", "Orientations", "Placements"}
	if err := writeRow(f, "Pieces", 1, headers); err != nil {
		return err
	}
	for i, p := range puzzle.Pieces {
		row := []interface{}{
			p.ID, string(p.CharID()), p.Name, p.Color.String(),
			p.Size, len(p.Orientations), len(p.Placements),
		}
		if err := writeRow(f, "Pieces", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSolutionsSheet(f *excelize.File, puzzle *model.Puzzle, solutions []engine.Solution) error {
	headers := []interface{}{"Solution", "Order", "Piece", "Char", "Cells"}
	if err := writeRow(f, "Solutions", 1, headers); err != nil {
		return err
	}
	rowNum := 2
	for _, sol := range solutions {
		for order, pl := range sol.Placed {
			piece := puzzle.Pieces[pl.PieceID]
			row := []interface{}{
				sol.Number, order + 1, piece.Name, string(piece.CharID()),
				cellList(puzzle.Grid, pl.Mask),
			}
			if err := writeRow(f, "Solutions", rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

// cellList renders a placement's cells as space-separated (x,y,z) triples.
func cellList(grid model.Grid, mask model.Bitmask) string {
	s := ""
	for i := 0; i < grid.Cells; i++ {
		if !mask.Test(i) {
			continue
		}
		x, y, z := grid.Coord(i)
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("(%d,%d,%d)", x, y, z)
	}
	return s
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
