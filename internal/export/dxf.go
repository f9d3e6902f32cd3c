package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/jdekker3d/cubefit/internal/engine"
	"github.com/jdekker3d/cubefit/internal/model"
)

// dxfLayerGap is the horizontal spacing between z-layer diagrams, in grid
// cell units.
const dxfLayerGap = 2.0

// ExportDXF writes a solution as a DXF drawing: one named layer per
// z-level, each occupied cell drawn as a unit square, with the z-levels
// laid out side by side in the XY plane.
func ExportDXF(path string, puzzle *model.Puzzle, sol engine.Solution) error {
	if len(sol.Placed) == 0 {
		return fmt.Errorf("solution has no placements to export")
	}

	grid := puzzle.Grid
	owner := cellOwners(puzzle, sol.Placed)

	d := dxf.NewDrawing()
	for z := 0; z < grid.Edge; z++ {
		layerName := fmt.Sprintf("LAYER_Z%d", z)
		if _, err := d.AddLayer(layerName, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layerName, err)
		}

		offsetX := float64(z) * (float64(grid.Edge) + dxfLayerGap)
		for y := 0; y < grid.Edge; y++ {
			for x := 0; x < grid.Edge; x++ {
				if owner[grid.Index(x, y, z)] < 0 {
					continue
				}
				if err := drawCell(d, offsetX+float64(x), float64(y)); err != nil {
					return err
				}
			}
		}
	}

	return d.SaveAs(path)
}

// drawCell draws a unit square with its lower-left corner at (x, y).
func drawCell(d *drawing.Drawing, x, y float64) error {
	edges := [][4]float64{
		{x, y, x + 1, y},
		{x + 1, y, x + 1, y + 1},
		{x + 1, y + 1, x, y + 1},
		{x, y + 1, x, y},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("failed to draw cell edge: %w", err)
		}
	}
	return nil
}
