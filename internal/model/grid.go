package model

import "fmt"

// Grid describes the cubic board being filled: edge length S and the
// derived cell count S cubed. Cell (x, y, z) maps to bit index
// z*S*S + y*S + x.
type Grid struct {
	Edge  int `json:"edge"`
	Cells int `json:"cells"`
}

// NewGrid validates the edge length and returns the grid. The occupancy
// bitmask is sized from the cell count, so there is no upper width limit;
// only non-positive edges are rejected.
func NewGrid(edge int) (Grid, error) {
	if edge < 1 {
		return Grid{}, fmt.Errorf("grid edge must be positive, got %d", edge)
	}
	return Grid{Edge: edge, Cells: edge * edge * edge}, nil
}

// Index returns the bit index of cell (x, y, z).
func (g Grid) Index(x, y, z int) int {
	return z*g.Edge*g.Edge + y*g.Edge + x
}

// Coord returns the (x, y, z) cell of a bit index.
func (g Grid) Coord(i int) (x, y, z int) {
	x = i % g.Edge
	y = (i / g.Edge) % g.Edge
	z = i / (g.Edge * g.Edge)
	return
}

// Contains reports whether the block lies inside the grid bounds.
func (g Grid) Contains(b Block) bool {
	return b.X >= 0 && b.X < g.Edge &&
		b.Y >= 0 && b.Y < g.Edge &&
		b.Z >= 0 && b.Z < g.Edge
}

// EmptyMask returns an all-zero occupancy mask sized for this grid.
func (g Grid) EmptyMask() Bitmask {
	return NewBitmask(g.Cells)
}

// FullMask returns the mask with every cell occupied.
func (g Grid) FullMask() Bitmask {
	m := g.EmptyMask()
	m.Fill()
	return m
}

// CellMask returns a mask with only cell (x, y, z) set.
func (g Grid) CellMask(x, y, z int) Bitmask {
	m := g.EmptyMask()
	m.Set(g.Index(x, y, z))
	return m
}

// CornerMasks returns single-cell masks for the eight geometric corners of
// the grid (one cell for an edge-1 grid). Corners are the most constrained
// cells, which is what makes them useful to the corner-first search.
func (g Grid) CornerMasks() []Bitmask {
	if g.Edge == 1 {
		return []Bitmask{g.CellMask(0, 0, 0)}
	}
	e := g.Edge - 1
	corners := make([]Bitmask, 0, 8)
	for _, z := range []int{0, e} {
		for _, y := range []int{0, e} {
			for _, x := range []int{0, e} {
				corners = append(corners, g.CellMask(x, y, z))
			}
		}
	}
	return corners
}
