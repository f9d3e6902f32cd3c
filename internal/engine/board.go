// Package engine implements the backtracking search that enumerates every
// way a puzzle's pieces exactly fill its grid. Placements are precomputed
// occupancy bitmasks (model.Piece), so the search reduces to bitwise
// overlap tests plus a cheap per-piece feasibility prune.
package engine

import "github.com/jdekker3d/cubefit/internal/model"

// Placed records one search decision: a piece fixed at one placement.
type Placed struct {
	PieceID int           `json:"piece_id"`
	Mask    model.Bitmask `json:"-"`
}

// Board is the mutable search state: the occupancy bitmask plus the
// ordered stack of decisions that produced it. The occupancy is always the
// bitwise union of the stacked placements' masks; Push and Pop maintain
// that invariant in strict LIFO order.
//
// A Board is exclusively owned by one search call stack and is not safe
// for concurrent use. Parallel search gives each worker its own Clone.
type Board struct {
	grid     model.Grid
	occupied model.Bitmask
	placed   []Placed
}

// NewBoard returns an empty board for the given grid.
func NewBoard(g model.Grid) *Board {
	return &Board{
		grid:     g,
		occupied: g.EmptyMask(),
	}
}

// Grid returns the board's grid.
func (b *Board) Grid() model.Grid {
	return b.grid
}

// IsValid reports whether the placement mask is compatible with the
// current occupancy, i.e. shares no set bit with it.
func (b *Board) IsValid(mask model.Bitmask) bool {
	return !b.occupied.Intersects(mask)
}

// Push places a piece: unions its mask into the occupancy and records the
// decision. The caller must have checked IsValid first.
func (b *Board) Push(pieceID int, mask model.Bitmask) {
	b.occupied.OrAssign(mask)
	b.placed = append(b.placed, Placed{PieceID: pieceID, Mask: mask})
}

// Pop reverses exactly the last Push, removing that placement's bits from
// the occupancy via XOR. Valid because placements never overlap once
// placed. Popping an empty board is a programming error and panics.
func (b *Board) Pop() {
	last := b.placed[len(b.placed)-1]
	b.occupied.XorAssign(last.Mask)
	b.placed = b.placed[:len(b.placed)-1]
}

// Depth returns the number of placements on the stack.
func (b *Board) Depth() int {
	return len(b.placed)
}

// Occupied returns a copy of the current occupancy mask.
func (b *Board) Occupied() model.Bitmask {
	return b.occupied.Clone()
}

// Placements returns a copy of the decision stack in push order.
func (b *Board) Placements() []Placed {
	placed := make([]Placed, len(b.placed))
	copy(placed, b.placed)
	return placed
}

// Clone returns an independent copy of the board for a parallel subtree.
func (b *Board) Clone() *Board {
	return &Board{
		grid:     b.grid,
		occupied: b.occupied.Clone(),
		placed:   b.Placements(),
	}
}
