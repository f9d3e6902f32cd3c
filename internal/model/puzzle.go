package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Puzzle is a fully parsed packing puzzle: the cubic grid plus the piece
// set with placements precomputed. Immutable once constructed.
type Puzzle struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Grid   Grid     `json:"grid"`
	Pieces []*Piece `json:"pieces"`
}

// NewPuzzle validates the grid, precomputes every piece's placements and
// returns the assembled puzzle. Piece ids must already be dense 0-based
// indices (the importer assigns them in file order).
func NewPuzzle(name string, edge int, pieces []*Piece) (*Puzzle, error) {
	grid, err := NewGrid(edge)
	if err != nil {
		return nil, err
	}
	if len(pieces) > MaxPieces {
		return nil, fmt.Errorf("too many pieces: %d, maximum is %d", len(pieces), MaxPieces)
	}
	for i, p := range pieces {
		if p.ID != i {
			return nil, fmt.Errorf("piece %q has id %d, expected dense id %d", p.Name, p.ID, i)
		}
		p.ComputePlacements(grid)
	}
	return &Puzzle{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Grid:   grid,
		Pieces: pieces,
	}, nil
}

// TotalBlocks returns the summed block count of all pieces. When it
// differs from the grid's cell count no exact cover exists; that is a
// valid zero-solution outcome, not an error, but importers warn about it.
func (p *Puzzle) TotalBlocks() int {
	total := 0
	for _, piece := range p.Pieces {
		total += piece.Size
	}
	return total
}
