package model

import "fmt"

// MaxPieces is the number of pieces a puzzle can hold: piece ids double as
// display characters, digits 0-9 then letters A-Z.
const MaxPieces = 36

// Piece is one polycube of the puzzle: identity, color tag, the
// deduplicated list of rotational orientations, and, once the grid is
// known, every legal placement as an occupancy bitmask. Pieces are
// immutable after construction.
type Piece struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Color ColorTag `json:"color"`

	// Size is the block count, fixed by the canonical orientation.
	Size int `json:"size"`

	// Orientations holds every distinct rotation of the shape.
	Orientations []Orientation `json:"orientations"`

	// Placements holds one bitmask per orientation-translation pair that
	// keeps all blocks inside grid bounds. Populated by ComputePlacements.
	// Duplicate masks from symmetric orientation/translation pairs are
	// allowed; they do not affect search correctness.
	Placements []Bitmask `json:"-"`
}

// NewPiece builds a piece from its canonical orientation, generating the
// full orientation set. The id must be a dense 0-based index below
// MaxPieces so it can be rendered as a single character.
func NewPiece(id int, name string, color ColorTag, canonical Orientation) (*Piece, error) {
	if id < 0 || id >= MaxPieces {
		return nil, fmt.Errorf("piece id %d outside displayable range [0,%d)", id, MaxPieces)
	}
	return &Piece{
		ID:           id,
		Name:         name,
		Color:        color,
		Size:         canonical.Size(),
		Orientations: canonical.AllOrientations(),
	}, nil
}

// CharID returns the single display character for the piece: '0'-'9' for
// ids 0-9, 'A'-'Z' for 10-35. An id outside that range is a programming
// invariant violation and panics.
func (p *Piece) CharID() byte {
	switch {
	case p.ID >= 0 && p.ID <= 9:
		return byte('0' + p.ID)
	case p.ID >= 10 && p.ID < MaxPieces:
		return byte('A' + p.ID - 10)
	default:
		panic(fmt.Sprintf("invalid piece id %d", p.ID))
	}
}

// ComputePlacements precomputes every legal placement bitmask of the piece
// on the given grid: each orientation tried at every translation offset in
// [0, S) on all three axes, kept only when every block lands in bounds.
// The search engine never recomputes placements.
func (p *Piece) ComputePlacements(g Grid) {
	p.Placements = p.Placements[:0]
	for _, o := range p.Orientations {
		if o.Size() == 0 {
			// A blockless shape has no footprint; it contributes zero
			// placements and the feasibility check reports it unplaceable.
			continue
		}
		for dz := 0; dz < g.Edge; dz++ {
			for dy := 0; dy < g.Edge; dy++ {
			translations:
				for dx := 0; dx < g.Edge; dx++ {
					mask := g.EmptyMask()
					for _, b := range o.Blocks {
						t := b.Translate(dx, dy, dz)
						if !g.Contains(t) {
							continue translations
						}
						mask.Set(g.Index(t.X, t.Y, t.Z))
					}
					p.Placements = append(p.Placements, mask)
				}
			}
		}
	}
}
