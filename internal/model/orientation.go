package model

import "strings"

// Orientation is one rotation of a piece's shape: the set of blocks the
// piece occupies, carried as a slice (order is not significant).
//
// A normalized orientation has its bounding box anchored at the origin:
// the minimum coordinate on each axis is zero. Two orientations are
// equivalent when their normalized block sets are equal.
type Orientation struct {
	Blocks []Block `json:"blocks"`
}

// NewOrientation creates an orientation from the given blocks.
// The slice is copied so callers keep ownership of their input.
func NewOrientation(blocks []Block) Orientation {
	copied := make([]Block, len(blocks))
	copy(copied, blocks)
	return Orientation{Blocks: copied}
}

// Size returns the number of blocks in the orientation.
func (o Orientation) Size() int {
	return len(o.Blocks)
}

func (o Orientation) String() string {
	var sb strings.Builder
	for i, b := range o.Blocks {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Normalize translates the orientation so the minimum x, y and z
// coordinates each become zero.
func (o Orientation) Normalize() Orientation {
	if len(o.Blocks) == 0 {
		return NewOrientation(nil)
	}
	minX, minY, minZ := o.Blocks[0].X, o.Blocks[0].Y, o.Blocks[0].Z
	for _, b := range o.Blocks[1:] {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if b.Z < minZ {
			minZ = b.Z
		}
	}
	blocks := make([]Block, len(o.Blocks))
	for i, b := range o.Blocks {
		blocks[i] = b.Translate(-minX, -minY, -minZ)
	}
	return Orientation{Blocks: blocks}
}

// rotationDirection selects one of the three primitive rotations.
type rotationDirection int

const (
	rotateNext rotationDirection = iota
	rotateClockwise
	rotateCounterClockwise
)

// rotate applies one primitive rotation to every block.
func (o Orientation) rotate(dir rotationDirection) Orientation {
	blocks := make([]Block, len(o.Blocks))
	for i, b := range o.Blocks {
		switch dir {
		case rotateNext:
			blocks[i] = b.rotateNext()
		case rotateClockwise:
			blocks[i] = b.rotateClockwise()
		case rotateCounterClockwise:
			blocks[i] = b.rotateCounterClockwise()
		}
	}
	return Orientation{Blocks: blocks}
}

// Similar reports whether two normalized orientations describe the same
// shape: every block of o has an exact coordinate match in other. Pieces
// carry no duplicate blocks, so this is plain set equality.
func (o Orientation) Similar(other Orientation) bool {
	if len(o.Blocks) != len(other.Blocks) {
		return false
	}
	for _, b := range o.Blocks {
		found := false
		for _, ob := range other.Blocks {
			if b == ob {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// AllOrientations returns every distinct orientation reachable from o by
// proper rotation, between 1 (fully symmetric) and 24 (fully asymmetric).
//
// The traversal alternates spin direction every outer iteration: six outer
// iterations, each performing three spins about the vertical axis followed
// by one "next" rotation that points a different face in the reference
// direction. That walk visits all 24 rotations, some more than once; the
// Similar check discards revisits. The resulting set is independent of
// which rotation of the shape is used as the starting point.
func (o Orientation) AllOrientations() []Orientation {
	current := o.Normalize()
	orientations := []Orientation{current}

	keep := func(candidate Orientation) {
		for _, seen := range orientations {
			if seen.Similar(candidate) {
				return
			}
		}
		orientations = append(orientations, candidate)
	}

	clockwise := true
	for face := 0; face < 6; face++ {
		for spin := 0; spin < 3; spin++ {
			if clockwise {
				current = current.rotate(rotateClockwise).Normalize()
			} else {
				current = current.rotate(rotateCounterClockwise).Normalize()
			}
			keep(current)
		}
		current = current.rotate(rotateNext).Normalize()
		keep(current)
		clockwise = !clockwise
	}

	return orientations
}
