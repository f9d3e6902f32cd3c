package model

import "fmt"

// Block represents a single unit cube of a piece as an integer 3D coordinate.
// Blocks are immutable values; arithmetic produces new values.
type Block struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (b Block) String() string {
	return fmt.Sprintf("(%d,%d,%d)", b.X, b.Y, b.Z)
}

// Translate returns the block shifted by the given offsets.
func (b Block) Translate(dx, dy, dz int) Block {
	return Block{X: b.X + dx, Y: b.Y + dy, Z: b.Z + dz}
}

// The three primitive 90-degree rotations. Composing them generates the
// full cube rotation group (order 24).

// rotateNext reorients which face points in the reference direction:
// (y, z) -> (z, -y).
func (b Block) rotateNext() Block {
	return Block{X: b.X, Y: b.Z, Z: -b.Y}
}

// rotateClockwise spins about the Y axis: (x, z) -> (z, -x).
func (b Block) rotateClockwise() Block {
	return Block{X: b.Z, Y: b.Y, Z: -b.X}
}

// rotateCounterClockwise spins about the Y axis the other way:
// (z, x) -> (x, -z).
func (b Block) rotateCounterClockwise() Block {
	return Block{X: -b.Z, Y: b.Y, Z: b.X}
}
