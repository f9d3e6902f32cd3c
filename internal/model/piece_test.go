package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, edge int) Grid {
	t.Helper()
	g, err := NewGrid(edge)
	require.NoError(t, err)
	return g
}

func TestNewPiece(t *testing.T) {
	p, err := NewPiece(0, "cube", ColorRed, unitCube())
	require.NoError(t, err)
	assert.Equal(t, 1, p.Size)
	assert.Len(t, p.Orientations, 1)
	assert.Empty(t, p.Placements, "placements are computed against a grid")
}

func TestNewPiece_InvalidID(t *testing.T) {
	_, err := NewPiece(36, "too-many", ColorRed, unitCube())
	assert.Error(t, err)
	_, err = NewPiece(-1, "negative", ColorRed, unitCube())
	assert.Error(t, err)
}

func TestPiece_CharID(t *testing.T) {
	tests := []struct {
		id   int
		want byte
	}{
		{0, '0'},
		{9, '9'},
		{10, 'A'},
		{35, 'Z'},
	}
	for _, tt := range tests {
		p := &Piece{ID: tt.id}
		assert.Equal(t, tt.want, p.CharID())
	}
}

func TestPiece_CharID_PanicsOnInvalidID(t *testing.T) {
	p := &Piece{ID: 36}
	assert.Panics(t, func() { p.CharID() })
}

// A single unit-cube piece has one placement per grid cell.
func TestComputePlacements_UnitCube(t *testing.T) {
	for _, edge := range []int{1, 2, 3, 4} {
		g := mustGrid(t, edge)
		p, err := NewPiece(0, "unit", ColorWhite, unitCube())
		require.NoError(t, err)

		p.ComputePlacements(g)
		assert.Len(t, p.Placements, g.Cells, "edge %d", edge)
	}
}

// Bitwise-equal placements must be geometrically identical. For the unit
// cube every placement is a distinct single cell, so all masks differ.
func TestComputePlacements_NoFalseCollisions(t *testing.T) {
	g := mustGrid(t, 3)
	p, err := NewPiece(0, "unit", ColorWhite, unitCube())
	require.NoError(t, err)
	p.ComputePlacements(g)

	for i := range p.Placements {
		assert.Equal(t, 1, p.Placements[i].OnesCount())
		for j := i + 1; j < len(p.Placements); j++ {
			assert.False(t, p.Placements[i].Equal(p.Placements[j]),
				"placements %d and %d collide", i, j)
		}
	}
}

func TestComputePlacements_FullCube(t *testing.T) {
	g := mustGrid(t, 2)
	full := NewOrientation([]Block{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	})
	p, err := NewPiece(0, "block", ColorBlue, full)
	require.NoError(t, err)

	require.Len(t, p.Orientations, 1, "a 2x2x2 cube is fully symmetric")
	p.ComputePlacements(g)
	require.Len(t, p.Placements, 1)
	assert.True(t, p.Placements[0].Equal(g.FullMask()))
}

func TestComputePlacements_Domino(t *testing.T) {
	g := mustGrid(t, 2)
	p, err := NewPiece(0, "domino", ColorYellow, domino())
	require.NoError(t, err)

	require.Len(t, p.Orientations, 3)
	p.ComputePlacements(g)
	// Each axis-aligned orientation fits at 4 offsets on a 2x2x2 grid.
	assert.Len(t, p.Placements, 12)
	for _, m := range p.Placements {
		assert.Equal(t, 2, m.OnesCount())
	}
}

func TestComputePlacements_TooLargeForGrid(t *testing.T) {
	g := mustGrid(t, 2)
	p, err := NewPiece(0, "long", ColorRed, straightTromino())
	require.NoError(t, err)

	p.ComputePlacements(g)
	assert.Empty(t, p.Placements, "a length-3 piece never fits an edge-2 grid")
}

func TestComputePlacements_EmptyShape(t *testing.T) {
	g := mustGrid(t, 2)
	p, err := NewPiece(0, "ghost", ColorWhite, NewOrientation(nil))
	require.NoError(t, err)

	p.ComputePlacements(g)
	assert.Empty(t, p.Placements)
}
