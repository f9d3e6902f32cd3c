package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Edge)
	assert.Equal(t, 64, g.Cells)

	_, err = NewGrid(0)
	assert.Error(t, err)
	_, err = NewGrid(-2)
	assert.Error(t, err)
}

func TestGrid_IndexCoordRoundTrip(t *testing.T) {
	g, err := NewGrid(3)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Index(0, 0, 0))
	assert.Equal(t, 1, g.Index(1, 0, 0))
	assert.Equal(t, 3, g.Index(0, 1, 0))
	assert.Equal(t, 9, g.Index(0, 0, 1))

	for i := 0; i < g.Cells; i++ {
		x, y, z := g.Coord(i)
		assert.Equal(t, i, g.Index(x, y, z))
	}
}

func TestGrid_Contains(t *testing.T) {
	g, _ := NewGrid(2)

	assert.True(t, g.Contains(Block{X: 0, Y: 0, Z: 0}))
	assert.True(t, g.Contains(Block{X: 1, Y: 1, Z: 1}))
	assert.False(t, g.Contains(Block{X: 2, Y: 0, Z: 0}))
	assert.False(t, g.Contains(Block{X: 0, Y: -1, Z: 0}))
}

func TestGrid_Masks(t *testing.T) {
	g, _ := NewGrid(2)

	full := g.FullMask()
	assert.Equal(t, g.Cells, full.OnesCount())
	assert.True(t, g.EmptyMask().IsZero())

	cell := g.CellMask(1, 0, 1)
	assert.Equal(t, 1, cell.OnesCount())
	assert.True(t, cell.Test(g.Index(1, 0, 1)))
}

func TestGrid_CornerMasks(t *testing.T) {
	g, _ := NewGrid(3)
	corners := g.CornerMasks()
	require.Len(t, corners, 8)

	// All corners are distinct single cells
	union := g.EmptyMask()
	for _, c := range corners {
		assert.Equal(t, 1, c.OnesCount())
		assert.False(t, union.Intersects(c))
		union.OrAssign(c)
	}
	assert.True(t, union.Test(g.Index(0, 0, 0)))
	assert.True(t, union.Test(g.Index(2, 2, 2)))
}

func TestGrid_CornerMasks_EdgeOne(t *testing.T) {
	g, _ := NewGrid(1)
	corners := g.CornerMasks()
	require.Len(t, corners, 1)
	assert.True(t, corners[0].Test(0))
}
