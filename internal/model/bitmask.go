package model

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Bitmask is a fixed-width bit vector over grid cells. Bit i is cell i in
// the grid's z-major indexing. A mask represents either one piece
// placement's footprint or the board's total occupied-cell set.
//
// The width is parameterized by the owning grid's cell count; grids up to
// 64 cells (a 4x4x4 cube) occupy a single word, larger grids spill into
// additional words. All binary operations assume both operands were sized
// for the same grid.
type Bitmask struct {
	words []uint64
	bits  int
}

// NewBitmask returns an all-zero mask wide enough for the given number of
// cells.
func NewBitmask(cells int) Bitmask {
	if cells < 0 {
		cells = 0
	}
	return Bitmask{
		words: make([]uint64, (cells+wordBits-1)/wordBits),
		bits:  cells,
	}
}

// BitmaskFromWords constructs a mask from raw words. Bits beyond the cell
// count are cleared.
func BitmaskFromWords(cells int, words []uint64) Bitmask {
	m := NewBitmask(cells)
	copy(m.words, words)
	m.clearTail()
	return m
}

// clearTail zeroes any bits of the last word beyond the cell count.
func (m Bitmask) clearTail() {
	if m.bits%wordBits != 0 && len(m.words) > 0 {
		m.words[len(m.words)-1] &= (uint64(1) << (m.bits % wordBits)) - 1
	}
}

// Bits returns the number of cells the mask covers.
func (m Bitmask) Bits() int {
	return m.bits
}

// Clone returns an independent copy of the mask.
func (m Bitmask) Clone() Bitmask {
	c := Bitmask{words: make([]uint64, len(m.words)), bits: m.bits}
	copy(c.words, m.words)
	return c
}

// Set sets bit i.
func (m Bitmask) Set(i int) {
	m.words[i/wordBits] |= uint64(1) << (i % wordBits)
}

// Test reports whether bit i is set.
func (m Bitmask) Test(i int) bool {
	return m.words[i/wordBits]&(uint64(1)<<(i%wordBits)) != 0
}

// Fill sets every bit, producing the all-cells-occupied mask.
func (m Bitmask) Fill() {
	for i := range m.words {
		m.words[i] = ^uint64(0)
	}
	m.clearTail()
}

// Or returns the bitwise union of two masks.
func (m Bitmask) Or(other Bitmask) Bitmask {
	r := m.Clone()
	r.OrAssign(other)
	return r
}

// OrAssign unions other into m in place.
func (m Bitmask) OrAssign(other Bitmask) {
	for i := range m.words {
		m.words[i] |= other.words[i]
	}
}

// XorAssign toggles other's bits in m in place. Used to undo a union:
// removing a placement via XOR is exact because placements never overlap
// the occupancy they were pushed onto.
func (m Bitmask) XorAssign(other Bitmask) {
	for i := range m.words {
		m.words[i] ^= other.words[i]
	}
}

// And returns the bitwise intersection of two masks.
func (m Bitmask) And(other Bitmask) Bitmask {
	r := m.Clone()
	for i := range r.words {
		r.words[i] &= other.words[i]
	}
	return r
}

// Not returns the complement of the mask within the grid's cells.
func (m Bitmask) Not() Bitmask {
	r := m.Clone()
	for i := range r.words {
		r.words[i] = ^r.words[i]
	}
	r.clearTail()
	return r
}

// Intersects reports whether the two masks share at least one set bit.
// A nonzero intersection signals an overlapping placement.
func (m Bitmask) Intersects(other Bitmask) bool {
	for i := range m.words {
		if m.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether no bit is set.
func (m Bitmask) IsZero() bool {
	for _, w := range m.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two masks have identical bits.
func (m Bitmask) Equal(other Bitmask) bool {
	if m.bits != other.bits {
		return false
	}
	for i := range m.words {
		if m.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// OnesCount returns the number of set bits.
func (m Bitmask) OnesCount() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// String renders the mask as hex words, most significant word first.
func (m Bitmask) String() string {
	var sb strings.Builder
	for i := len(m.words) - 1; i >= 0; i-- {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%016x", m.words[i])
	}
	return sb.String()
}
