package engine

import "github.com/jdekker3d/cubefit/internal/model"

// EnumerateCorners runs the corner-first search: each corner mask in turn
// must be covered by a newly placed piece before the search falls through
// to the unconstrained enumeration. Corner cells admit the fewest
// placements, so resolving them first sharply cuts the branching factor.
//
// An empty corner list makes this identical to EnumerateFrom. Each corner
// must still be free when its turn comes: a single placement covering two
// listed corners dead-ends when the second one is popped, so callers list
// corners they expect distinct pieces to fill, or pass a prefix.
func (s *Solver) EnumerateCorners(corners []model.Bitmask, board *Board, remaining []int, fn SolutionFunc) int {
	st := s.reset(board, remaining, fn)
	s.solveCorners(st, corners)
	return s.Count()
}

// solveCorners forces a placement over the first corner, recurses on the
// rest, and delegates to the plain search once the list is exhausted.
func (s *Solver) solveCorners(st *searchState, corners []model.Bitmask) {
	if len(corners) == 0 {
		s.solve(st)
		return
	}
	corner := corners[0]
	for _, piece := range s.puzzle.Pieces {
		if st.used[piece.ID] {
			continue
		}
		for _, mask := range piece.Placements {
			if !st.board.IsValid(mask) || !mask.Intersects(corner) {
				continue
			}
			st.used[piece.ID] = true
			st.left--
			if s.stillPossible(st.board.occupied.Or(mask), st.used) {
				st.board.Push(piece.ID, mask)
				s.solveCorners(st, corners[1:])
				st.board.Pop()
			}
			st.used[piece.ID] = false
			st.left++
		}
	}
}
