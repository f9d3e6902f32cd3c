package engine

import (
	"sync"

	"github.com/jdekker3d/cubefit/internal/model"
)

// enumerateParallel fans the first recursion level out across
// Options.Workers goroutines. Every (piece, placement) choice at the root
// is an independent subtree: each worker searches its subtree on a private
// board and used-set, and solutions funnel through the mutex in report.
// A counting semaphore bounds the number of live workers.
func (s *Solver) enumerateParallel(fn SolutionFunc) int {
	st := s.reset(NewBoard(s.puzzle.Grid), s.allPieceIDs(), fn)

	sem := make(chan struct{}, s.opts.Workers)
	var wg sync.WaitGroup

	for _, piece := range s.puzzle.Pieces {
		for _, mask := range piece.Placements {
			st.used[piece.ID] = true
			feasible := s.stillPossible(mask, st.used)
			st.used[piece.ID] = false
			if !feasible {
				continue
			}

			wg.Add(1)
			sem <- struct{}{}
			go func(pieceID int, mask model.Bitmask) {
				defer wg.Done()
				defer func() { <-sem }()

				board := NewBoard(s.puzzle.Grid)
				board.Push(pieceID, mask)

				used := make([]bool, len(s.puzzle.Pieces))
				used[pieceID] = true
				s.solve(&searchState{
					board: board,
					used:  used,
					left:  len(s.puzzle.Pieces) - 1,
				})
			}(piece.ID, mask)
		}
	}

	wg.Wait()
	return s.Count()
}
