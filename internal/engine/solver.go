package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jdekker3d/cubefit/internal/model"
)

// Solution is one grid-filling arrangement handed to the solution
// callback. Occupied and Placed are snapshots; the callback may retain
// them after the search moves on.
type Solution struct {
	// Number is the running solution counter, starting at 1.
	Number int

	// Occupied is the final occupancy, equal to the grid's full mask.
	Occupied model.Bitmask

	// Placed lists the decisions in the order they were made.
	Placed []Placed
}

// SolutionFunc receives each enumerated solution.
type SolutionFunc func(Solution)

// Options configures a Solver.
type Options struct {
	// DistinctOnly switches from literal leaf reporting to reporting each
	// distinct configuration once. The search iterates over all remaining
	// pieces at every level, so the same final board is reached once per
	// valid insertion order; by default every such leaf fires its own
	// report. With DistinctOnly a seen-set keyed on the full piece-to-mask
	// assignment suppresses the repeats.
	DistinctOnly bool

	// Workers splits the first recursion level across that many
	// goroutines when greater than one. The set of reported solutions is
	// unchanged but their arrival order becomes nondeterministic; solution
	// numbers stay globally sequential.
	Workers int
}

// Solver enumerates the exact covers of a puzzle. A Solver is reusable:
// each Enumerate* call starts a fresh count and seen-set.
type Solver struct {
	puzzle *model.Puzzle
	opts   Options

	mu    sync.Mutex
	count int
	seen  map[string]struct{}
	onSol SolutionFunc
}

// NewSolver creates a solver for the puzzle.
func NewSolver(puzzle *model.Puzzle, opts Options) *Solver {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Solver{puzzle: puzzle, opts: opts}
}

// Count returns the number of solutions reported by the last run.
func (s *Solver) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// searchState carries the board and the not-yet-placed piece set through
// the recursion. used is indexed by piece id; left counts unused pieces.
type searchState struct {
	board *Board
	used  []bool
	left  int
}

// Enumerate explores the full placement tree from an empty board with
// every piece available, invoking fn on each solution. It returns the
// solution count. The search always terminates; finding no solution is a
// valid, silent outcome.
func (s *Solver) Enumerate(fn SolutionFunc) int {
	if s.opts.Workers > 1 {
		return s.enumerateParallel(fn)
	}
	return s.EnumerateFrom(NewBoard(s.puzzle.Grid), s.allPieceIDs(), fn)
}

// EnumerateFrom runs the search from a prepared board with only the given
// piece ids still available. This is the entry point for callers that
// pre-place a piece at a fixed location to cut whole-board symmetries.
func (s *Solver) EnumerateFrom(board *Board, remaining []int, fn SolutionFunc) int {
	st := s.reset(board, remaining, fn)
	s.solve(st)
	return s.Count()
}

// reset prepares per-run state shared by the Enumerate* entry points.
func (s *Solver) reset(board *Board, remaining []int, fn SolutionFunc) *searchState {
	s.mu.Lock()
	s.count = 0
	s.seen = make(map[string]struct{})
	s.onSol = fn
	s.mu.Unlock()

	used := make([]bool, len(s.puzzle.Pieces))
	for i := range used {
		used[i] = true
	}
	for _, id := range remaining {
		used[id] = false
	}
	return &searchState{board: board, used: used, left: len(remaining)}
}

func (s *Solver) allPieceIDs() []int {
	ids := make([]int, len(s.puzzle.Pieces))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// solve is the recursive core: for every remaining piece and every one of
// its precomputed placements, skip overlaps, prune infeasible branches,
// then push, recurse and pop.
func (s *Solver) solve(st *searchState) {
	if st.left == 0 {
		s.report(st.board)
		return
	}
	for _, piece := range s.puzzle.Pieces {
		if st.used[piece.ID] {
			continue
		}
		for _, mask := range piece.Placements {
			if !st.board.IsValid(mask) {
				continue
			}
			st.used[piece.ID] = true
			st.left--
			if s.stillPossible(st.board.occupied.Or(mask), st.used) {
				st.board.Push(piece.ID, mask)
				s.solve(st)
				st.board.Pop()
			}
			st.used[piece.ID] = false
			st.left++
		}
	}
}

// stillPossible is the feasibility prune: false when any unused piece has
// no placement disjoint from the hypothetical occupancy. It is a local,
// per-piece filter, not a full exact-cover proof: it cannot see two
// pieces that individually still fit but not simultaneously.
func (s *Solver) stillPossible(occupied model.Bitmask, used []bool) bool {
	for _, piece := range s.puzzle.Pieces {
		if used[piece.ID] {
			continue
		}
		placeable := false
		for _, mask := range piece.Placements {
			if !occupied.Intersects(mask) {
				placeable = true
				break
			}
		}
		if !placeable {
			return false
		}
	}
	return true
}

// report records a solution leaf and invokes the callback. In distinct
// mode leaves that repeat an already-seen piece-to-mask assignment are
// dropped.
func (s *Solver) report(board *Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.DistinctOnly {
		key := assignmentKey(board.placed)
		if _, dup := s.seen[key]; dup {
			return
		}
		s.seen[key] = struct{}{}
	}
	s.count++
	if s.onSol != nil {
		s.onSol(Solution{
			Number:   s.count,
			Occupied: board.Occupied(),
			Placed:   board.Placements(),
		})
	}
}

// assignmentKey canonicalizes a decision stack to an insertion-order-free
// key: masks dumped in piece-id order.
func assignmentKey(placed []Placed) string {
	sorted := make([]Placed, len(placed))
	copy(sorted, placed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PieceID < sorted[j].PieceID })

	var sb strings.Builder
	for _, p := range sorted {
		fmt.Fprintf(&sb, "%d=%s;", p.PieceID, p.Mask.String())
	}
	return sb.String()
}
