package deadlock

import (
	"github.com/vcte/sokoban/board"
	"github.com/vcte/sokoban/puzzle"
)

// Mode selects which windows the sliding-window matcher is allowed to
// skip (spec.md §4.5).
type Mode int

const (
	// Dynamic skips a window if any goal lies within it - a box inside a
	// subregion containing a goal cannot be declared deadlocked without
	// playing further.
	Dynamic Mode = iota
	// Static skips the whole match if any box in the state already rests
	// on a goal.
	Static
	// Unmodified never skips.
	Unmodified
)

// Match reports whether any sliding window of s's board, of any area the
// table has entries for, matches a stored pattern (spec.md §4.5). Before
// sliding, goal cells are cleared to Space, mirroring
// DeadlockHeuristic._evaluate - a box already parked on a goal must never
// trigger a false deadlock.
func Match(t Table, s puzzle.Sokoban, mode Mode) bool {
	if mode == Static {
		for _, g := range s.Goals {
			if s.Board.At(g).IsBox() {
				return false
			}
		}
	}

	clean := s.Board.Copy()
	for _, g := range s.Goals {
		clean.SetInPlace(g, board.Space)
	}
	goalSet := make(map[board.Position]bool, len(s.Goals))
	for _, g := range s.Goals {
		goalSet[g] = true
	}

	rows, cols := clean.Shape()
	for area, patterns := range t {
		if len(patterns) == 0 || area.Rows > rows || area.Cols > cols {
			continue
		}
		for dy := 0; dy <= rows-area.Rows; dy++ {
			for dx := 0; dx <= cols-area.Cols; dx++ {
				if mode == Dynamic && windowHasGoal(goalSet, dy, dx, area) {
					continue
				}
				sub := clean.SubBoard(dy, dx, area.Rows, area.Cols)
				if patterns[sub.Encode()] {
					return true
				}
			}
		}
	}
	return false
}

// MatchBoard is Match without any notion of goals - used by package
// basisgen's subsume check (spec.md §4.6 step 1), which tests a raw
// wall/box pattern against the basis patterns already known for its own
// and smaller contained areas.
func MatchBoard(t Table, b board.Board) bool {
	rows, cols := b.Shape()
	for area, patterns := range t {
		if len(patterns) == 0 || area.Rows > rows || area.Cols > cols {
			continue
		}
		for dy := 0; dy <= rows-area.Rows; dy++ {
			for dx := 0; dx <= cols-area.Cols; dx++ {
				sub := b.SubBoard(dy, dx, area.Rows, area.Cols)
				if patterns[sub.Encode()] {
					return true
				}
			}
		}
	}
	return false
}

func windowHasGoal(goalSet map[board.Position]bool, dy, dx int, area Area) bool {
	for r := dy; r < dy+area.Rows; r++ {
		for c := dx; c < dx+area.Cols; c++ {
			if goalSet[board.Position{Row: r, Col: c}] {
				return true
			}
		}
	}
	return false
}
