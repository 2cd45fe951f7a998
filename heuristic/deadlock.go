package heuristic

import (
	"math"

	"github.com/vcte/sokoban/deadlock"
	"github.com/vcte/sokoban/puzzle"
)

// Deadlock returns +Inf if any sub-rectangle of the current board matches
// a pattern in its deadlock table, else 0 (spec.md §4.3). It is sound -
// never prunes a solvable state - because every pattern in the table was
// itself proven unsolvable by the basis generator (package basisgen)
// before being added.
type Deadlock struct {
	Table deadlock.Table
	Mode  deadlock.Mode
}

func (d Deadlock) Evaluate(s puzzle.Sokoban) float64 {
	if deadlock.Match(d.Table, s, d.Mode) {
		return math.Inf(1)
	}
	return 0
}
