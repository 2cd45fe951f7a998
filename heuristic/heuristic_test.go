package heuristic

import (
	"math"
	"testing"

	"github.com/vcte/sokoban/board"
	"github.com/vcte/sokoban/puzzle"
)

func state(boxes, goals []board.Position) puzzle.Sokoban {
	b := board.New(5, 5)
	for _, p := range boxes {
		b.SetInPlace(p, board.Box)
	}
	return puzzle.Sokoban{Board: b, Player: board.Position{0, 0}, Goals: goals}
}

func TestNoHeuristicIsAlwaysZero(t *testing.T) {
	s := state([]board.Position{{2, 2}}, []board.Position{{0, 0}})
	if (NoHeuristic{}).Evaluate(s) != 0 {
		t.Fatalf("NoHeuristic must always return 0")
	}
}

func TestRemainingBoxesCountsOffGoal(t *testing.T) {
	s := state([]board.Position{{1, 1}, {2, 2}}, []board.Position{{1, 1}})
	if got := (RemainingBoxes{}).Evaluate(s); got != 1 {
		t.Fatalf("expected 1 remaining box, got %v", got)
	}
}

func TestManhattanDistSumsNearestGoal(t *testing.T) {
	s := state([]board.Position{{0, 0}, {4, 4}}, []board.Position{{0, 3}, {4, 0}})
	got := ManhattanDist{}.Evaluate(s)
	// box (0,0) nearest goal is (0,3) -> dist 3; box (4,4) nearest is (4,0) -> dist 4
	if got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
}

func TestMinMatchingIsFiniteWhenBoxesCompete(t *testing.T) {
	// Two boxes competing for the same nearby goal: the optimal assignment
	// must route one of them to the farther goal. The result must be
	// finite and never less than zero.
	s := state([]board.Position{{0, 0}, {0, 1}}, []board.Position{{0, 0}, {4, 4}})
	got := MinMatching{}.Evaluate(s)
	if got < 0 || math.IsInf(got, 0) {
		t.Fatalf("MinMatching should be a finite non-negative number, got %v", got)
	}
}

func TestMaxIsPointwiseMaximum(t *testing.T) {
	s := state([]board.Position{{0, 0}}, []board.Position{{0, 3}})
	combined := Max(RemainingBoxes{}, ManhattanDist{})
	a := RemainingBoxes{}.Evaluate(s)
	b := ManhattanDist{}.Evaluate(s)
	want := a
	if b > want {
		want = b
	}
	if got := combined.Evaluate(s); got != want {
		t.Fatalf("Max should equal the larger of its components: got %v want %v", got, want)
	}
}

func TestMaxWithDeadlockIsInfiniteWhenEitherIs(t *testing.T) {
	always := constHeuristic(math.Inf(1))
	combined := Max(RemainingBoxes{}, always)
	s := state(nil, nil)
	if !math.IsInf(combined.Evaluate(s), 1) {
		t.Fatalf("Max must propagate +Inf from any component")
	}
}

type constHeuristic float64

func (c constHeuristic) Evaluate(puzzle.Sokoban) float64 { return float64(c) }
