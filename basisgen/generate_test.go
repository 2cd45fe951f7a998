package basisgen

import (
	"testing"

	"github.com/vcte/sokoban/board"
	"github.com/vcte/sokoban/deadlock"
)

func TestForEachCombinationEnumeratesAllKSubsets(t *testing.T) {
	var got [][]int
	forEachCombination(4, 2, func(idx []int) {
		got = append(got, append([]int(nil), idx...))
	})
	want := 6 // C(4,2)
	if len(got) != want {
		t.Fatalf("expected %d combinations, got %d: %v", want, len(got), got)
	}
	for _, idx := range got {
		if len(idx) != 2 || idx[0] >= idx[1] {
			t.Fatalf("combination %v is not a strictly increasing pair", idx)
		}
	}
}

func TestForEachCombinationZero(t *testing.T) {
	calls := 0
	forEachCombination(3, 0, func(idx []int) {
		calls++
		if len(idx) != 0 {
			t.Fatalf("k=0 combination should be empty, got %v", idx)
		}
	})
	if calls != 1 {
		t.Fatalf("expected exactly one empty combination, got %d calls", calls)
	}
}

func TestAreaOrderStartsSmallest(t *testing.T) {
	areas := areaOrder(Config{MaxRows: 3, MaxCols: 3})
	if areas[0].Rows*areas[0].Cols > areas[len(areas)-1].Rows*areas[len(areas)-1].Cols {
		t.Fatalf("areaOrder must be non-decreasing by cell count: %v", areas)
	}
	if areas[0] != (deadlock.Area{Rows: 2, Cols: 2}) {
		t.Fatalf("smallest area should be 2x2, got %v", areas[0])
	}
}

func TestMinimizeDropsEntriesCoveredByAMoreGeneralPattern(t *testing.T) {
	general := board.New(1, 2) // all Space: covers everything of its shape
	specific := board.New(1, 2)
	specific.SetInPlace(board.Position{0, 0}, board.Wall)

	kept := minimize([]board.Board{specific, general})
	if len(kept) != 1 || !kept[0].Equal(general) {
		t.Fatalf("expected only the more general pattern to survive, got %v", kept)
	}
}

func TestMinimizeKeepsIncomparablePatterns(t *testing.T) {
	a := board.New(1, 2)
	a.SetInPlace(board.Position{0, 0}, board.Wall)
	b := board.New(1, 2)
	b.SetInPlace(board.Position{0, 1}, board.Wall)

	kept := minimize([]board.Board{a, b})
	if len(kept) != 2 {
		t.Fatalf("neither pattern covers the other, both should survive: %v", kept)
	}
}

// soleBox is a 1x1 candidate holding a single box: once padded, a push
// onto an adjacent free cell is one move away and two pushes in one
// direction carry it off the frame, so an ample budget should clear it
// under either mode.
func soleBox() board.Board {
	b := board.New(1, 1)
	b.SetInPlace(board.Position{0, 0}, board.Box)
	return b
}

func TestIsDeadlockedDynamicClearsAnOpenCandidate(t *testing.T) {
	cfg := Config{Mode: deadlock.Dynamic, GreedyBudget: 1000, AStarBudget: 1000}
	if isDeadlocked(cfg, deadlock.NewTable(), soleBox()) {
		t.Fatal("a lone box with room on every side should be pushable off the board")
	}
}

func TestIsDeadlockedStaticClearsAnOpenCandidate(t *testing.T) {
	cfg := Config{Mode: deadlock.Static, StaticGreedyBudget: 1000, StaticAStarBudget: 1000}
	if isDeadlocked(cfg, deadlock.NewTable(), soleBox()) {
		t.Fatal("a lone box with room on every side should be pushable onto a free cell")
	}
}

// TestIsDeadlockedStaticUsesItsOwnBudgets guards the mode switch itself:
// Static must consult StaticGreedyBudget/StaticAStarBudget, not the
// dynamic-mode GreedyBudget/AStarBudget fields, even when both are set on
// the same Config.
func TestIsDeadlockedStaticUsesItsOwnBudgets(t *testing.T) {
	cfg := Config{
		Mode:               deadlock.Static,
		GreedyBudget:       1000,
		AStarBudget:        1000,
		StaticGreedyBudget: 1,
		StaticAStarBudget:  1,
	}
	if !isDeadlocked(cfg, deadlock.NewTable(), soleBox()) {
		t.Fatal("a 1-node static budget should exhaust before finding the one-push solution")
	}
}

func TestIsDeadlockedDefaultModeIsDynamic(t *testing.T) {
	cfg := Config{GreedyBudget: 1000, AStarBudget: 1000}
	if cfg.Mode != deadlock.Dynamic {
		t.Fatalf("zero-value Config.Mode should be deadlock.Dynamic, got %v", cfg.Mode)
	}
	if isDeadlocked(cfg, deadlock.NewTable(), soleBox()) {
		t.Fatal("an unset Mode should behave like deadlock.Dynamic")
	}
}
