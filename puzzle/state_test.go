package puzzle

import (
	"testing"

	"github.com/vcte/sokoban/board"
)

const simplePuzzle = `#####
#@$.#
#####`

func mustParse(t *testing.T, text string) Sokoban {
	t.Helper()
	s, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParseStringRoundTrip(t *testing.T) {
	s := mustParse(t, simplePuzzle)
	if got := s.String(); got != simplePuzzle {
		t.Fatalf("round trip mismatch:\n got: %q\nwant: %q", got, simplePuzzle)
	}
}

func TestParseRejectsMissingPlayer(t *testing.T) {
	if _, err := Parse("#####\n#$.# \n#####"); err == nil {
		t.Fatalf("expected an error for a puzzle with no player")
	}
}

func TestSolvedRequiresEveryBoxOnGoal(t *testing.T) {
	s := mustParse(t, simplePuzzle)
	if s.Solved() {
		t.Fatalf("box has not reached the goal yet")
	}
}

func TestSolvedWithNoGoalsIsBoxesClearedOffBoard(t *testing.T) {
	// With an empty goal set (as basisgen embeds candidates), Solved must
	// require every box gone from the board, not vacuously pass.
	s := Sokoban{Board: board.FromRows([][]board.Cell{{board.Box, board.Space}}), Player: board.Position{0, 1}}
	if s.Solved() {
		t.Fatalf("a board that still holds a box must not be Solved with an empty goal set")
	}
	s.Board = board.FromRows([][]board.Cell{{board.Space, board.Space}})
	if !s.Solved() {
		t.Fatalf("a board with no boxes left must be Solved with an empty goal set")
	}
}

func TestNeighborsPushesBoxOneCell(t *testing.T) {
	s := mustParse(t, simplePuzzle)
	neighbors := Neighbors(s, NeighborOpts{})
	if len(neighbors) != 1 {
		t.Fatalf("expected exactly one legal push, got %d", len(neighbors))
	}
	if !neighbors[0].State.Solved() {
		t.Fatalf("the only push in this puzzle should solve it")
	}
}

func TestNeighborsRequiresReachableBehindCell(t *testing.T) {
	// The player is boxed in to the right of the box: the free cell left
	// of the box is unreachable, so the box cannot be pushed right.
	s := mustParse(t, "#####\n#.$@#\n#####")
	var pushRight bool
	for _, n := range Neighbors(s, NeighborOpts{}) {
		if n.Action.Dir == board.Right {
			pushRight = true
		}
	}
	if pushRight {
		t.Fatalf("pushing right would require standing on the unreachable cell left of the box")
	}
}

func TestNormalizeCollapsesPlayerPositionsWithinReachableRegion(t *testing.T) {
	s := mustParse(t, "#####\n#@ .#\n#####")
	moved := s
	moved.Player = board.Position{Row: 1, Col: 2}
	if !Normalize(s).Equal(Normalize(moved)) {
		t.Fatalf("two states differing only by player position within the same region must normalize equal")
	}
}

func TestApplyWithoutAllowOffBoardNeverDropsABox(t *testing.T) {
	s := mustParse(t, simplePuzzle)
	next := Apply(s, Push{Box: board.Position{Row: 1, Col: 2}, Dir: board.Right}, NeighborOpts{})
	if len(next.Board.Boxes()) != 1 {
		t.Fatalf("pushing a box onto the board must keep it on the board")
	}
}

func TestApplyWithAllowOffBoardCanDropABox(t *testing.T) {
	// A single free cell with a box at the edge: pushing it rightwards off
	// the 1-wide board is the generator's off-board win condition.
	b := board.New(1, 1)
	b.SetInPlace(board.Position{0, 0}, board.Box)
	s := Sokoban{Board: b, Player: board.Position{0, -1}}
	next := Apply(s, Push{Box: board.Position{0, 0}, Dir: board.Right}, NeighborOpts{AllowOffBoard: true})
	if len(next.Board.Boxes()) != 0 {
		t.Fatalf("pushing off-board with AllowOffBoard must remove the box")
	}
}

func TestLessIsAntisymmetricForDistinctStates(t *testing.T) {
	a := mustParse(t, simplePuzzle)
	b := mustParse(t, "#####\n#@ $#\n#####")
	if a.Less(b) == b.Less(a) {
		t.Fatalf("Less must be antisymmetric for distinct states")
	}
}

func TestCanStep(t *testing.T) {
	s := mustParse(t, "#####\n#@ .#\n#####")
	if !CanStep(s, board.Right) {
		t.Fatalf("the cell to the right is free space")
	}
	if CanStep(s, board.Left) {
		t.Fatalf("the cell to the left is a wall")
	}
}
