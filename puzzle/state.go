// Package puzzle implements the canonical Sokoban state: board + player +
// goals, player-position normalization, the push-move successor function,
// and the text encode/decode interface named in spec.md §6.
package puzzle

import (
	"fmt"

	"github.com/vcte/sokoban/board"
)

// Sokoban is the canonical puzzle state: an immutable-by-convention Board,
// the player's position, and an ordered list of goal positions. Instances
// are created by the parser or by Apply; neither mutates an existing
// instance (board.Board.Set and friends all copy).
//
// Invariants (spec.md §3): board.At(Player) is not Wall; every goal is in
// bounds and not a wall; the player's cell carries only Space/Box - the
// player's presence is never encoded into the Board itself.
type Sokoban struct {
	Board  board.Board
	Player board.Position
	Goals  []board.Position
}

// Push records a single box-push action: push the box at Box one step in
// direction Dir.
type Push struct {
	Box board.Position
	Dir board.Direction
}

func (p Push) String() string {
	return fmt.Sprintf("push(%v, %v)", p.Box, p.Dir)
}

// NeighborOpts controls the successor function's handling of the cell
// beyond a box. AllowOffBoard is false during normal play and true only
// in the deadlock-basis generator, where pushing a box past the padded
// frame's edge is the win condition (spec.md §9 Q3).
type NeighborOpts struct {
	AllowOffBoard bool
}

// Solved reports whether every box currently on the board sits on a goal
// cell (spec.md §4.1: the goal multiset is matched only by position; a
// box that is not on any goal makes the state unsolved). In a
// well-formed puzzle, where the number of boxes equals the number of
// goals, this is equivalent to "every goal holds a box" - but phrasing it
// as "every box is on a goal" is also what lets the deadlock-basis
// generator reuse Solved with an empty or deliberately oversized goal set
// (spec.md §4.6): with Goals == nil, Solved is true exactly when every
// box has been pushed off the board.
func (s Sokoban) Solved() bool {
	goalSet := make(map[board.Position]bool, len(s.Goals))
	for _, g := range s.Goals {
		goalSet[g] = true
	}
	for _, b := range s.Board.Boxes() {
		if !goalSet[b] {
			return false
		}
	}
	return true
}

// Equal implements the equality spec.md §3 requires: same board, same
// player, and goal lists that are pairwise equal in order (both lists are
// assumed to come from the same parser, so multiset-equality degenerates
// to positional equality).
func (s Sokoban) Equal(o Sokoban) bool {
	if !s.Board.Equal(o.Board) || s.Player != o.Player {
		return false
	}
	if len(s.Goals) != len(o.Goals) {
		return false
	}
	for i := range s.Goals {
		if s.Goals[i] != o.Goals[i] {
			return false
		}
	}
	return true
}

// Hash combines the board hash, the player hash and the goal hashes. Any
// total function of (board, player, goals) is acceptable per spec.md §3;
// tests only require it agrees with Equal and is deterministic.
func (s Sokoban) Hash() uint64 {
	h := s.Board.Hash()
	h = h*1099511628211 ^ uint64(uint32(s.Player.Hash()))
	for _, g := range s.Goals {
		h = h*1099511628211 ^ uint64(uint32(g.Hash()))
	}
	return h
}

// Less is a total order over states, used only for deterministic heap
// tie-breaking in package search (spec.md §9 Q4 - the original's `__lt__`
// stub returning False is replaced with a real order): compare by board
// bytes, then player, then goals.
func (s Sokoban) Less(o Sokoban) bool {
	if c := compareBoards(s.Board, o.Board); c != 0 {
		return c < 0
	}
	if s.Player != o.Player {
		return s.Player.Less(o.Player)
	}
	for i := 0; i < len(s.Goals) && i < len(o.Goals); i++ {
		if s.Goals[i] != o.Goals[i] {
			return s.Goals[i].Less(o.Goals[i])
		}
	}
	return len(s.Goals) < len(o.Goals)
}

func compareBoards(a, b board.Board) int {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br {
		return ar - br
	}
	if ac != bc {
		return ac - bc
	}
	for _, p := range a.Positions() {
		av, bv := a.At(p), b.At(p)
		if av != bv {
			return int(av) - int(bv)
		}
	}
	return 0
}

// CanStep reports whether the player can move one step in dir without
// pushing anything: the target cell must be in bounds and Space. Grounded
// on original_source/sokoban.py's KeyboardAction.act, minus its push
// branch and minus any rendering/input loop - a reusable, side-effect-free
// predicate for a future (out-of-scope) interactive front end.
func CanStep(s Sokoban, dir board.Direction) bool {
	target := s.Player.Add(dir)
	if !s.Board.InBounds(target) {
		return false
	}
	return s.Board.At(target) == board.Space
}

// ReachableRegion performs a 4-connected flood fill from the player's
// position over cells that are neither Wall nor Box, returning every
// position reached (including the player's own).
func ReachableRegion(s Sokoban) []board.Position {
	b := s.Board
	visited := make(map[board.Position]bool)
	stack := []board.Position{s.Player}
	visited[s.Player] = true
	var region []board.Position
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)
		for _, d := range board.Directions {
			np := p.Add(d)
			if !b.InBounds(np) || visited[np] {
				continue
			}
			cell := b.At(np)
			if cell.IsWall() || cell.IsBox() {
				continue
			}
			visited[np] = true
			stack = append(stack, np)
		}
	}
	return region
}

// Normalize relocates the player to the lexicographically smallest cell
// of its reachable region, without otherwise changing the state. Two
// states that differ only in the player's position within the same
// reachable region normalize to equal states (spec.md's normalization-
// idempotence property).
func Normalize(s Sokoban) Sokoban {
	region := ReachableRegion(s)
	min := region[0]
	for _, p := range region[1:] {
		if p.Less(min) {
			min = p
		}
	}
	s.Player = min
	return s
}

// Neighbors enumerates every legal push in s, returning the resulting
// (already-normalized) state alongside the action that produced it.
// Algorithm (spec.md §4.1):
//  1. compute the player-reachable region;
//  2. for every box and every direction, the push is legal if the cell
//     beyond the box is in-bounds-and-Space (or, with AllowOffBoard, out
//     of bounds), and the cell behind the box is in-bounds and reachable;
//  3. applying a push clears the box's old cell, (if still on-board) sets
//     the new cell to Box, moves the player to the box's old position,
//     then renormalizes.
func Neighbors(s Sokoban, opts NeighborOpts) []struct {
	State  Sokoban
	Action Push
} {
	reachable := make(map[board.Position]bool)
	for _, p := range ReachableRegion(s) {
		reachable[p] = true
	}

	var out []struct {
		State  Sokoban
		Action Push
	}
	for _, box := range s.Board.Boxes() {
		for _, d := range board.Directions {
			beyond := box.Add(d)
			behind := box.Sub(d)

			beyondOK := false
			if s.Board.InBounds(beyond) {
				beyondOK = s.Board.At(beyond) == board.Space
			} else {
				beyondOK = opts.AllowOffBoard
			}
			if !beyondOK {
				continue
			}
			if !s.Board.InBounds(behind) || !reachable[behind] {
				continue
			}

			action := Push{Box: box, Dir: d}
			out = append(out, struct {
				State  Sokoban
				Action Push
			}{Apply(s, action, opts), action})
		}
	}
	return out
}

// Apply performs the push action on a copy of s and returns the resulting
// normalized state. It assumes the action is legal - the engine's own
// Neighbors is the sole source of actions and only emits legal pushes;
// any other caller is responsible for legality (spec.md §7).
func Apply(s Sokoban, action Push, opts NeighborOpts) Sokoban {
	b := s.Board.Copy()
	beyond := action.Box.Add(action.Dir)
	b.SetInPlace(action.Box, board.Space)
	if b.InBounds(beyond) {
		b.SetInPlace(beyond, board.Box)
	}
	s2 := Sokoban{Board: b, Player: action.Box, Goals: s.Goals}
	return Normalize(s2)
}

// Copy returns an independent copy of s (board copy, fresh goals slice).
func (s Sokoban) Copy() Sokoban {
	goals := make([]board.Position, len(s.Goals))
	copy(goals, s.Goals)
	return Sokoban{Board: s.Board.Copy(), Player: s.Player, Goals: goals}
}
