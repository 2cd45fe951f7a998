package basisgen

import (
	"sort"

	"github.com/vcte/sokoban/board"
	"github.com/vcte/sokoban/deadlock"
	"github.com/vcte/sokoban/heuristic"
	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

// Generate runs the full basis generation procedure and returns the
// minimized basis together with the table it expands to (spec.md §4.6).
func Generate(cfg Config) ([]board.Board, deadlock.Table) {
	table := deadlock.NewTable()
	var basis []board.Board

	for _, area := range areaOrder(cfg) {
		for _, walls := range wallConfigs(area) {
			addBoxAndTest(cfg, walls, cfg.MaxBoxes, &basis, table)
		}
	}

	return minimize(basis), table
}

// areaOrder returns every (rows, cols) area from (2,2) up to (MaxRows,
// MaxCols), smallest-area first, so that by the time a larger area is
// processed, every pattern that fits inside a smaller contained area is
// already in the table and available to the subsume check (spec.md §9
// Q1 / §4.6 step 1).
func areaOrder(cfg Config) []deadlock.Area {
	var areas []deadlock.Area
	for r := 2; r <= cfg.MaxRows; r++ {
		for c := 2; c <= cfg.MaxCols; c++ {
			areas = append(areas, deadlock.Area{Rows: r, Cols: c})
		}
	}
	sort.Slice(areas, func(i, j int) bool {
		ai, aj := areas[i], areas[j]
		if ai.Rows*ai.Cols != aj.Rows*aj.Cols {
			return ai.Rows*ai.Cols < aj.Rows*aj.Cols
		}
		if ai.Rows != aj.Rows {
			return ai.Rows < aj.Rows
		}
		return ai.Cols < aj.Cols
	})
	return areas
}

// wallConfigs enumerates every {Space, Wall} placement of an area x area
// board: the candidate room shapes a deadlock pattern might occupy.
func wallConfigs(area deadlock.Area) []board.Board {
	n := area.Rows * area.Cols
	total := 1 << uint(n)
	out := make([]board.Board, 0, total)
	for mask := 0; mask < total; mask++ {
		b := board.New(area.Rows, area.Cols)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				b.SetInPlace(board.Position{Row: i / area.Cols, Col: i % area.Cols}, board.Wall)
			}
		}
		out = append(out, b)
	}
	return out
}

// addBoxAndTest is add_box_and_test_deadlock: it tries every way to place
// 1..maxBox boxes on the Space cells of walls, testing each placement for
// unsolvability. A placement already covered by a pattern already in the
// table is skipped (and not recursed into further, since any superset of
// a known-deadlocked pattern is also deadlocked and therefore redundant).
func addBoxAndTest(cfg Config, walls board.Board, maxBox int, basis *[]board.Board, table deadlock.Table) {
	var free []board.Position
	for _, p := range walls.Positions() {
		if walls.At(p) == board.Space {
			free = append(free, p)
		}
	}

	tested := make(map[uint64]bool)
	for k := 1; k <= maxBox && k <= len(free); k++ {
		forEachCombination(len(free), k, func(idx []int) {
			candidate := walls.Copy()
			for _, i := range idx {
				candidate.SetInPlace(free[i], board.Box)
			}
			code := candidate.Encode()
			if tested[code] {
				return
			}
			tested[code] = true

			if deadlock.MatchBoard(table, candidate) {
				return // already covered by a smaller known pattern
			}
			if isDeadlocked(cfg, table, candidate) {
				*basis = append(*basis, candidate)
				table.Expand(candidate)
			}
		})
	}
}

// forEachCombination calls fn with every k-element increasing index
// combination from [0, n).
func forEachCombination(n, k int, fn func(idx []int)) {
	if k == 0 {
		fn(nil)
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// isDeadlocked embeds candidate inside a 1-cell Space frame and dispatches
// to the probe matching cfg.Mode (spec.md §4.6 step 2, §8 Scenario D):
// generate_dynamic_deadlock_basis and generate_static_deadlock_basis in
// the original are two distinct win conditions over the same padded
// board, not one probe with a shared heuristic.
func isDeadlocked(cfg Config, table deadlock.Table, candidate board.Board) bool {
	padded := board.Pad(candidate, 1)
	if padded.At(board.Position{Row: 0, Col: 0}).IsWall() {
		return true // no room for the player even at the frame corner
	}

	if cfg.Mode == deadlock.Static {
		return staticDeadlocked(cfg, padded)
	}
	return dynamicDeadlocked(cfg, table, padded)
}

// dynamicDeadlocked is board_in_dynamic_deadlock: goals are left empty, so
// Sokoban.Solved only becomes true once every box has been pushed past the
// padded frame's edge (AllowOffBoard). The A* fallback feeds the table
// built so far back in as a pruning heuristic - DynamicDeadlockHeuristic(
// deadlock_table).max(RemainingBoxesHeuristic()) in the original - which
// is what makes the larger node budget sufficient once MaxRows/MaxCols
// grow past the small default.
func dynamicDeadlocked(cfg Config, table deadlock.Table, padded board.Board) bool {
	start := puzzle.Sokoban{Board: padded, Player: board.Position{Row: 0, Col: 0}, Goals: nil}

	opts := search.Options{
		MaxNodes:  cfg.GreedyBudget,
		Neighbors: puzzle.NeighborOpts{AllowOffBoard: true},
	}
	if r := search.Greedy(start, heuristic.RemainingBoxes{}, opts); r.Steps != nil {
		return false
	}

	opts.MaxNodes = cfg.AStarBudget
	h := heuristic.Max(heuristic.Deadlock{Table: table, Mode: deadlock.Dynamic}, heuristic.RemainingBoxes{})
	r := search.AStar(start, h, opts)
	return r.Steps == nil
}

// staticDeadlocked is board_in_static_deadlock: goals are every free cell
// of the padded board, so Sokoban.Solved becomes true once every box has
// been rearranged onto some cell that wasn't already its own (a box's own
// starting cell is never itself a goal, since FreeSpaces only reports
// cells that are currently Space). Pushing is not allowed to leave the
// board. Unlike the dynamic probe, the original never feeds the table
// back in as a heuristic here - only RemainingBoxesHeuristic, at smaller
// node budgets, since rearranging in place is a far shallower search than
// clearing the whole board.
func staticDeadlocked(cfg Config, padded board.Board) bool {
	start := puzzle.Sokoban{Board: padded, Player: board.Position{Row: 0, Col: 0}, Goals: padded.FreeSpaces()}

	opts := search.Options{
		MaxNodes:  cfg.StaticGreedyBudget,
		Neighbors: puzzle.NeighborOpts{AllowOffBoard: false},
	}
	if r := search.Greedy(start, heuristic.RemainingBoxes{}, opts); r.Steps != nil {
		return false
	}

	opts.MaxNodes = cfg.StaticAStarBudget
	r := search.AStar(start, heuristic.RemainingBoxes{}, opts)
	return r.Steps == nil
}

// minimize drops every basis entry that is covered by some other entry's
// exact pattern once all entries are known - a final pass to absorb any
// patterns added out of containment order would have missed.
func minimize(basis []board.Board) []board.Board {
	keep := make([]bool, len(basis))
	for i := range keep {
		keep[i] = true
	}
	for i, a := range basis {
		for j, b := range basis {
			if i == j || !keep[j] {
				continue
			}
			ar, ac := a.Shape()
			br, bc := b.Shape()
			if ar != br || ac != bc {
				continue
			}
			if i != j && board.Covers(b, a) && !board.Covers(a, b) {
				keep[i] = false
			}
		}
	}
	var out []board.Board
	for i, b := range basis {
		if keep[i] {
			out = append(out, b)
		}
	}
	return out
}
