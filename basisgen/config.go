// Package basisgen implements the deadlock-basis generator (spec.md §4.6):
// for every wall configuration of every area in a size range, it tries
// placing up to MaxBoxes boxes and keeps the bit-subset-minimal
// configurations that are provably unsolvable, skipping any configuration
// already covered by a smaller pattern already in the basis.
package basisgen

import "github.com/vcte/sokoban/deadlock"

// Config bounds the search: areas from (2,2) up to (MaxRows, MaxCols)
// inclusive, at most MaxBoxes boxes per candidate. Defaults mirror the
// original implementation's gen_deadlock_basis entry point.
//
// Mode selects which of the two unsolvability probes generate_dynamic_
// deadlock_basis / generate_static_deadlock_basis runs (spec.md §4.6 step
// 2, §8 Scenario D): deadlock.Dynamic declares a candidate deadlocked if
// its boxes can never all be pushed off the padded board; deadlock.Static
// declares it deadlocked if its boxes can never all be pushed onto some
// other free cell of the padded board. deadlock.Unmodified is treated the
// same as Dynamic, since the original carries no third generation mode.
type Config struct {
	MaxRows  int
	MaxCols  int
	MaxBoxes int
	Mode     deadlock.Mode

	// GreedyBudget and AStarBudget bound the dynamic-mode probe's two
	// solvability passes (spec.md §4.6 step 2): a cheap Greedy pass first,
	// an exhaustive A* fallback only if Greedy fails to decide.
	GreedyBudget int
	AStarBudget  int

	// StaticGreedyBudget and StaticAStarBudget bound the static-mode
	// probe's equivalent passes. The original budgets these an order of
	// magnitude smaller than the dynamic ones, since a static candidate's
	// search space (rearrange in place) is far shallower than a dynamic
	// one's (clear the whole board).
	StaticGreedyBudget int
	StaticAStarBudget  int
}

// DefaultConfig returns the basis generator's default bounds: areas up to
// 4x4, at most 4 boxes, dynamic
// mode (the original's gen_deadlock_basis entry point runs dynamic first).
func DefaultConfig() Config {
	return Config{
		MaxRows:            4,
		MaxCols:            4,
		MaxBoxes:           4,
		Mode:               deadlock.Dynamic,
		GreedyBudget:       10_000,
		AStarBudget:        100_000,
		StaticGreedyBudget: 1_000,
		StaticAStarBudget:  10_000,
	}
}
