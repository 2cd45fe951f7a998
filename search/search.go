// Package search implements the family of graph-search solvers from
// spec.md §4.4 - BFS, DFS, Greedy Best-First and A* - all sharing the
// canonical puzzle.Sokoban state and plugging in a heuristic.Heuristic.
// The node/strategy/frontier shape follows the teacher library's
// (github.com/bertbaron/solve) generalSearch loop, specialized directly
// to Sokoban instead of kept behind a generic State interface.
package search

import "github.com/vcte/sokoban/puzzle"

// DefaultMaxNodes is the solver node-budget cap used when Options.MaxNodes
// is left at zero (spec.md §4.4: "default 10^6").
const DefaultMaxNodes = 1_000_000

// Options configures a solve call.
type Options struct {
	// MaxNodes bounds the visited set; 0 means DefaultMaxNodes.
	MaxNodes int
	// Seed, if non-nil, seeds the RNG used to shuffle neighbor order in
	// BFS/DFS (spec.md §4.4, §5). Nil means an unseeded, time-based RNG.
	Seed *int64
	// Neighbors controls push-move enumeration (e.g. AllowOffBoard for
	// the deadlock-basis generator's embedded sub-boards).
	Neighbors puzzle.NeighborOpts
}

func (o Options) maxNodes() int {
	if o.MaxNodes <= 0 {
		return DefaultMaxNodes
	}
	return o.MaxNodes
}

// Step is one (state, action-that-produced-it) pair of a solution. The
// first Step of a Result has a nil Action - it is the normalized start
// state spec.md §4.4 requires every solver to begin from.
type Step struct {
	State  puzzle.Sokoban
	Action *puzzle.Push
}

// Result is the alternating state/action/state/... history spec.md §6
// describes, plus the node-visitation count used for budget diagnostics
// (spec.md §8 Scenario F).
type Result struct {
	Steps   []Step
	Visited int
}

type node struct {
	parent *node
	state  puzzle.Sokoban
	action puzzle.Push
	hasAct bool
	g      int
}

func reconstruct(n *node) []Step {
	var steps []Step
	for cur := n; cur != nil; cur = cur.parent {
		step := Step{State: cur.state}
		if cur.hasAct {
			act := cur.action
			step.Action = &act
		}
		steps = append(steps, step)
	}
	// steps was built goal -> start; reverse in place
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
