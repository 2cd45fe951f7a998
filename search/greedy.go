package search

import (
	"sort"

	"github.com/vcte/sokoban/heuristic"
	"github.com/vcte/sokoban/puzzle"
)

// Greedy runs Greedy Best-First search: a stack frontier where newly
// discovered successors are sorted by h descending and pushed, so the
// lowest (most promising) estimate ends on top (spec.md §4.4).
func Greedy(start puzzle.Sokoban, h heuristic.Heuristic, opts Options) Result {
	root := puzzle.Normalize(start)
	maxNodes := opts.maxNodes()

	stack := lifo{&node{state: root}}
	visited := map[string]bool{root.Key(): true}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.state.Solved() {
			return Result{Steps: reconstruct(n), Visited: len(visited)}
		}
		if len(visited) >= maxNodes {
			break
		}

		neighbors := puzzle.Neighbors(n.state, opts.Neighbors)
		type scored struct {
			nb struct {
				State  puzzle.Sokoban
				Action puzzle.Push
			}
			h float64
		}
		var fresh []scored
		for _, nb := range neighbors {
			key := nb.State.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			fresh = append(fresh, scored{nb: nb, h: h.Evaluate(nb.State)})
			if len(visited) >= maxNodes {
				break
			}
		}
		sort.SliceStable(fresh, func(i, j int) bool { return fresh[i].h > fresh[j].h })
		for _, sc := range fresh {
			stack.add(&node{parent: n, state: sc.nb.State, action: sc.nb.Action, hasAct: true, g: n.g + 1})
		}
	}
	return Result{Visited: len(visited)}
}
