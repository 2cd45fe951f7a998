package search

import (
	"container/heap"
	"math"

	"github.com/vcte/sokoban/heuristic"
	"github.com/vcte/sokoban/puzzle"
)

type pqEntry struct {
	f     float64
	state puzzle.Sokoban
	n     *node
}

// pqueue is the A* frontier: a min-heap on f, with Sokoban.Less as a
// deterministic tie-break so heap order never depends on map iteration or
// insertion order (spec.md §5: "implementations must supply a total order
// on states for heap stability").
type pqueue []pqEntry

func (q pqueue) Len() int { return len(q) }
func (q pqueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].state.Less(q[j].state)
}
func (q pqueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pqueue) Push(x interface{}) { *q = append(*q, x.(pqEntry)) }
func (q *pqueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// AStar runs A* over the push-move graph with unit push-costs, using h as
// the admissible lower bound (spec.md §4.4). With heuristic.NoHeuristic
// this is plain Dijkstra.
func AStar(start puzzle.Sokoban, h heuristic.Heuristic, opts Options) Result {
	maxNodes := opts.maxNodes()
	root := puzzle.Normalize(start)

	gMap := map[string]int{root.Key(): 0}
	fMap := map[string]float64{root.Key(): h.Evaluate(root)}
	nodes := map[string]*node{root.Key(): {state: root}}

	pq := &pqueue{{f: fMap[root.Key()], state: root, n: nodes[root.Key()]}}
	heap.Init(pq)

	visited := make(map[string]bool)

	for pq.Len() > 0 {
		entry := heap.Pop(pq).(pqEntry)
		key := entry.state.Key()
		if entry.f != fMap[key] {
			continue // stale entry
		}
		if visited[key] {
			continue
		}
		visited[key] = true

		if entry.state.Solved() {
			return Result{Steps: reconstruct(entry.n), Visited: len(visited)}
		}
		if len(visited) >= maxNodes {
			break
		}

		g := gMap[key]
		for _, nb := range puzzle.Neighbors(entry.state, opts.Neighbors) {
			nkey := nb.State.Key()
			if visited[nkey] {
				continue
			}
			newG := g + 1
			if oldG, ok := gMap[nkey]; ok && newG >= oldG {
				continue
			}
			gMap[nkey] = newG
			f := float64(newG) + h.Evaluate(nb.State)
			if math.IsInf(f, 1) {
				continue // provably-dead successor, never worth enqueuing
			}
			fMap[nkey] = f
			childNode := &node{parent: entry.n, state: nb.State, action: nb.Action, hasAct: true, g: newG}
			nodes[nkey] = childNode
			heap.Push(pq, pqEntry{f: f, state: nb.State, n: childNode})
		}
	}
	return Result{Visited: len(visited)}
}
