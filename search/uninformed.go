package search

import (
	"math/rand"
	"time"

	"github.com/vcte/sokoban/puzzle"
)

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffledNeighbors returns s's push-move successors in a shuffled order,
// avoiding the directional bias a fixed enumeration order would give BFS
// and DFS (spec.md §4.4).
func shuffledNeighbors(s puzzle.Sokoban, opts puzzle.NeighborOpts, rng *rand.Rand) []struct {
	State  puzzle.Sokoban
	Action puzzle.Push
} {
	neighbors := puzzle.Neighbors(s, opts)
	rng.Shuffle(len(neighbors), func(i, j int) {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	})
	return neighbors
}

// fifo and lifo are the frontiers BFS and DFS use, named the way the
// teacher library names its strategy implementations (priorityQueue,
// lifo) in pathfinding.go/strategies.go.
type fifo struct {
	items []*node
	head  int
}

func (q *fifo) add(n *node) { q.items = append(q.items, n) }
func (q *fifo) take() *node {
	if q.head >= len(q.items) {
		return nil
	}
	n := q.items[q.head]
	q.head++
	return n
}

type lifo []*node

func (s *lifo) add(n *node) { *s = append(*s, n) }
func (s *lifo) take() *node {
	old := *s
	if len(old) == 0 {
		return nil
	}
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

type frontier interface {
	add(*node)
	take() *node
}

// BFS performs uninformed breadth-first search over the push-move graph.
func BFS(start puzzle.Sokoban, opts Options) Result {
	return whateverFirst(start, opts, &fifo{})
}

// DFS performs uninformed depth-first search over the push-move graph.
func DFS(start puzzle.Sokoban, opts Options) Result {
	return whateverFirst(start, opts, &lifo{})
}

// whateverFirst is the shared BFS/DFS loop - they differ only in frontier
// discipline (FIFO queue vs LIFO stack), matching the original WFSSolver
// base class.
func whateverFirst(start puzzle.Sokoban, opts Options, f frontier) Result {
	rng := newRand(opts.Seed)
	root := puzzle.Normalize(start)
	maxNodes := opts.maxNodes()

	startNode := &node{state: root}
	f.add(startNode)
	visited := map[string]bool{root.Key(): true}

	for n := f.take(); n != nil; n = f.take() {
		if n.state.Solved() {
			return Result{Steps: reconstruct(n), Visited: len(visited)}
		}
		if len(visited) >= maxNodes {
			break
		}
		for _, nb := range shuffledNeighbors(n.state, opts.Neighbors, rng) {
			key := nb.State.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			f.add(&node{parent: n, state: nb.State, action: nb.Action, hasAct: true, g: n.g + 1})
			if len(visited) >= maxNodes {
				break
			}
		}
	}
	return Result{Visited: len(visited)}
}
