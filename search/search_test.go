package search

import (
	"testing"

	"github.com/vcte/sokoban/heuristic"
	"github.com/vcte/sokoban/puzzle"
)

const onePush = `#####
#@$.#
#####`

const twoPush = `######
#@$ .#
#  # #
#  ..#
######`

func mustParse(t *testing.T, text string) puzzle.Sokoban {
	t.Helper()
	s, err := puzzle.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func checkSolved(t *testing.T, name string, r Result) {
	t.Helper()
	if len(r.Steps) == 0 {
		t.Fatalf("%s: expected a solution, found none (visited %d)", name, r.Visited)
	}
	last := r.Steps[len(r.Steps)-1]
	if !last.State.Solved() {
		t.Fatalf("%s: final state of returned solution is not Solved", name)
	}
	for i := 1; i < len(r.Steps); i++ {
		if r.Steps[i].Action == nil {
			t.Fatalf("%s: step %d has no action", name, i)
		}
	}
}

func TestBFSFindsOnePushSolution(t *testing.T) {
	s := mustParse(t, onePush)
	checkSolved(t, "BFS", BFS(s, Options{}))
}

func TestDFSFindsOnePushSolution(t *testing.T) {
	s := mustParse(t, onePush)
	checkSolved(t, "DFS", DFS(s, Options{}))
}

func TestGreedyFindsSolution(t *testing.T) {
	s := mustParse(t, twoPush)
	checkSolved(t, "Greedy", Greedy(s, heuristic.ManhattanDist{}, Options{}))
}

func TestAStarFindsSolution(t *testing.T) {
	s := mustParse(t, twoPush)
	checkSolved(t, "AStar", AStar(s, heuristic.ManhattanDist{}, Options{}))
}

func TestAStarWithNoHeuristicIsDijkstra(t *testing.T) {
	s := mustParse(t, twoPush)
	checkSolved(t, "AStar/NoHeuristic", AStar(s, heuristic.NoHeuristic{}, Options{}))
}

func TestAStarFindsShortestPath(t *testing.T) {
	s := mustParse(t, twoPush)
	r := AStar(s, heuristic.ManhattanDist{}, Options{})
	pushes := len(r.Steps) - 1
	if pushes != 2 {
		t.Fatalf("expected the optimal 2-push solution, got %d pushes", pushes)
	}
}

func TestBudgetExhaustionReturnsNoSteps(t *testing.T) {
	s := mustParse(t, twoPush)
	r := BFS(s, Options{MaxNodes: 1})
	if len(r.Steps) != 0 {
		t.Fatalf("expected no solution within a 1-node budget, got %d steps", len(r.Steps))
	}
}

func TestSeededBFSIsDeterministic(t *testing.T) {
	s := mustParse(t, twoPush)
	seed := int64(42)
	r1 := BFS(s, Options{Seed: &seed})
	r2 := BFS(s, Options{Seed: &seed})
	if len(r1.Steps) != len(r2.Steps) || r1.Visited != r2.Visited {
		t.Fatalf("same seed should produce identical search trees: %+v vs %+v", r1, r2)
	}
}
