package batch

import (
	"context"
	"testing"

	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

const trivialPuzzle = `###
#@#
###`

func TestSolveAllRunsEveryJobConcurrently(t *testing.T) {
	s, err := puzzle.Parse(trivialPuzzle)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	jobs := []Job{
		{Name: "a", State: s},
		{Name: "b", State: s},
		{Name: "c", State: s},
	}
	solver := DefaultSolver(search.Options{})

	outcomes := SolveAll(context.Background(), jobs, solver)
	if len(outcomes) != len(jobs) {
		t.Fatalf("expected %d outcomes, got %d", len(jobs), len(outcomes))
	}
	for _, o := range outcomes {
		if !o.Solved {
			t.Fatalf("job %s: an already-solved puzzle (no boxes) should solve trivially", o.Name)
		}
	}
}

func TestSolveAllEmptyJobList(t *testing.T) {
	outcomes := SolveAll(context.Background(), nil, DefaultSolver(search.Options{}))
	if len(outcomes) != 0 {
		t.Fatalf("expected no outcomes for an empty job list, got %d", len(outcomes))
	}
}
