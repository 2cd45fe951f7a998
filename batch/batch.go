// Package batch drives the solver concurrently across many puzzles,
// fanning results back together with github.com/niceyeti/channerics -
// the worker-channel-per-item plus Merge pattern used throughout
// github.com/niceyeti/tabular's reinforcement.Train (one goroutine per
// agent, fanned in to a single episode channel the processor reads from).
package batch

import (
	"context"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/vcte/sokoban/heuristic"
	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

// Job names one puzzle to solve.
type Job struct {
	Name  string
	State puzzle.Sokoban
}

// Outcome is one Job's result.
type Outcome struct {
	Name    string
	Result  search.Result
	Solved  bool
	Elapsed bool // true whenever no solution was returned (budget or frontier exhausted; not distinguished)
}

// Solver solves a single job; cmd/sokobanbatch supplies a closure over a
// chosen strategy and heuristic.
type Solver func(puzzle.Sokoban) search.Result

// SolveAll runs solver over every job concurrently, one goroutine per job,
// and returns outcomes in the order their goroutines complete (not job
// order - a caller wanting a stable order should sort Outcomes.Name).
// Cancelling ctx ends the merge early, so fewer outcomes than jobs may be
// returned; the solver call itself takes no context and is not interrupted.
func SolveAll(ctx context.Context, jobs []Job, solver Solver) []Outcome {
	workers := make([]<-chan Outcome, 0, len(jobs))
	for _, job := range jobs {
		workers = append(workers, solveOne(ctx.Done(), job, solver))
	}

	var out []Outcome
	for o := range channerics.Merge(ctx.Done(), workers...) {
		out = append(out, o)
	}
	return out
}

func solveOne(done <-chan struct{}, job Job, solver Solver) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		result := solver(job.State)
		solved := len(result.Steps) > 0
		outcome := Outcome{Name: job.Name, Result: result, Solved: solved, Elapsed: !solved}
		select {
		case out <- outcome:
		case <-done:
		}
	}()
	return out
}

// DefaultSolver builds a Solver for cmd/sokobanbatch's "astar with the
// strongest admissible heuristic available" default.
func DefaultSolver(opts search.Options) Solver {
	h := heuristic.Max(heuristic.ManhattanDist{}, heuristic.MinMatching{})
	return func(s puzzle.Sokoban) search.Result {
		return search.AStar(s, h, opts)
	}
}
