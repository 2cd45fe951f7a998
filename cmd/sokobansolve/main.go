// Command sokobansolve reads a single puzzle in the text format of
// spec.md §6 and prints the solution it finds, if any.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vcte/sokoban/config"
	"github.com/vcte/sokoban/deadlock"
	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

func main() {
	var (
		puzzlePath = flag.String("puzzle", "", "path to a puzzle text file (required)")
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
	)
	flag.Parse()

	if *puzzlePath == "" {
		log.Fatal("sokobansolve: -puzzle is required")
	}

	raw, err := os.ReadFile(*puzzlePath)
	if err != nil {
		log.Fatalf("sokobansolve: %v", err)
	}
	start, err := puzzle.Parse(string(raw))
	if err != nil {
		log.Fatalf("sokobansolve: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		root, err := config.FromYaml(*configPath)
		if err != nil {
			log.Fatalf("sokobansolve: %v", err)
		}
		cfg = root
	}

	var table deadlock.Table
	if cfg.Solver.DeadlockTablePath != "" {
		table, err = deadlock.LoadTableFile(cfg.Solver.DeadlockTablePath)
		if err != nil {
			log.Fatalf("sokobansolve: loading deadlock table: %v", err)
		}
	}
	mode, err := config.ParseDeadlockMode(cfg.Solver.DeadlockMode)
	if err != nil {
		log.Fatalf("sokobansolve: %v", err)
	}

	opts := search.Options{MaxNodes: cfg.Solver.MaxNodes}
	if cfg.Solver.Seed != 0 {
		seed := cfg.Solver.Seed
		opts.Seed = &seed
	}

	var result search.Result
	switch cfg.Solver.Strategy {
	case "bfs":
		result = search.BFS(start, opts)
	case "dfs":
		result = search.DFS(start, opts)
	case "greedy":
		h, herr := config.BuildHeuristic(cfg.Solver.Heuristic, table, mode)
		if herr != nil {
			log.Fatalf("sokobansolve: %v", herr)
		}
		result = search.Greedy(start, h, opts)
	case "astar", "":
		h, herr := config.BuildHeuristic(cfg.Solver.Heuristic, table, mode)
		if herr != nil {
			log.Fatalf("sokobansolve: %v", herr)
		}
		result = search.AStar(start, h, opts)
	default:
		log.Fatalf("sokobansolve: unknown strategy %q", cfg.Solver.Strategy)
	}

	if len(result.Steps) == 0 {
		fmt.Printf("no solution found (visited %d states)\n", result.Visited)
		os.Exit(1)
	}

	fmt.Printf("solved in %d pushes (visited %d states)\n", len(result.Steps)-1, result.Visited)
	for _, step := range result.Steps {
		if step.Action != nil {
			fmt.Println(step.Action)
		}
	}
}
