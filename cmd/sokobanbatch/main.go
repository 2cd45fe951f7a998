// Command sokobanbatch solves every puzzle text file in a directory
// concurrently and reports a summary - not the procedural level
// generation or bulk training-data export spec.md's Non-goals exclude,
// just a concurrent driver over puzzles the caller already has on disk.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/vcte/sokoban/batch"
	"github.com/vcte/sokoban/config"
	"github.com/vcte/sokoban/puzzle"
	"github.com/vcte/sokoban/search"
)

func main() {
	var (
		dir        = flag.String("dir", ".", "directory of puzzle text files")
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		root, err := config.FromYaml(*configPath)
		if err != nil {
			log.Fatalf("sokobanbatch: %v", err)
		}
		cfg = root
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("sokobanbatch: %v", err)
	}

	var jobs []batch.Job
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("sokobanbatch: skipping %s: %v", path, err)
			continue
		}
		state, err := puzzle.Parse(string(raw))
		if err != nil {
			log.Printf("sokobanbatch: skipping %s: %v", path, err)
			continue
		}
		jobs = append(jobs, batch.Job{Name: e.Name(), State: state})
	}

	opts := search.Options{MaxNodes: cfg.Solver.MaxNodes}
	solver := batch.DefaultSolver(opts)

	outcomes := batch.SolveAll(context.Background(), jobs, solver)
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Name < outcomes[j].Name })

	solved := 0
	for _, o := range outcomes {
		status := "UNSOLVED"
		if o.Solved {
			status = "solved"
			solved++
		}
		log.Printf("%-30s %-9s pushes=%-4d visited=%d", o.Name, status, max(0, len(o.Result.Steps)-1), o.Result.Visited)
	}
	log.Printf("sokobanbatch: %d/%d solved", solved, len(outcomes))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
